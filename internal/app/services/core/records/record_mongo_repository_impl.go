package records

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var collectionByResourceType = map[constvars.ResourceType]string{
	constvars.ResourcePatient:              constvars.MongoCollectionPatients,
	constvars.ResourceCondition:            constvars.MongoCollectionConditions,
	constvars.ResourceObservation:          constvars.MongoCollectionObservations,
	constvars.ResourceMedicationRequest:    constvars.MongoCollectionMedicationRequests,
	constvars.ResourceAllergyIntolerance:   constvars.MongoCollectionAllergyIntolerances,
	constvars.ResourceImmunization:         constvars.MongoCollectionImmunizations,
	constvars.ResourceCoverage:             constvars.MongoCollectionCoverages,
	constvars.ResourceClaim:                constvars.MongoCollectionClaims,
	constvars.ResourceExplanationOfBenefit: constvars.MongoCollectionExplanationOfBenefits,
}

type RecordMongoRepository struct {
	DB *mongo.Database
}

func NewRecordMongoRepository(db *mongo.Client, dbName string) contracts.ClinicalRecordRepository {
	return &RecordMongoRepository{
		DB: db.Database(dbName),
	}
}

func (r *RecordMongoRepository) collection(resourceType constvars.ResourceType) (*mongo.Collection, error) {
	name, ok := collectionByResourceType[resourceType]
	if !ok {
		return nil, exceptions.ErrUnknownResourceType(string(resourceType))
	}
	return r.DB.Collection(name), nil
}

// Upsert writes a record keyed (sourceSessionId, externalId), replacing the
// stored document when the key already exists. Re-running a migration over
// the same source data therefore leaves the store unchanged.
func (r *RecordMongoRepository) Upsert(ctx context.Context, record *models.ClinicalRecord) (string, error) {
	coll, err := r.collection(record.ResourceType)
	if err != nil {
		return "", err
	}

	filter := bson.M{
		"sourceSessionId": record.SourceSessionID,
		"externalId":      record.ExternalID,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return "", exceptions.ErrMongoDBUpsertDocument(err)
	}
	return record.ExternalID, nil
}

func (r *RecordMongoRepository) FindByKey(ctx context.Context, resourceType constvars.ResourceType, sessionID, externalID string) (*models.ClinicalRecord, error) {
	coll, err := r.collection(resourceType)
	if err != nil {
		return nil, err
	}

	var record models.ClinicalRecord
	filter := bson.M{
		"sourceSessionId": sessionID,
		"externalId":      externalID,
	}
	err = coll.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *RecordMongoRepository) ListByPatient(ctx context.Context, resourceType constvars.ResourceType, patientID string) ([]models.ClinicalRecord, error) {
	coll, err := r.collection(resourceType)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	clinicalRecords := make([]models.ClinicalRecord, 0)
	if err := cursor.All(ctx, &clinicalRecords); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinicalRecords, nil
}

func (r *RecordMongoRepository) CountBySession(ctx context.Context, resourceType constvars.ResourceType, sessionID string) (int64, error) {
	coll, err := r.collection(resourceType)
	if err != nil {
		return 0, err
	}

	count, err := coll.CountDocuments(ctx, bson.M{"sourceSessionId": sessionID})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *RecordMongoRepository) FindPatientResource(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	var doc struct {
		Payload fhir_dto.Patient `bson:"payload"`
	}
	err := r.DB.Collection(constvars.MongoCollectionPatients).
		FindOne(ctx, bson.M{"patientId": patientID}).
		Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doc.Payload, nil
}

func (r *RecordMongoRepository) ListConditionsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Condition, error) {
	cursor, err := r.DB.Collection(constvars.MongoCollectionConditions).
		Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	conditions := make([]fhir_dto.Condition, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Payload fhir_dto.Condition `bson:"payload"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		conditions = append(conditions, doc.Payload)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return conditions, nil
}

func (r *RecordMongoRepository) ListObservationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Observation, error) {
	cursor, err := r.DB.Collection(constvars.MongoCollectionObservations).
		Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	observations := make([]fhir_dto.Observation, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Payload fhir_dto.Observation `bson:"payload"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		observations = append(observations, doc.Payload)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return observations, nil
}

func (r *RecordMongoRepository) ListImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
	cursor, err := r.DB.Collection(constvars.MongoCollectionImmunizations).
		Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	immunizations := make([]fhir_dto.Immunization, 0)
	for cursor.Next(ctx) {
		var doc struct {
			Payload fhir_dto.Immunization `bson:"payload"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		immunizations = append(immunizations, doc.Payload)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return immunizations, nil
}
