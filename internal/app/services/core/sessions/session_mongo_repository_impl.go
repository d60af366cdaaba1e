package sessions

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionMongoRepository(db *mongo.Client, dbName string) contracts.ProviderSessionRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviderSessions),
	}
}

func (r *SessionMongoRepository) CreateSession(ctx context.Context, session *models.ProviderSession) (string, error) {
	if _, err := r.Collection.InsertOne(ctx, session); err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return session.ID, nil
}

func (r *SessionMongoRepository) FindSessionByID(ctx context.Context, sessionID string) (*models.ProviderSession, error) {
	var session models.ProviderSession
	err := r.Collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]models.ProviderSession, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patientExternalId": patientExternalID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	providerSessions := make([]models.ProviderSession, 0)
	if err := cursor.All(ctx, &providerSessions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providerSessions, nil
}

func (r *SessionMongoRepository) MarkMigrated(ctx context.Context, sessionID string, counts map[string]int, migrationDate time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"migrated":        true,
			"migrationDate":   migrationDate,
			"migrationCounts": counts,
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSessionNotFound(mongo.ErrNoDocuments)
	}
	return nil
}
