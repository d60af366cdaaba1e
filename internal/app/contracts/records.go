package contracts

import (
	"context"

	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/fhir_dto"
)

// ClinicalRecordRepository is the canonical store: one collection per
// resource type, keyed (sourceSessionId, externalId). Upsert is idempotent
// with last-write-wins semantics on retry.
type ClinicalRecordRepository interface {
	Upsert(ctx context.Context, record *models.ClinicalRecord) (storedID string, err error)
	FindByKey(ctx context.Context, resourceType constvars.ResourceType, sessionID, externalID string) (*models.ClinicalRecord, error)
	ListByPatient(ctx context.Context, resourceType constvars.ResourceType, patientID string) ([]models.ClinicalRecord, error)
	CountBySession(ctx context.Context, resourceType constvars.ResourceType, sessionID string) (int64, error)

	// Typed reads for the care-gap evaluator.
	FindPatientResource(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	ListConditionsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Condition, error)
	ListObservationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Observation, error)
	ListImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error)
}
