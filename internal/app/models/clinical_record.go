package models

import (
	"carebridge-service/internal/pkg/constvars"
	"time"
)

// ClinicalRecord is the canonical-store envelope around one migrated clinical
// resource. The payload is the typed FHIR resource as fetched; the envelope
// carries provenance and the idempotency key (sourceSessionId, externalId).
type ClinicalRecord struct {
	SourceSessionID string                 `bson:"sourceSessionId" json:"source_session_id"`
	ExternalID      string                 `bson:"externalId" json:"external_id"`
	PatientID       string                 `bson:"patientId" json:"patient_id"`
	ResourceType    constvars.ResourceType `bson:"resourceType" json:"resource_type"`
	Payload         interface{}            `bson:"payload" json:"payload"`
	MigratedAt      time.Time              `bson:"migratedAt" json:"migrated_at"`
}
