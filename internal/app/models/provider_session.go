package models

import "time"

// ProviderSession is one authorized connection between this system and one
// external clinical-data source for one patient. It is created by the
// authorization flow and mutated only by the migration orchestrator.
type ProviderSession struct {
	ID                string         `bson:"_id" json:"id"`
	ProviderID        string         `bson:"providerId" json:"provider_id"`
	PatientExternalID string         `bson:"patientExternalId" json:"patient_external_id"`
	AccessToken       string         `bson:"accessToken" json:"-"`
	Migrated          bool           `bson:"migrated" json:"migrated"`
	MigrationDate     *time.Time     `bson:"migrationDate,omitempty" json:"migration_date,omitempty"`
	MigrationCounts   map[string]int `bson:"migrationCounts,omitempty" json:"migration_counts,omitempty"`
	CreatedAt         time.Time      `bson:"createdAt" json:"created_at"`
}

// Valid reports whether the session carries everything a migration needs to
// start. An invalid session is a fatal migration error, not a partial one.
func (s *ProviderSession) Valid() bool {
	return s.ProviderID != "" && s.PatientExternalID != "" && s.AccessToken != ""
}
