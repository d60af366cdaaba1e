package responses

import "time"

// SessionCreated is returned by session registration. The token lets the
// caller trigger a migration for this session without re-authenticating.
type SessionCreated struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

type Session struct {
	ID                string         `json:"id"`
	ProviderID        string         `json:"provider_id"`
	PatientExternalID string         `json:"patient_external_id"`
	Migrated          bool           `json:"migrated"`
	MigrationDate     *time.Time     `json:"migration_date,omitempty"`
	MigrationCounts   map[string]int `json:"migration_counts,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}
