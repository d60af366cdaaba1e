package responses

import "time"

// MigrationResult reports the outcome of one migration attempt. Errors maps
// the failed resource types to a short description; counts of the failed
// types are the records that landed before the type gave up, usually zero.
type MigrationResult struct {
	SessionID     string            `json:"session_id"`
	MigrationDate time.Time         `json:"migration_date"`
	Counts        map[string]int    `json:"counts"`
	Errors        map[string]string `json:"errors,omitempty"`
}
