package models

import (
	"carebridge-service/internal/pkg/constvars"
	"time"
)

// MigrationResult is the structured outcome of one migration attempt.
// Partial success is a normal result: Counts always has one entry per
// attempted resource type, and Errors only the types that failed.
type MigrationResult struct {
	SessionID     string                           `json:"session_id"`
	MigrationDate time.Time                        `json:"migration_date"`
	Counts        map[constvars.ResourceType]int   `json:"counts"`
	Errors        map[constvars.ResourceType]error `json:"-"`
}

// Failed reports whether any resource type failed during the attempt.
func (r *MigrationResult) Failed() bool {
	return len(r.Errors) > 0
}

// FailedTypes lists the resource types present in the error map, in catalog
// order so output is deterministic.
func (r *MigrationResult) FailedTypes() []constvars.ResourceType {
	var failed []constvars.ResourceType
	for _, resourceType := range constvars.MigratedResourceTypes {
		if _, ok := r.Errors[resourceType]; ok {
			failed = append(failed, resourceType)
		}
	}
	return failed
}
