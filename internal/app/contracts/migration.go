package contracts

import (
	"context"

	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
)

type MigrationUsecase interface {
	// MigrateBySessionID copies the session's clinical resources into the
	// canonical store and marks the session migrated. A non-nil result with
	// a populated error map is a partial success, not a failure; an error
	// return means the migration could not start at all.
	MigrateBySessionID(ctx context.Context, sessionID string) (*models.MigrationResult, error)
}

// MigrationEventPublisher notifies downstream consumers that a migration
// attempt settled.
type MigrationEventPublisher interface {
	PublishMigrationCompleted(ctx context.Context, result *models.MigrationResult) error
}

// BundleArchive keeps a point-in-time copy of what was fetched from the
// source, for provenance. Archive failures never fail a migration.
type BundleArchive interface {
	ArchiveResources(ctx context.Context, sessionID string, resourceType constvars.ResourceType, resources interface{}) error
}
