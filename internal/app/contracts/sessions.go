package contracts

import (
	"context"
	"time"

	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type ProviderSessionRepository interface {
	CreateSession(ctx context.Context, session *models.ProviderSession) (string, error)
	FindSessionByID(ctx context.Context, sessionID string) (*models.ProviderSession, error)
	ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]models.ProviderSession, error)

	// MarkMigrated is the single synchronizing write at the end of a
	// migration attempt. It is called at most once per attempt.
	MarkMigrated(ctx context.Context, sessionID string, counts map[string]int, migrationDate time.Time) error
}

type SessionUsecase interface {
	RegisterSession(ctx context.Context, request *requests.CreateSession) (*responses.SessionCreated, error)
	GetSessionByID(ctx context.Context, sessionID string) (*responses.Session, error)
	ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]responses.Session, error)
}
