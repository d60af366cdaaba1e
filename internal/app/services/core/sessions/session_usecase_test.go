package sessions

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionRepository struct {
	sessions map[string]*models.ProviderSession
}

func newStubSessionRepository() *stubSessionRepository {
	return &stubSessionRepository{sessions: make(map[string]*models.ProviderSession)}
}

func (r *stubSessionRepository) CreateSession(ctx context.Context, session *models.ProviderSession) (string, error) {
	r.sessions[session.ID] = session
	return session.ID, nil
}

func (r *stubSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*models.ProviderSession, error) {
	return r.sessions[sessionID], nil
}

func (r *stubSessionRepository) ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]models.ProviderSession, error) {
	matches := make([]models.ProviderSession, 0)
	for _, session := range r.sessions {
		if session.PatientExternalID == patientExternalID {
			matches = append(matches, *session)
		}
	}
	return matches, nil
}

func (r *stubSessionRepository) MarkMigrated(ctx context.Context, sessionID string, counts map[string]int, migrationDate time.Time) error {
	return nil
}

func buildSessionUsecase(repo *stubSessionRepository) *sessionUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return &sessionUsecase{
		SessionRepository: repo,
		Log:               zap.NewNop(),
		InternalConfig:    internalConfig,
	}
}

func TestSessionUsecase(t *testing.T) {
	t.Run("registering a session stores it and issues a scoped token", func(t *testing.T) {
		repo := newStubSessionRepository()
		uc := buildSessionUsecase(repo)

		response, err := uc.RegisterSession(context.Background(), &requests.CreateSession{
			ProviderID:        "provider-1",
			PatientExternalID: "patient-1",
			AccessToken:       "opaque-token",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, response.SessionID)
		assert.NotEmpty(t, response.Token)

		stored := repo.sessions[response.SessionID]
		assert.NotNil(t, stored)
		assert.False(t, stored.Migrated)
		assert.True(t, stored.Valid())

		claimedID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, response.SessionID, claimedID)
	})

	t.Run("reading a session never exposes the access token", func(t *testing.T) {
		repo := newStubSessionRepository()
		uc := buildSessionUsecase(repo)

		created, err := uc.RegisterSession(context.Background(), &requests.CreateSession{
			ProviderID:        "provider-1",
			PatientExternalID: "patient-1",
			AccessToken:       "opaque-token",
		})
		assert.NoError(t, err)

		session, err := uc.GetSessionByID(context.Background(), created.SessionID)
		assert.NoError(t, err)
		assert.Equal(t, "provider-1", session.ProviderID)
		assert.Equal(t, "patient-1", session.PatientExternalID)
	})

	t.Run("an unknown session is a not-found error", func(t *testing.T) {
		uc := buildSessionUsecase(newStubSessionRepository())

		session, err := uc.GetSessionByID(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, session)
	})

	t.Run("listing by patient returns only that patient's sessions", func(t *testing.T) {
		repo := newStubSessionRepository()
		uc := buildSessionUsecase(repo)

		_, err := uc.RegisterSession(context.Background(), &requests.CreateSession{
			ProviderID: "provider-1", PatientExternalID: "patient-1", AccessToken: "a",
		})
		assert.NoError(t, err)
		_, err = uc.RegisterSession(context.Background(), &requests.CreateSession{
			ProviderID: "provider-2", PatientExternalID: "patient-2", AccessToken: "b",
		})
		assert.NoError(t, err)

		listed, err := uc.ListSessionsByPatient(context.Background(), "patient-1")
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, "provider-1", listed[0].ProviderID)
	})
}
