package sessions

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

type sessionUsecase struct {
	SessionRepository contracts.ProviderSessionRepository
	Log               *zap.Logger
	InternalConfig    *config.InternalConfig
}

func NewSessionUsecase(
	sessionRepository contracts.ProviderSessionRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			SessionRepository: sessionRepository,
			Log:               logger,
			InternalConfig:    internalConfig,
		}
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) RegisterSession(ctx context.Context, request *requests.CreateSession) (*responses.SessionCreated, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	uc.Log.Info("sessionUsecase.RegisterSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)

	session := &models.ProviderSession{
		ID:                utils.GenerateSessionID(),
		ProviderID:        request.ProviderID,
		PatientExternalID: request.PatientExternalID,
		AccessToken:       request.AccessToken,
		CreatedAt:         time.Now().UTC(),
	}

	sessionID, err := uc.SessionRepository.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("sessionUsecase.RegisterSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.SessionCreated{
		SessionID: sessionID,
		Token:     token,
	}, nil
}

func (uc *sessionUsecase) GetSessionByID(ctx context.Context, sessionID string) (*responses.Session, error) {
	session, err := uc.SessionRepository.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s not found", sessionID))
	}
	response := buildSessionResponse(session)
	return &response, nil
}

func (uc *sessionUsecase) ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]responses.Session, error) {
	providerSessions, err := uc.SessionRepository.ListSessionsByPatient(ctx, patientExternalID)
	if err != nil {
		return nil, err
	}

	sessionResponses := make([]responses.Session, 0, len(providerSessions))
	for i := range providerSessions {
		sessionResponses = append(sessionResponses, buildSessionResponse(&providerSessions[i]))
	}
	return sessionResponses, nil
}

func buildSessionResponse(session *models.ProviderSession) responses.Session {
	return responses.Session{
		ID:                session.ID,
		ProviderID:        session.ProviderID,
		PatientExternalID: session.PatientExternalID,
		Migrated:          session.Migrated,
		MigrationDate:     session.MigrationDate,
		MigrationCounts:   session.MigrationCounts,
		CreatedAt:         session.CreatedAt,
	}
}
