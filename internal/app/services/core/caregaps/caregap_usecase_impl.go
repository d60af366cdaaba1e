package caregaps

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	careGapUsecaseInstance contracts.CareGapUsecase
	onceCareGapUsecase     sync.Once
)

type careGapUsecase struct {
	RecordRepository contracts.ClinicalRecordRepository
	RedisRepository  contracts.RedisRepository
	Catalog          []models.MeasureDefinition
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig

	// now is swapped in tests to pin asOfDate.
	now func() time.Time
}

func NewCareGapUsecase(
	recordRepository contracts.ClinicalRecordRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.CareGapUsecase {
	onceCareGapUsecase.Do(func() {
		careGapUsecaseInstance = &careGapUsecase{
			RecordRepository: recordRepository,
			RedisRepository:  redisRepository,
			Catalog:          MeasureCatalog,
			Log:              logger,
			InternalConfig:   internalConfig,
			now:              time.Now,
		}
	})
	return careGapUsecaseInstance
}

func (uc *careGapUsecase) GetCareGapsByPatient(ctx context.Context, patientID, statusFilter string) ([]models.CareGap, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	uc.Log.Info("careGapUsecase.GetCareGapsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	gaps, err := uc.cachedEvaluation(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return filterByStatus(gaps, statusFilter), nil
}

func (uc *careGapUsecase) InvalidateCache(ctx context.Context, patientID string) error {
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyCareGapsFormat, patientID))
}

// cachedEvaluation returns the cached gap list when present, otherwise
// evaluates from the canonical store and caches the unfiltered result. A
// broken cache read falls through to a fresh evaluation.
func (uc *careGapUsecase) cachedEvaluation(ctx context.Context, patientID string) ([]models.CareGap, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	cacheKey := fmt.Sprintf(constvars.RedisKeyCareGapsFormat, patientID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("careGapUsecase.cachedEvaluation cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var gaps []models.CareGap
		if err := json.Unmarshal([]byte(cached), &gaps); err == nil {
			return gaps, nil
		}
		uc.Log.Warn("careGapUsecase.cachedEvaluation dropping undecodable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
	}

	gaps, err := uc.evaluateFromStore(ctx, patientID)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.CareGapCacheTTLInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, gaps, ttl); err != nil {
		uc.Log.Warn("careGapUsecase.cachedEvaluation cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return gaps, nil
}

func (uc *careGapUsecase) evaluateFromStore(ctx context.Context, patientID string) ([]models.CareGap, error) {
	patient, err := uc.RecordRepository.FindPatientResource(ctx, patientID)
	if err != nil {
		return nil, err
	}
	conditions, err := uc.RecordRepository.ListConditionsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	observations, err := uc.RecordRepository.ListObservationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	immunizations, err := uc.RecordRepository.ListImmunizationsByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return Evaluate(patient, conditions, observations, immunizations, uc.Catalog, uc.now().UTC()), nil
}

func filterByStatus(gaps []models.CareGap, statusFilter string) []models.CareGap {
	if statusFilter == "" {
		return gaps
	}
	filtered := make([]models.CareGap, 0, len(gaps))
	for _, gap := range gaps {
		if string(gap.Status) == statusFilter {
			filtered = append(filtered, gap)
		}
	}
	return filtered
}
