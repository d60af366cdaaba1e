package caregaps

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/fhir_dto"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStore struct {
	patient       *fhir_dto.Patient
	conditions    []fhir_dto.Condition
	observations  []fhir_dto.Observation
	immunizations []fhir_dto.Immunization
	reads         int
}

func (s *fakeStore) Upsert(ctx context.Context, record *models.ClinicalRecord) (string, error) {
	return "", nil
}

func (s *fakeStore) FindByKey(ctx context.Context, resourceType constvars.ResourceType, sessionID, externalID string) (*models.ClinicalRecord, error) {
	return nil, nil
}

func (s *fakeStore) ListByPatient(ctx context.Context, resourceType constvars.ResourceType, patientID string) ([]models.ClinicalRecord, error) {
	return nil, nil
}

func (s *fakeStore) CountBySession(ctx context.Context, resourceType constvars.ResourceType, sessionID string) (int64, error) {
	return 0, nil
}

func (s *fakeStore) FindPatientResource(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	s.reads++
	return s.patient, nil
}

func (s *fakeStore) ListConditionsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Condition, error) {
	return s.conditions, nil
}

func (s *fakeStore) ListObservationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Observation, error) {
	return s.observations, nil
}

func (s *fakeStore) ListImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
	return s.immunizations, nil
}

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = string(encoded)
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return c.entries[key], nil
}

func buildCareGapUsecase(store *fakeStore, cache *fakeCache) *careGapUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.CareGapCacheTTLInMinute = 15

	return &careGapUsecase{
		RecordRepository: store,
		RedisRepository:  cache,
		Catalog:          MeasureCatalog,
		Log:              zap.NewNop(),
		InternalConfig:   internalConfig,
		now:              func() time.Time { return asOf },
	}
}

func TestGetCareGapsByPatient(t *testing.T) {
	t.Run("evaluates from the store and caches the result", func(t *testing.T) {
		store := &fakeStore{patient: femalePatient("1970-01-01")}
		cache := newFakeCache()
		uc := buildCareGapUsecase(store, cache)

		gaps, err := uc.GetCareGapsByPatient(context.Background(), "patient-1", "")
		assert.NoError(t, err)
		assert.Len(t, gaps, len(MeasureCatalog))
		assert.Equal(t, 1, store.reads)
		assert.Contains(t, cache.entries, "caregaps:patient-1")

		again, err := uc.GetCareGapsByPatient(context.Background(), "patient-1", "")
		assert.NoError(t, err)
		assert.Equal(t, gaps, again)
		assert.Equal(t, 1, store.reads, "second call is served from cache")
	})

	t.Run("status filter narrows the result", func(t *testing.T) {
		store := &fakeStore{patient: femalePatient("1970-01-01")}
		uc := buildCareGapUsecase(store, newFakeCache())

		due, err := uc.GetCareGapsByPatient(context.Background(), "patient-1", string(models.CareGapStatusDue))
		assert.NoError(t, err)
		assert.NotEmpty(t, due)
		for _, gap := range due {
			assert.Equal(t, models.CareGapStatusDue, gap.Status)
		}

		notApplicable, err := uc.GetCareGapsByPatient(context.Background(), "patient-1", string(models.CareGapStatusNotApplicable))
		assert.NoError(t, err)
		for _, gap := range notApplicable {
			assert.Equal(t, models.CareGapStatusNotApplicable, gap.Status)
		}
	})

	t.Run("invalidation forces a fresh evaluation", func(t *testing.T) {
		store := &fakeStore{patient: femalePatient("1970-01-01")}
		cache := newFakeCache()
		uc := buildCareGapUsecase(store, cache)

		_, err := uc.GetCareGapsByPatient(context.Background(), "patient-1", "")
		assert.NoError(t, err)
		assert.Equal(t, 1, store.reads)

		assert.NoError(t, uc.InvalidateCache(context.Background(), "patient-1"))
		assert.NotContains(t, cache.entries, "caregaps:patient-1")

		_, err = uc.GetCareGapsByPatient(context.Background(), "patient-1", "")
		assert.NoError(t, err)
		assert.Equal(t, 2, store.reads)
	})
}
