package migration

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/fhir_dto"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionRepository struct {
	mu           sync.Mutex
	sessions     map[string]*models.ProviderSession
	markedCalls  int
	markedCounts map[string]int
}

func newFakeSessionRepository(sessions ...*models.ProviderSession) *fakeSessionRepository {
	repo := &fakeSessionRepository{sessions: make(map[string]*models.ProviderSession)}
	for _, session := range sessions {
		repo.sessions[session.ID] = session
	}
	return repo
}

func (r *fakeSessionRepository) CreateSession(ctx context.Context, session *models.ProviderSession) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session.ID, nil
}

func (r *fakeSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*models.ProviderSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[sessionID], nil
}

func (r *fakeSessionRepository) ListSessionsByPatient(ctx context.Context, patientExternalID string) ([]models.ProviderSession, error) {
	return nil, nil
}

func (r *fakeSessionRepository) MarkMigrated(ctx context.Context, sessionID string, counts map[string]int, migrationDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markedCalls++
	r.markedCounts = counts
	session := r.sessions[sessionID]
	session.Migrated = true
	session.MigrationDate = &migrationDate
	session.MigrationCounts = counts
	return nil
}

type fakeRecordRepository struct {
	mu      sync.Mutex
	store   map[string]*models.ClinicalRecord
	failIDs map[string]bool
}

func newFakeRecordRepository() *fakeRecordRepository {
	return &fakeRecordRepository{
		store:   make(map[string]*models.ClinicalRecord),
		failIDs: make(map[string]bool),
	}
}

func (r *fakeRecordRepository) key(resourceType constvars.ResourceType, sessionID, externalID string) string {
	return fmt.Sprintf("%s/%s/%s", resourceType, sessionID, externalID)
}

func (r *fakeRecordRepository) Upsert(ctx context.Context, record *models.ClinicalRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIDs[record.ExternalID] {
		return "", errors.New("write refused")
	}
	r.store[r.key(record.ResourceType, record.SourceSessionID, record.ExternalID)] = record
	return record.ExternalID, nil
}

func (r *fakeRecordRepository) FindByKey(ctx context.Context, resourceType constvars.ResourceType, sessionID, externalID string) (*models.ClinicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store[r.key(resourceType, sessionID, externalID)], nil
}

func (r *fakeRecordRepository) ListByPatient(ctx context.Context, resourceType constvars.ResourceType, patientID string) ([]models.ClinicalRecord, error) {
	return nil, nil
}

func (r *fakeRecordRepository) CountBySession(ctx context.Context, resourceType constvars.ResourceType, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, record := range r.store {
		if record.ResourceType == resourceType && record.SourceSessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRecordRepository) FindPatientResource(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	return nil, nil
}

func (r *fakeRecordRepository) ListConditionsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Condition, error) {
	return nil, nil
}

func (r *fakeRecordRepository) ListObservationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Observation, error) {
	return nil, nil
}

func (r *fakeRecordRepository) ListImmunizationsByPatient(ctx context.Context, patientID string) ([]fhir_dto.Immunization, error) {
	return nil, nil
}

// fakeSource is every resource fetcher in one struct. Per-type errors
// simulate a source that fails one collection while serving the rest.
type fakeSource struct {
	patient            *fhir_dto.Patient
	conditions         []fhir_dto.Condition
	observations       []fhir_dto.Observation
	medicationRequests []fhir_dto.MedicationRequest
	allergies          []fhir_dto.AllergyIntolerance
	immunizations      []fhir_dto.Immunization
	coverages          []fhir_dto.Coverage
	claims             []fhir_dto.Claim
	eobs               []fhir_dto.ExplanationOfBenefit

	errByType map[constvars.ResourceType]error
}

func (s *fakeSource) err(resourceType constvars.ResourceType) error {
	if s.errByType == nil {
		return nil
	}
	return s.errByType[resourceType]
}

func (s *fakeSource) FindPatientByID(ctx context.Context, patientID, accessToken string) (*fhir_dto.Patient, error) {
	return s.patient, s.err(constvars.ResourcePatient)
}

func (s *fakeSource) SearchConditionsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Condition, error) {
	if err := s.err(constvars.ResourceCondition); err != nil {
		return nil, err
	}
	return s.conditions, nil
}

func (s *fakeSource) SearchObservationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Observation, error) {
	if err := s.err(constvars.ResourceObservation); err != nil {
		return nil, err
	}
	return s.observations, nil
}

func (s *fakeSource) SearchMedicationRequestsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.MedicationRequest, error) {
	if err := s.err(constvars.ResourceMedicationRequest); err != nil {
		return nil, err
	}
	return s.medicationRequests, nil
}

func (s *fakeSource) SearchAllergiesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.AllergyIntolerance, error) {
	if err := s.err(constvars.ResourceAllergyIntolerance); err != nil {
		return nil, err
	}
	return s.allergies, nil
}

func (s *fakeSource) SearchImmunizationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Immunization, error) {
	if err := s.err(constvars.ResourceImmunization); err != nil {
		return nil, err
	}
	return s.immunizations, nil
}

func (s *fakeSource) SearchCoveragesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Coverage, error) {
	if err := s.err(constvars.ResourceCoverage); err != nil {
		return nil, err
	}
	return s.coverages, nil
}

func (s *fakeSource) SearchClaimsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Claim, error) {
	if err := s.err(constvars.ResourceClaim); err != nil {
		return nil, err
	}
	return s.claims, nil
}

func (s *fakeSource) SearchExplanationOfBenefitsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.ExplanationOfBenefit, error) {
	if err := s.err(constvars.ResourceExplanationOfBenefit); err != nil {
		return nil, err
	}
	return s.eobs, nil
}

type noopArchive struct{}

func (noopArchive) ArchiveResources(ctx context.Context, sessionID string, resourceType constvars.ResourceType, resources interface{}) error {
	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishMigrationCompleted(ctx context.Context, result *models.MigrationResult) error {
	return nil
}

type noopCareGaps struct{}

func (noopCareGaps) GetCareGapsByPatient(ctx context.Context, patientID, statusFilter string) ([]models.CareGap, error) {
	return nil, nil
}

func (noopCareGaps) InvalidateCache(ctx context.Context, patientID string) error {
	return nil
}

func testSession() *models.ProviderSession {
	return &models.ProviderSession{
		ID:                "sess-1",
		ProviderID:        "provider-1",
		PatientExternalID: "patient-1",
		AccessToken:       "token-1",
		CreatedAt:         time.Now().UTC(),
	}
}

func buildMigrationUsecase(sessionRepo *fakeSessionRepository, recordRepo *fakeRecordRepository, source *fakeSource) *migrationUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.MigrationWorkersPerType = 4
	internalConfig.App.MigrationTimeoutInSecond = 30

	return &migrationUsecase{
		SessionRepository:        sessionRepo,
		RecordRepository:         recordRepo,
		PatientClient:            source,
		ConditionClient:          source,
		ObservationClient:        source,
		MedicationRequestClient:  source,
		AllergyIntoleranceClient: source,
		ImmunizationClient:       source,
		CoverageClient:           source,
		ClaimClient:              source,
		BundleArchive:            noopArchive{},
		EventPublisher:           noopPublisher{},
		CareGapUsecase:           noopCareGaps{},
		Log:                      zap.NewNop(),
		InternalConfig:           internalConfig,
	}
}

func makeConditions(n int) []fhir_dto.Condition {
	conditions := make([]fhir_dto.Condition, 0, n)
	for i := 0; i < n; i++ {
		conditions = append(conditions, fhir_dto.Condition{ID: fmt.Sprintf("cond-%d", i)})
	}
	return conditions
}

func makeObservations(n int) []fhir_dto.Observation {
	observations := make([]fhir_dto.Observation, 0, n)
	for i := 0; i < n; i++ {
		observations = append(observations, fhir_dto.Observation{ID: fmt.Sprintf("obs-%d", i)})
	}
	return observations
}

func makeMedicationRequests(n int) []fhir_dto.MedicationRequest {
	medicationRequests := make([]fhir_dto.MedicationRequest, 0, n)
	for i := 0; i < n; i++ {
		medicationRequests = append(medicationRequests, fhir_dto.MedicationRequest{ID: fmt.Sprintf("med-%d", i)})
	}
	return medicationRequests
}

func TestMigrateBySessionID(t *testing.T) {
	t.Run("end to end counts with an empty collection", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository(testSession())
		recordRepo := newFakeRecordRepository()
		source := &fakeSource{
			patient:            &fhir_dto.Patient{ID: "patient-1"},
			conditions:         makeConditions(5),
			observations:       makeObservations(12),
			medicationRequests: makeMedicationRequests(3),
		}
		uc := buildMigrationUsecase(sessionRepo, recordRepo, source)

		result, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.NoError(t, err)
		assert.False(t, result.Failed())

		assert.Equal(t, 5, result.Counts[constvars.ResourceCondition])
		assert.Equal(t, 12, result.Counts[constvars.ResourceObservation])
		assert.Equal(t, 3, result.Counts[constvars.ResourceMedicationRequest])
		assert.Equal(t, 0, result.Counts[constvars.ResourceAllergyIntolerance], "a type with no data counts zero")
		assert.Len(t, result.Counts, len(constvars.MigratedResourceTypes), "every attempted type reports a count")

		assert.Equal(t, 1, sessionRepo.markedCalls)
		assert.True(t, sessionRepo.sessions["sess-1"].Migrated)
	})

	t.Run("rerunning the same migration is idempotent", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository(testSession())
		recordRepo := newFakeRecordRepository()
		source := &fakeSource{
			patient:      &fhir_dto.Patient{ID: "patient-1"},
			conditions:   makeConditions(5),
			observations: makeObservations(12),
		}
		uc := buildMigrationUsecase(sessionRepo, recordRepo, source)

		first, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.NoError(t, err)
		storedAfterFirst := len(recordRepo.store)

		second, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.NoError(t, err)

		assert.Equal(t, first.Counts, second.Counts)
		assert.Equal(t, storedAfterFirst, len(recordRepo.store), "second run must not create duplicates")
	})

	t.Run("one failed type does not abort the others", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository(testSession())
		recordRepo := newFakeRecordRepository()
		source := &fakeSource{
			patient:      &fhir_dto.Patient{ID: "patient-1"},
			conditions:   makeConditions(5),
			observations: makeObservations(12),
			errByType: map[constvars.ResourceType]error{
				constvars.ResourceCondition: errors.New("upstream 502"),
			},
		}
		uc := buildMigrationUsecase(sessionRepo, recordRepo, source)

		result, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.NoError(t, err, "partial success is a result, not an error")
		assert.True(t, result.Failed())

		assert.Equal(t, 0, result.Counts[constvars.ResourceCondition])
		assert.Equal(t, 12, result.Counts[constvars.ResourceObservation])

		var fetchErr *FetchError
		assert.ErrorAs(t, result.Errors[constvars.ResourceCondition], &fetchErr)
		assert.Equal(t, []constvars.ResourceType{constvars.ResourceCondition}, result.FailedTypes())

		assert.Equal(t, 1, sessionRepo.markedCalls, "the session is still marked migrated")
		assert.True(t, sessionRepo.sessions["sess-1"].Migrated)
	})

	t.Run("a single failed record is skipped and reported", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository(testSession())
		recordRepo := newFakeRecordRepository()
		recordRepo.failIDs["cond-2"] = true
		source := &fakeSource{
			patient:    &fhir_dto.Patient{ID: "patient-1"},
			conditions: makeConditions(5),
		}
		uc := buildMigrationUsecase(sessionRepo, recordRepo, source)

		result, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.NoError(t, err)

		assert.Equal(t, 4, result.Counts[constvars.ResourceCondition])
		var writeErr *WriteError
		assert.ErrorAs(t, result.Errors[constvars.ResourceCondition], &writeErr)
		assert.Equal(t, []string{"cond-2"}, writeErr.FailedIDs)
	})

	t.Run("unknown session is fatal and leaves nothing marked", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository()
		recordRepo := newFakeRecordRepository()
		uc := buildMigrationUsecase(sessionRepo, recordRepo, &fakeSource{})

		result, err := uc.MigrateBySessionID(context.Background(), "missing")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 0, sessionRepo.markedCalls)
	})

	t.Run("session without an access token is fatal", func(t *testing.T) {
		session := testSession()
		session.AccessToken = ""
		sessionRepo := newFakeSessionRepository(session)
		recordRepo := newFakeRecordRepository()
		uc := buildMigrationUsecase(sessionRepo, recordRepo, &fakeSource{})

		result, err := uc.MigrateBySessionID(context.Background(), "sess-1")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 0, sessionRepo.markedCalls)
		assert.False(t, sessionRepo.sessions["sess-1"].Migrated)
	})

	t.Run("cancellation before the barrier leaves the session unmarked", func(t *testing.T) {
		sessionRepo := newFakeSessionRepository(testSession())
		recordRepo := newFakeRecordRepository()
		source := &fakeSource{
			patient:    &fhir_dto.Patient{ID: "patient-1"},
			conditions: makeConditions(50),
		}
		uc := buildMigrationUsecase(sessionRepo, recordRepo, source)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := uc.MigrateBySessionID(ctx, "sess-1")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, 0, sessionRepo.markedCalls)
		assert.False(t, sessionRepo.sessions["sess-1"].Migrated)
	})
}
