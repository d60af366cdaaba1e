package migration

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	migrationUsecaseInstance contracts.MigrationUsecase
	onceMigrationUsecase     sync.Once
)

type migrationUsecase struct {
	SessionRepository contracts.ProviderSessionRepository
	RecordRepository  contracts.ClinicalRecordRepository

	PatientClient            contracts.PatientFhirClient
	ConditionClient          contracts.ConditionFhirClient
	ObservationClient        contracts.ObservationFhirClient
	MedicationRequestClient  contracts.MedicationRequestFhirClient
	AllergyIntoleranceClient contracts.AllergyIntoleranceFhirClient
	ImmunizationClient       contracts.ImmunizationFhirClient
	CoverageClient           contracts.CoverageFhirClient
	ClaimClient              contracts.ClaimFhirClient

	BundleArchive  contracts.BundleArchive
	EventPublisher contracts.MigrationEventPublisher
	CareGapUsecase contracts.CareGapUsecase

	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMigrationUsecase(
	sessionRepository contracts.ProviderSessionRepository,
	recordRepository contracts.ClinicalRecordRepository,
	patientClient contracts.PatientFhirClient,
	conditionClient contracts.ConditionFhirClient,
	observationClient contracts.ObservationFhirClient,
	medicationRequestClient contracts.MedicationRequestFhirClient,
	allergyIntoleranceClient contracts.AllergyIntoleranceFhirClient,
	immunizationClient contracts.ImmunizationFhirClient,
	coverageClient contracts.CoverageFhirClient,
	claimClient contracts.ClaimFhirClient,
	bundleArchive contracts.BundleArchive,
	eventPublisher contracts.MigrationEventPublisher,
	careGapUsecase contracts.CareGapUsecase,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.MigrationUsecase {
	onceMigrationUsecase.Do(func() {
		migrationUsecaseInstance = &migrationUsecase{
			SessionRepository:        sessionRepository,
			RecordRepository:         recordRepository,
			PatientClient:            patientClient,
			ConditionClient:          conditionClient,
			ObservationClient:        observationClient,
			MedicationRequestClient:  medicationRequestClient,
			AllergyIntoleranceClient: allergyIntoleranceClient,
			ImmunizationClient:       immunizationClient,
			CoverageClient:           coverageClient,
			ClaimClient:              claimClient,
			BundleArchive:            bundleArchive,
			EventPublisher:           eventPublisher,
			CareGapUsecase:           careGapUsecase,
			Log:                      logger,
			InternalConfig:           internalConfig,
		}
	})
	return migrationUsecaseInstance
}

// resourceRecord is one fetched resource ready for the canonical store.
type resourceRecord struct {
	ExternalID string
	Payload    interface{}
}

// typeOutcome is the settled result of one resource type's fan-out branch.
type typeOutcome struct {
	ResourceType constvars.ResourceType
	Count        int
	Err          error
}

// MigrateBySessionID runs one migration attempt. Resource types are fetched
// and written concurrently and independently; a failed type contributes a
// zero count and an entry in the error map while every other type proceeds.
// The session is marked migrated exactly once, after every branch settles,
// unless the attempt was cancelled or could not start at all.
func (uc *migrationUsecase) MigrateBySessionID(ctx context.Context, sessionID string) (*models.MigrationResult, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	uc.Log.Info("migrationUsecase.MigrateBySessionID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := uc.SessionRepository.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(fmt.Errorf("session %s not found", sessionID))
	}
	if !session.Valid() {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session %s is missing provider, patient, or token", sessionID))
	}

	migrationCtx := ctx
	if uc.InternalConfig.App.MigrationTimeoutInSecond > 0 {
		var cancel context.CancelFunc
		migrationCtx, cancel = context.WithTimeout(ctx, time.Duration(uc.InternalConfig.App.MigrationTimeoutInSecond)*time.Second)
		defer cancel()
	}

	migratedAt := time.Now().UTC()
	outcomes := make(chan typeOutcome, len(constvars.MigratedResourceTypes))

	var wg sync.WaitGroup
	for _, resourceType := range constvars.MigratedResourceTypes {
		wg.Add(1)
		go func(resourceType constvars.ResourceType) {
			defer wg.Done()
			outcomes <- uc.migrateType(migrationCtx, session, resourceType, migratedAt)
		}(resourceType)
	}

	// Barrier: the session status write happens only after every branch
	// has settled.
	wg.Wait()
	close(outcomes)

	if migrationCtx.Err() != nil {
		uc.Log.Warn("migrationUsecase.MigrateBySessionID cancelled before completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(migrationCtx.Err()),
		)
		return nil, exceptions.ErrServerDeadlineExceeded(migrationCtx.Err())
	}

	result := &models.MigrationResult{
		SessionID:     sessionID,
		MigrationDate: migratedAt,
		Counts:        make(map[constvars.ResourceType]int, len(constvars.MigratedResourceTypes)),
		Errors:        make(map[constvars.ResourceType]error),
	}
	for outcome := range outcomes {
		result.Counts[outcome.ResourceType] = outcome.Count
		if outcome.Err != nil {
			result.Errors[outcome.ResourceType] = outcome.Err
		}
	}

	counts := make(map[string]int, len(result.Counts))
	for resourceType, count := range result.Counts {
		counts[string(resourceType)] = count
	}
	if err := uc.SessionRepository.MarkMigrated(ctx, sessionID, counts, migratedAt); err != nil {
		return nil, err
	}

	uc.finishMigration(ctx, session, result)

	uc.Log.Info("migrationUsecase.MigrateBySessionID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int("failed_types", len(result.Errors)),
	)
	return result, nil
}

// finishMigration runs the post-barrier side effects. None of them can fail
// the migration; the canonical store and session registry are already
// consistent by the time they run.
func (uc *migrationUsecase) finishMigration(ctx context.Context, session *models.ProviderSession, result *models.MigrationResult) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)

	if err := uc.EventPublisher.PublishMigrationCompleted(ctx, result); err != nil {
		uc.Log.Warn("migrationUsecase.finishMigration failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, result.SessionID),
			zap.Error(err),
		)
	}

	if err := uc.CareGapUsecase.InvalidateCache(ctx, session.PatientExternalID); err != nil {
		uc.Log.Warn("migrationUsecase.finishMigration failed to invalidate care-gap cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, session.PatientExternalID),
			zap.Error(err),
		)
	}
}

// migrateType is one fan-out branch: fetch everything of one type, archive
// the fetched copy, then write records through a bounded worker pool.
func (uc *migrationUsecase) migrateType(ctx context.Context, session *models.ProviderSession, resourceType constvars.ResourceType, migratedAt time.Time) typeOutcome {
	records, err := uc.fetchType(ctx, session, resourceType)
	if err != nil {
		return typeOutcome{
			ResourceType: resourceType,
			Count:        0,
			Err:          &FetchError{ResourceType: resourceType, Cause: err},
		}
	}

	uc.archiveType(ctx, session.ID, resourceType, records)

	written, failedIDs, writeErr := uc.writeRecords(ctx, session, resourceType, records, migratedAt)
	outcome := typeOutcome{ResourceType: resourceType, Count: written}
	if len(failedIDs) > 0 {
		outcome.Err = &WriteError{ResourceType: resourceType, FailedIDs: failedIDs, Cause: writeErr}
	}
	return outcome
}

func (uc *migrationUsecase) archiveType(ctx context.Context, sessionID string, resourceType constvars.ResourceType, records []resourceRecord) {
	payloads := make([]interface{}, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, record.Payload)
	}
	if err := uc.BundleArchive.ArchiveResources(ctx, sessionID, resourceType, payloads); err != nil {
		uc.Log.Warn("migrationUsecase.archiveType failed",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
			zap.Error(err),
		)
	}
}

// writeRecords pushes one type's records through a bounded worker pool. A
// record that fails to persist is skipped and reported; it never stops the
// rest of the type.
func (uc *migrationUsecase) writeRecords(ctx context.Context, session *models.ProviderSession, resourceType constvars.ResourceType, records []resourceRecord, migratedAt time.Time) (int, []string, error) {
	workers := uc.InternalConfig.App.MigrationWorkersPerType
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan resourceRecord)
	var (
		mu        sync.Mutex
		written   int
		failedIDs []string
		lastErr   error
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				clinicalRecord := &models.ClinicalRecord{
					SourceSessionID: session.ID,
					ExternalID:      record.ExternalID,
					PatientID:       session.PatientExternalID,
					ResourceType:    resourceType,
					Payload:         record.Payload,
					MigratedAt:      migratedAt,
				}
				_, err := uc.RecordRepository.Upsert(ctx, clinicalRecord)
				mu.Lock()
				if err != nil {
					failedIDs = append(failedIDs, record.ExternalID)
					lastErr = err
				} else {
					written++
				}
				mu.Unlock()
			}
		}()
	}

	for _, record := range records {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return written, failedIDs, ctx.Err()
		case jobs <- record:
		}
	}
	close(jobs)
	wg.Wait()

	return written, failedIDs, lastErr
}

func (uc *migrationUsecase) fetchType(ctx context.Context, session *models.ProviderSession, resourceType constvars.ResourceType) ([]resourceRecord, error) {
	patientID := session.PatientExternalID
	token := session.AccessToken

	switch resourceType {
	case constvars.ResourcePatient:
		patient, err := uc.PatientClient.FindPatientByID(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, nil
		}
		return []resourceRecord{{ExternalID: patient.ID, Payload: patient}}, nil

	case constvars.ResourceCondition:
		conditions, err := uc.ConditionClient.SearchConditionsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(conditions))
		for i := range conditions {
			records = append(records, resourceRecord{ExternalID: conditions[i].ID, Payload: conditions[i]})
		}
		return records, nil

	case constvars.ResourceObservation:
		observations, err := uc.ObservationClient.SearchObservationsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(observations))
		for i := range observations {
			records = append(records, resourceRecord{ExternalID: observations[i].ID, Payload: observations[i]})
		}
		return records, nil

	case constvars.ResourceMedicationRequest:
		medicationRequests, err := uc.MedicationRequestClient.SearchMedicationRequestsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(medicationRequests))
		for i := range medicationRequests {
			records = append(records, resourceRecord{ExternalID: medicationRequests[i].ID, Payload: medicationRequests[i]})
		}
		return records, nil

	case constvars.ResourceAllergyIntolerance:
		allergies, err := uc.AllergyIntoleranceClient.SearchAllergiesByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(allergies))
		for i := range allergies {
			records = append(records, resourceRecord{ExternalID: allergies[i].ID, Payload: allergies[i]})
		}
		return records, nil

	case constvars.ResourceImmunization:
		immunizations, err := uc.ImmunizationClient.SearchImmunizationsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(immunizations))
		for i := range immunizations {
			records = append(records, resourceRecord{ExternalID: immunizations[i].ID, Payload: immunizations[i]})
		}
		return records, nil

	case constvars.ResourceCoverage:
		coverages, err := uc.CoverageClient.SearchCoveragesByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(coverages))
		for i := range coverages {
			records = append(records, resourceRecord{ExternalID: coverages[i].ID, Payload: coverages[i]})
		}
		return records, nil

	case constvars.ResourceClaim:
		claims, err := uc.ClaimClient.SearchClaimsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(claims))
		for i := range claims {
			records = append(records, resourceRecord{ExternalID: claims[i].ID, Payload: claims[i]})
		}
		return records, nil

	case constvars.ResourceExplanationOfBenefit:
		eobs, err := uc.ClaimClient.SearchExplanationOfBenefitsByPatient(ctx, patientID, token)
		if err != nil {
			return nil, err
		}
		records := make([]resourceRecord, 0, len(eobs))
		for i := range eobs {
			records = append(records, resourceRecord{ExternalID: eobs[i].ID, Payload: eobs[i]})
		}
		return records, nil

	default:
		return nil, exceptions.ErrUnknownResourceType(string(resourceType))
	}
}
