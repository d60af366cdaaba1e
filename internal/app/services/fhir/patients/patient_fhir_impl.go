package patients

import (
	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/app/services/fhir/bundle"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

var (
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewPatientFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		patientFhirClientInstance = &patientFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return patientFhirClientInstance
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID, accessToken string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	body, err := c.Search.Read(ctx, constvars.ResourcePatient, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	patient := new(fhir_dto.Patient)
	if err := json.Unmarshal(body, patient); err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}
