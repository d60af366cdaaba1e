package medicationrequests

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
	medicationRequestFhirClientInstance contracts.MedicationRequestFhirClient
	onceMedicationRequestFhirClient     sync.Once
)

type medicationRequestFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewMedicationRequestFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.MedicationRequestFhirClient {
	onceMedicationRequestFhirClient.Do(func() {
		medicationRequestFhirClientInstance = &medicationRequestFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return medicationRequestFhirClientInstance
}

func (c *medicationRequestFhirClient) SearchMedicationRequestsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.MedicationRequest, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceMedicationRequest, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	medicationRequests := make([]fhir_dto.MedicationRequest, 0, len(entries))
	for _, entry := range entries {
		var medicationRequest fhir_dto.MedicationRequest
		if err := json.Unmarshal(entry, &medicationRequest); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicationRequest)
		}
		medicationRequests = append(medicationRequests, medicationRequest)
	}
	return medicationRequests, nil
}
