package immunizations

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
	immunizationFhirClientInstance contracts.ImmunizationFhirClient
	onceImmunizationFhirClient     sync.Once
)

type immunizationFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewImmunizationFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.ImmunizationFhirClient {
	onceImmunizationFhirClient.Do(func() {
		immunizationFhirClientInstance = &immunizationFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return immunizationFhirClientInstance
}

func (c *immunizationFhirClient) SearchImmunizationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Immunization, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceImmunization, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	immunizations := make([]fhir_dto.Immunization, 0, len(entries))
	for _, entry := range entries {
		var immunization fhir_dto.Immunization
		if err := json.Unmarshal(entry, &immunization); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceImmunization)
		}
		immunizations = append(immunizations, immunization)
	}
	return immunizations, nil
}
