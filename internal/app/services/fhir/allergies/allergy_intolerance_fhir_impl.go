package allergies

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
	allergyFhirClientInstance contracts.AllergyIntoleranceFhirClient
	onceAllergyFhirClient     sync.Once
)

type allergyIntoleranceFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewAllergyIntoleranceFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.AllergyIntoleranceFhirClient {
	onceAllergyFhirClient.Do(func() {
		allergyFhirClientInstance = &allergyIntoleranceFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return allergyFhirClientInstance
}

func (c *allergyIntoleranceFhirClient) SearchAllergiesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.AllergyIntolerance, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceAllergyIntolerance, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	allergies := make([]fhir_dto.AllergyIntolerance, 0, len(entries))
	for _, entry := range entries {
		var allergy fhir_dto.AllergyIntolerance
		if err := json.Unmarshal(entry, &allergy); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAllergyIntolerance)
		}
		allergies = append(allergies, allergy)
	}
	return allergies, nil
}
