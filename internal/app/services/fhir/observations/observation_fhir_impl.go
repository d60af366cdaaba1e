package observations

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
	observationFhirClientInstance contracts.ObservationFhirClient
	onceObservationFhirClient     sync.Once
)

type observationFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewObservationFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.ObservationFhirClient {
	onceObservationFhirClient.Do(func() {
		observationFhirClientInstance = &observationFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return observationFhirClientInstance
}

func (c *observationFhirClient) SearchObservationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Observation, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceObservation, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	observations := make([]fhir_dto.Observation, 0, len(entries))
	for _, entry := range entries {
		var observation fhir_dto.Observation
		if err := json.Unmarshal(entry, &observation); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
		}
		observations = append(observations, observation)
	}
	return observations, nil
}
