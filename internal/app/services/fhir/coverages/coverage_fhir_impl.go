package coverages

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
	coverageFhirClientInstance contracts.CoverageFhirClient
	onceCoverageFhirClient     sync.Once
)

type coverageFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewCoverageFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.CoverageFhirClient {
	onceCoverageFhirClient.Do(func() {
		coverageFhirClientInstance = &coverageFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return coverageFhirClientInstance
}

func (c *coverageFhirClient) SearchCoveragesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Coverage, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceCoverage, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	coverages := make([]fhir_dto.Coverage, 0, len(entries))
	for _, entry := range entries {
		var coverage fhir_dto.Coverage
		if err := json.Unmarshal(entry, &coverage); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCoverage)
		}
		coverages = append(coverages, coverage)
	}
	return coverages, nil
}
