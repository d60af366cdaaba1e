package conditions

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
	conditionFhirClientInstance contracts.ConditionFhirClient
	onceConditionFhirClient     sync.Once
)

type conditionFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewConditionFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.ConditionFhirClient {
	onceConditionFhirClient.Do(func() {
		conditionFhirClientInstance = &conditionFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return conditionFhirClientInstance
}

func (c *conditionFhirClient) SearchConditionsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Condition, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceCondition, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	conditions := make([]fhir_dto.Condition, 0, len(entries))
	for _, entry := range entries {
		var condition fhir_dto.Condition
		if err := json.Unmarshal(entry, &condition); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceCondition)
		}
		conditions = append(conditions, condition)
	}
	return conditions, nil
}
