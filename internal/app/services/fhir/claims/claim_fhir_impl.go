package claims

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
	claimFhirClientInstance contracts.ClaimFhirClient
	onceClaimFhirClient     sync.Once
)

// claimFhirClient covers both billing resources, Claim and
// ExplanationOfBenefit, since the source exposes them behind the same
// financial scope.
type claimFhirClient struct {
	Search *bundle.SearchClient
	Log    *zap.Logger
}

func NewClaimFhirClient(search *bundle.SearchClient, logger *zap.Logger) contracts.ClaimFhirClient {
	onceClaimFhirClient.Do(func() {
		claimFhirClientInstance = &claimFhirClient{
			Search: search,
			Log:    logger,
		}
	})
	return claimFhirClientInstance
}

func (c *claimFhirClient) SearchClaimsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Claim, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceClaim, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	claims := make([]fhir_dto.Claim, 0, len(entries))
	for _, entry := range entries {
		var claim fhir_dto.Claim
		if err := json.Unmarshal(entry, &claim); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceClaim)
		}
		claims = append(claims, claim)
	}
	return claims, nil
}

func (c *claimFhirClient) SearchExplanationOfBenefitsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.ExplanationOfBenefit, error) {
	entries, err := c.Search.SearchByPatient(ctx, constvars.ResourceExplanationOfBenefit, patientID, accessToken)
	if err != nil {
		return nil, err
	}

	eobs := make([]fhir_dto.ExplanationOfBenefit, 0, len(entries))
	for _, entry := range entries {
		var eob fhir_dto.ExplanationOfBenefit
		if err := json.Unmarshal(entry, &eob); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceExplanationOfBenefit)
		}
		eobs = append(eobs, eob)
	}
	return eobs, nil
}
