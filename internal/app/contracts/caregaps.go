package contracts

import (
	"context"

	"carebridge-service/internal/app/models"
)

type CareGapUsecase interface {
	// GetCareGapsByPatient evaluates the measure catalog against the
	// patient's aggregated clinical data. statusFilter narrows the result to
	// one CareGapStatus; empty means all.
	GetCareGapsByPatient(ctx context.Context, patientID, statusFilter string) ([]models.CareGap, error)

	// InvalidateCache drops the cached evaluation for a patient. Called
	// after a migration lands new clinical facts.
	InvalidateCache(ctx context.Context, patientID string) error
}
