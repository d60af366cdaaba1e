package contracts

import (
	"context"

	"carebridge-service/internal/pkg/fhir_dto"
)

// Resource fetchers are pure reads against the external FHIR source. They
// never retry and never mutate shared state; "no data" is an empty slice and
// a nil error, distinct from a failed fetch.

type PatientFhirClient interface {
	FindPatientByID(ctx context.Context, patientID, accessToken string) (*fhir_dto.Patient, error)
}

type ConditionFhirClient interface {
	SearchConditionsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Condition, error)
}

type ObservationFhirClient interface {
	SearchObservationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Observation, error)
}

type MedicationRequestFhirClient interface {
	SearchMedicationRequestsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.MedicationRequest, error)
}

type AllergyIntoleranceFhirClient interface {
	SearchAllergiesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.AllergyIntolerance, error)
}

type ImmunizationFhirClient interface {
	SearchImmunizationsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Immunization, error)
}

type CoverageFhirClient interface {
	SearchCoveragesByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Coverage, error)
}

type ClaimFhirClient interface {
	SearchClaimsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.Claim, error)
	SearchExplanationOfBenefitsByPatient(ctx context.Context, patientID, accessToken string) ([]fhir_dto.ExplanationOfBenefit, error)
}
