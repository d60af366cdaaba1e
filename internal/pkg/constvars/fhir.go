package constvars

// ResourceType names the clinical resource kinds the migration engine copies
// from an external FHIR source.
type ResourceType string

const (
	ResourcePatient              ResourceType = "Patient"
	ResourceCondition            ResourceType = "Condition"
	ResourceObservation          ResourceType = "Observation"
	ResourceMedicationRequest    ResourceType = "MedicationRequest"
	ResourceAllergyIntolerance   ResourceType = "AllergyIntolerance"
	ResourceImmunization         ResourceType = "Immunization"
	ResourceCoverage             ResourceType = "Coverage"
	ResourceClaim                ResourceType = "Claim"
	ResourceExplanationOfBenefit ResourceType = "ExplanationOfBenefit"
)

// MigratedResourceTypes lists every resource type a migration attempt covers,
// in the order counts are reported.
var MigratedResourceTypes = []ResourceType{
	ResourcePatient,
	ResourceCondition,
	ResourceObservation,
	ResourceMedicationRequest,
	ResourceAllergyIntolerance,
	ResourceImmunization,
	ResourceCoverage,
	ResourceClaim,
	ResourceExplanationOfBenefit,
}

const (
	FhirBundleTypeSearchSet = "searchset"
	FhirLinkRelationNext    = "next"
)

const (
	FhirConditionClinicalActive   = "active"
	FhirConditionClinicalResolved = "resolved"
)

const (
	FhirObservationStatusFinal   = "final"
	FhirObservationStatusAmended = "amended"
)

const (
	FhirImmunizationStatusCompleted = "completed"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)
