package models

// MeasureDefinition is one entry of the static preventive-care measure
// catalog. Ages are inclusive years; MaxAge 0 means no upper bound.
// FrequencyMonths 0 means the measure is satisfied once per lifetime.
type MeasureDefinition struct {
	MeasureID   string
	Title       string
	Description string
	Category    MeasureCategory

	MinAge int
	MaxAge int
	Gender string // FHIR administrative gender; "" means any

	FrequencyMonths int

	// Evidence. A record carrying any of these codes inside the frequency
	// window satisfies the measure.
	TargetObservationCodes  []string
	TargetImmunizationCodes []string

	// Eligibility and exclusions, matched against condition codes.
	RequiredConditionCodes  []string
	ExclusionConditionCodes []string
	ExclusionReason         string

	// Related chronic conditions that escalate an open gap to high priority.
	EscalateConditionCodes []string

	DefaultPriority   CareGapPriority
	RecommendedAction string
}
