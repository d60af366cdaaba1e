package caregaps

import (
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"
	"time"
)

const (
	reasonBirthDateUnknown = "birth date unknown"
	reasonAgeIneligible    = "age ineligible"
	reasonGenderIneligible = "gender ineligible"
	reasonNoDiagnosis      = "no qualifying diagnosis"
)

// Evaluate runs the measure catalog against a patient's aggregated clinical
// facts as of one reference date. It is pure: identical inputs and asOfDate
// produce an identical gap list, in catalog order. Missing clinical data is
// never an error, it just shapes the per-measure status.
func Evaluate(
	patient *fhir_dto.Patient,
	conditions []fhir_dto.Condition,
	observations []fhir_dto.Observation,
	immunizations []fhir_dto.Immunization,
	catalog []models.MeasureDefinition,
	asOfDate time.Time,
) []models.CareGap {
	gaps := make([]models.CareGap, 0, len(catalog))
	for i := range catalog {
		gaps = append(gaps, evaluateMeasure(&catalog[i], patient, conditions, observations, immunizations, asOfDate))
	}
	return gaps
}

func evaluateMeasure(
	measure *models.MeasureDefinition,
	patient *fhir_dto.Patient,
	conditions []fhir_dto.Condition,
	observations []fhir_dto.Observation,
	immunizations []fhir_dto.Immunization,
	asOfDate time.Time,
) models.CareGap {
	gap := models.CareGap{
		MeasureID:         measure.MeasureID,
		Title:             measure.Title,
		Description:       measure.Description,
		Category:          measure.Category,
		RecommendedAction: measure.RecommendedAction,
	}

	if reason := eligibilityReason(measure, patient, asOfDate); reason != "" {
		gap.Status = models.CareGapStatusNotApplicable
		gap.Priority = models.CareGapPriorityNone
		gap.Reason = reason
		return gap
	}

	if len(measure.RequiredConditionCodes) > 0 && !hasActiveCondition(conditions, measure.RequiredConditionCodes) {
		gap.Status = models.CareGapStatusNotApplicable
		gap.Priority = models.CareGapPriorityNone
		gap.Reason = reasonNoDiagnosis
		return gap
	}

	lastEvidence, hasEvidence := latestEvidenceDate(measure, observations, immunizations)
	if hasEvidence {
		gap.LastPerformedDate = &lastEvidence
	}

	if hasEvidence && withinWindow(lastEvidence, measure.FrequencyMonths, asOfDate) {
		gap.Status = models.CareGapStatusSatisfied
		gap.Priority = models.CareGapPriorityNone
		return gap
	}

	// Exclusions are checked before defaulting to due; a documented
	// exclusion makes the measure inapplicable, not overdue.
	if len(measure.ExclusionConditionCodes) > 0 && hasCondition(conditions, measure.ExclusionConditionCodes) {
		gap.Status = models.CareGapStatusNotApplicable
		gap.Priority = models.CareGapPriorityNone
		gap.Reason = measure.ExclusionReason
		return gap
	}

	gap.Status = models.CareGapStatusDue
	dueDate := asOfDate
	if hasEvidence && measure.FrequencyMonths > 0 {
		dueDate = utils.AddMonths(lastEvidence, measure.FrequencyMonths)
	}
	gap.DueDate = &dueDate

	gap.Priority = measure.DefaultPriority
	overdue := dueDate.Before(asOfDate)
	escalated := len(measure.EscalateConditionCodes) > 0 && hasActiveCondition(conditions, measure.EscalateConditionCodes)
	if overdue || escalated {
		gap.Priority = models.CareGapPriorityHigh
	}
	return gap
}

func eligibilityReason(measure *models.MeasureDefinition, patient *fhir_dto.Patient, asOfDate time.Time) string {
	if patient == nil {
		return reasonBirthDateUnknown
	}
	birthDate, ok := utils.ParseFHIRDate(patient.BirthDate)
	if !ok {
		return reasonBirthDateUnknown
	}

	age := utils.AgeAt(birthDate, asOfDate)
	if age < measure.MinAge {
		return reasonAgeIneligible
	}
	if measure.MaxAge > 0 && age > measure.MaxAge {
		return reasonAgeIneligible
	}
	if measure.Gender != "" && patient.Gender != measure.Gender {
		return reasonGenderIneligible
	}
	return ""
}

// latestEvidenceDate scans observations and immunizations for the measure's
// target codes and returns the most recent dated match, regardless of
// window. Records without a parseable date cannot count as evidence.
func latestEvidenceDate(measure *models.MeasureDefinition, observations []fhir_dto.Observation, immunizations []fhir_dto.Immunization) (time.Time, bool) {
	var latest time.Time
	found := false

	if len(measure.TargetObservationCodes) > 0 {
		for i := range observations {
			if !observations[i].Code.HasCode(measure.TargetObservationCodes...) {
				continue
			}
			date, ok := utils.ParseFHIRDate(observations[i].EffectiveDate())
			if !ok {
				continue
			}
			if !found || date.After(latest) {
				latest = date
				found = true
			}
		}
	}

	if len(measure.TargetImmunizationCodes) > 0 {
		for i := range immunizations {
			if !immunizations[i].VaccineCode.HasCode(measure.TargetImmunizationCodes...) {
				continue
			}
			date, ok := utils.ParseFHIRDate(immunizations[i].OccurrenceDate())
			if !ok {
				continue
			}
			if !found || date.After(latest) {
				latest = date
				found = true
			}
		}
	}

	return latest, found
}

// withinWindow reports whether evidence dated evidenceDate still satisfies a
// measure as of asOfDate. A zero frequency means once per lifetime.
func withinWindow(evidenceDate time.Time, frequencyMonths int, asOfDate time.Time) bool {
	if frequencyMonths == 0 {
		return true
	}
	windowStart := utils.AddMonths(asOfDate, -frequencyMonths)
	return evidenceDate.After(windowStart)
}

// hasCondition matches any documented condition regardless of clinical
// status; a resolved mastectomy still excludes a mammogram measure.
func hasCondition(conditions []fhir_dto.Condition, codes []string) bool {
	for i := range conditions {
		if conditions[i].Code.HasCode(codes...) {
			return true
		}
	}
	return false
}

func hasActiveCondition(conditions []fhir_dto.Condition, codes []string) bool {
	for i := range conditions {
		if conditions[i].Code.HasCode(codes...) && conditions[i].IsActive() {
			return true
		}
	}
	return false
}
