package caregaps

import (
	"carebridge-service/internal/app/models"
	"carebridge-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var asOf = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func femalePatient(birthDate string) *fhir_dto.Patient {
	return &fhir_dto.Patient{
		ResourceType: "Patient",
		ID:           "patient-1",
		Gender:       "female",
		BirthDate:    birthDate,
	}
}

func conditionWithCode(code, clinicalStatus string) fhir_dto.Condition {
	return fhir_dto.Condition{
		ResourceType:   "Condition",
		Code:           &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: code}}},
		ClinicalStatus: &fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: clinicalStatus}}},
	}
}

func observationWithCode(code, effectiveDate string) fhir_dto.Observation {
	return fhir_dto.Observation{
		ResourceType:      "Observation",
		Status:            "final",
		Code:              fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: code}}},
		EffectiveDateTime: effectiveDate,
	}
}

func findGap(t *testing.T, gaps []models.CareGap, measureID string) models.CareGap {
	t.Helper()
	for _, gap := range gaps {
		if gap.MeasureID == measureID {
			return gap
		}
	}
	t.Fatalf("measure %s not in result", measureID)
	return models.CareGap{}
}

func screeningCatalog() []models.MeasureDefinition {
	return []models.MeasureDefinition{{
		MeasureID: "breast-cancer-screening",
		Title:     "Breast Cancer Screening",
		Category:  models.MeasureCategoryPreventive,
		MinAge:    50,
		MaxAge:    75,
		Gender:    "female",

		FrequencyMonths:        36,
		TargetObservationCodes: []string{"24606-6"},

		ExclusionConditionCodes: []string{"429400009"},
		ExclusionReason:         "history of bilateral mastectomy",

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Schedule a screening mammogram.",
	}}
}

func TestEvaluateAgeBoundaries(t *testing.T) {
	catalog := screeningCatalog()

	t.Run("turning 50 exactly on the reference date is eligible", func(t *testing.T) {
		patient := femalePatient("1976-06-15")
		gaps := Evaluate(patient, nil, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusDue, gaps[0].Status)
	})

	t.Run("one day short of 50 is not eligible", func(t *testing.T) {
		patient := femalePatient("1976-06-16")
		gaps := Evaluate(patient, nil, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusNotApplicable, gaps[0].Status)
		assert.Equal(t, "age ineligible", gaps[0].Reason)
	})

	t.Run("above the upper bound is not eligible", func(t *testing.T) {
		patient := femalePatient("1950-01-01")
		gaps := Evaluate(patient, nil, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusNotApplicable, gaps[0].Status)
	})

	t.Run("gender restriction applies", func(t *testing.T) {
		patient := femalePatient("1970-01-01")
		patient.Gender = "male"
		gaps := Evaluate(patient, nil, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusNotApplicable, gaps[0].Status)
		assert.Equal(t, "gender ineligible", gaps[0].Reason)
	})
}

func TestEvaluateFrequencyWindow(t *testing.T) {
	catalog := screeningCatalog()
	patient := femalePatient("1970-01-01")

	t.Run("evidence three years minus a day old still satisfies", func(t *testing.T) {
		observations := []fhir_dto.Observation{observationWithCode("24606-6", "2023-06-16")}
		gaps := Evaluate(patient, nil, observations, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusSatisfied, gaps[0].Status)
		assert.Equal(t, "2023-06-16", gaps[0].LastPerformedDate.Format("2006-01-02"))
	})

	t.Run("evidence three years and a day old is due again", func(t *testing.T) {
		observations := []fhir_dto.Observation{observationWithCode("24606-6", "2023-06-14")}
		gaps := Evaluate(patient, nil, observations, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusDue, gaps[0].Status)
		assert.Equal(t, "2026-06-14", gaps[0].DueDate.Format("2006-01-02"))
		assert.Equal(t, models.CareGapPriorityHigh, gaps[0].Priority, "a past due date escalates priority")
	})

	t.Run("most recent of several evidence records wins", func(t *testing.T) {
		observations := []fhir_dto.Observation{
			observationWithCode("24606-6", "2024-02-01"),
			observationWithCode("24606-6", "2025-09-30"),
			observationWithCode("24606-6", "2023-01-15"),
		}
		gaps := Evaluate(patient, nil, observations, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusSatisfied, gaps[0].Status)
		assert.Equal(t, "2025-09-30", gaps[0].LastPerformedDate.Format("2006-01-02"))
	})

	t.Run("no evidence at all is due as of the reference date", func(t *testing.T) {
		gaps := Evaluate(patient, nil, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusDue, gaps[0].Status)
		assert.Equal(t, asOf, *gaps[0].DueDate)
		assert.Equal(t, models.CareGapPriorityMedium, gaps[0].Priority, "due today is not yet overdue")
	})
}

func TestEvaluateExclusionPrecedence(t *testing.T) {
	catalog := screeningCatalog()
	patient := femalePatient("1970-01-01")

	t.Run("an excluded patient without evidence is not applicable, not due", func(t *testing.T) {
		conditions := []fhir_dto.Condition{conditionWithCode("429400009", "resolved")}
		gaps := Evaluate(patient, conditions, nil, nil, catalog, asOf)
		assert.Equal(t, models.CareGapStatusNotApplicable, gaps[0].Status)
		assert.Equal(t, "history of bilateral mastectomy", gaps[0].Reason)
	})
}

func TestEvaluateRequiredAndEscalatingConditions(t *testing.T) {
	patient := femalePatient("1970-01-01")

	t.Run("a chronic measure without its diagnosis is not applicable", func(t *testing.T) {
		gaps := Evaluate(patient, nil, nil, nil, MeasureCatalog, asOf)
		gap := findGap(t, gaps, "hba1c-monitoring")
		assert.Equal(t, models.CareGapStatusNotApplicable, gap.Status)
		assert.Equal(t, "no qualifying diagnosis", gap.Reason)
	})

	t.Run("an active diabetes diagnosis makes the measure due", func(t *testing.T) {
		conditions := []fhir_dto.Condition{conditionWithCode("44054006", "active")}
		gaps := Evaluate(patient, conditions, nil, nil, MeasureCatalog, asOf)
		gap := findGap(t, gaps, "hba1c-monitoring")
		assert.Equal(t, models.CareGapStatusDue, gap.Status)
		assert.Equal(t, models.CareGapPriorityHigh, gap.Priority)
	})

	t.Run("active hypertension escalates an open blood pressure gap", func(t *testing.T) {
		conditions := []fhir_dto.Condition{conditionWithCode("38341003", "active")}
		gaps := Evaluate(patient, conditions, nil, nil, MeasureCatalog, asOf)
		gap := findGap(t, gaps, "blood-pressure-screening")
		assert.Equal(t, models.CareGapStatusDue, gap.Status)
		assert.Equal(t, models.CareGapPriorityHigh, gap.Priority)
	})

	t.Run("resolved hypertension does not escalate", func(t *testing.T) {
		conditions := []fhir_dto.Condition{conditionWithCode("38341003", "resolved")}
		gaps := Evaluate(patient, conditions, nil, nil, MeasureCatalog, asOf)
		gap := findGap(t, gaps, "blood-pressure-screening")
		assert.Equal(t, models.CareGapPriorityMedium, gap.Priority)
	})
}

func TestEvaluateIncompleteInput(t *testing.T) {
	t.Run("missing patient yields not applicable everywhere", func(t *testing.T) {
		gaps := Evaluate(nil, nil, nil, nil, MeasureCatalog, asOf)
		assert.Len(t, gaps, len(MeasureCatalog))
		for _, gap := range gaps {
			assert.Equal(t, models.CareGapStatusNotApplicable, gap.Status)
			assert.Equal(t, "birth date unknown", gap.Reason)
		}
	})

	t.Run("an unparseable birth date is treated as unknown", func(t *testing.T) {
		patient := femalePatient("not-a-date")
		gaps := Evaluate(patient, nil, nil, nil, screeningCatalog(), asOf)
		assert.Equal(t, models.CareGapStatusNotApplicable, gaps[0].Status)
	})

	t.Run("evidence without a parseable date does not satisfy", func(t *testing.T) {
		patient := femalePatient("1970-01-01")
		observations := []fhir_dto.Observation{observationWithCode("24606-6", "")}
		gaps := Evaluate(patient, nil, observations, nil, screeningCatalog(), asOf)
		assert.Equal(t, models.CareGapStatusDue, gaps[0].Status)
	})
}

func TestEvaluateDeterminism(t *testing.T) {
	patient := femalePatient("1960-03-10")
	conditions := []fhir_dto.Condition{
		conditionWithCode("44054006", "active"),
		conditionWithCode("38341003", "active"),
	}
	observations := []fhir_dto.Observation{
		observationWithCode("24606-6", "2025-01-20"),
		observationWithCode("4548-4", "2026-02-01"),
		observationWithCode("85354-9", "2024-01-05"),
	}
	immunizations := []fhir_dto.Immunization{{
		ResourceType:       "Immunization",
		Status:             "completed",
		VaccineCode:        fhir_dto.CodeableConcept{Coding: []fhir_dto.Coding{{Code: "140"}}},
		OccurrenceDateTime: "2025-10-02",
	}}

	first := Evaluate(patient, conditions, observations, immunizations, MeasureCatalog, asOf)
	second := Evaluate(patient, conditions, observations, immunizations, MeasureCatalog, asOf)
	assert.Equal(t, first, second)

	measureOrder := make([]string, 0, len(first))
	for _, gap := range first {
		measureOrder = append(measureOrder, gap.MeasureID)
	}
	catalogOrder := make([]string, 0, len(MeasureCatalog))
	for _, measure := range MeasureCatalog {
		catalogOrder = append(catalogOrder, measure.MeasureID)
	}
	assert.Equal(t, catalogOrder, measureOrder, "gaps come back in catalog order")
}
