package caregaps

import "carebridge-service/internal/app/models"

// MeasureCatalog is the static preventive-care measure table, evaluated in
// this order so output is deterministic. Codes cover the systems the wired
// sources actually emit: LOINC for observations, CVX for vaccines, SNOMED CT
// for conditions and procedures recorded as conditions.
var MeasureCatalog = []models.MeasureDefinition{
	{
		MeasureID:   "breast-cancer-screening",
		Title:       "Breast Cancer Screening",
		Description: "Mammogram for women 50-74, at least every two years.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      50,
		MaxAge:      74,
		Gender:      "female",

		FrequencyMonths:        24,
		TargetObservationCodes: []string{"24606-6", "24605-8", "36625-2"},

		ExclusionConditionCodes: []string{"429400009", "137671000119105"},
		ExclusionReason:         "history of bilateral mastectomy",

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Schedule a screening mammogram.",
	},
	{
		MeasureID:   "cervical-cancer-screening",
		Title:       "Cervical Cancer Screening",
		Description: "Pap test for women 21-64, at least every three years.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      21,
		MaxAge:      64,
		Gender:      "female",

		FrequencyMonths:        36,
		TargetObservationCodes: []string{"10524-7", "18500-9", "47527-7"},

		ExclusionConditionCodes: []string{"236886002", "116140006"},
		ExclusionReason:         "history of total hysterectomy",

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Schedule a Pap test.",
	},
	{
		MeasureID:   "colorectal-cancer-screening",
		Title:       "Colorectal Cancer Screening",
		Description: "Colonoscopy for adults 50-75, at least every ten years.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      50,
		MaxAge:      75,

		FrequencyMonths:        120,
		TargetObservationCodes: []string{"34120-6", "28023-9", "18746-8"},

		ExclusionConditionCodes: []string{"26390003", "307666008"},
		ExclusionReason:         "history of total colectomy",

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Schedule a colonoscopy.",
	},
	{
		MeasureID:   "influenza-immunization",
		Title:       "Influenza Immunization",
		Description: "Seasonal flu vaccine, yearly for all adults.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      18,

		FrequencyMonths:         12,
		TargetImmunizationCodes: []string{"140", "141", "150", "158"},

		DefaultPriority:   models.CareGapPriorityLow,
		RecommendedAction: "Get a seasonal influenza vaccine.",
	},
	{
		MeasureID:   "pneumococcal-vaccination",
		Title:       "Pneumococcal Vaccination",
		Description: "Pneumococcal vaccine for adults 65 and older, once.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      65,

		TargetImmunizationCodes: []string{"33", "133", "152"},

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Get a pneumococcal vaccine.",
	},
	{
		MeasureID:   "blood-pressure-screening",
		Title:       "Blood Pressure Screening",
		Description: "Blood pressure check for adults, yearly.",
		Category:    models.MeasureCategoryPreventive,
		MinAge:      18,

		FrequencyMonths:        12,
		TargetObservationCodes: []string{"85354-9", "55284-4"},

		EscalateConditionCodes: []string{"38341003", "59621000"},

		DefaultPriority:   models.CareGapPriorityMedium,
		RecommendedAction: "Schedule a blood pressure check.",
	},
	{
		MeasureID:   "hba1c-monitoring",
		Title:       "HbA1c Monitoring",
		Description: "Hemoglobin A1c test for diabetic patients, every six months.",
		Category:    models.MeasureCategoryChronic,
		MinAge:      18,

		FrequencyMonths:        6,
		TargetObservationCodes: []string{"4548-4", "17856-6"},

		RequiredConditionCodes: []string{"44054006", "73211009", "46635009"},
		EscalateConditionCodes: []string{"44054006", "73211009", "46635009"},

		DefaultPriority:   models.CareGapPriorityHigh,
		RecommendedAction: "Order a hemoglobin A1c test.",
	},
	{
		MeasureID:   "annual-wellness-visit",
		Title:       "Annual Wellness Visit",
		Description: "Comprehensive wellness exam for adults, yearly.",
		Category:    models.MeasureCategoryWellness,
		MinAge:      18,

		FrequencyMonths:        12,
		TargetObservationCodes: []string{"29463-7", "8302-2", "39156-5"},

		DefaultPriority:   models.CareGapPriorityLow,
		RecommendedAction: "Schedule an annual wellness visit.",
	},
}
