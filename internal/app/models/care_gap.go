package models

import "time"

type CareGapStatus string

const (
	CareGapStatusDue           CareGapStatus = "due"
	CareGapStatusSatisfied     CareGapStatus = "satisfied"
	CareGapStatusNotApplicable CareGapStatus = "not_applicable"
)

type CareGapPriority string

const (
	CareGapPriorityHigh   CareGapPriority = "high"
	CareGapPriorityMedium CareGapPriority = "medium"
	CareGapPriorityLow    CareGapPriority = "low"
	CareGapPriorityNone   CareGapPriority = "none"
)

type MeasureCategory string

const (
	MeasureCategoryPreventive MeasureCategory = "preventive"
	MeasureCategoryChronic    MeasureCategory = "chronic"
	MeasureCategoryWellness   MeasureCategory = "wellness"
)

// CareGap is the derived status of one patient against one preventive-care
// measure. It is recomputed from the canonical store on every evaluation and
// never mutated directly.
type CareGap struct {
	MeasureID         string          `json:"measure_id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Category          MeasureCategory `json:"category"`
	Status            CareGapStatus   `json:"status"`
	Priority          CareGapPriority `json:"priority"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	LastPerformedDate *time.Time      `json:"last_performed_date,omitempty"`
	RecommendedAction string          `json:"recommended_action"`
	Reason            string          `json:"reason,omitempty"`
}
