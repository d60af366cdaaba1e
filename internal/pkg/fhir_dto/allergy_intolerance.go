package fhir_dto

type AllergyIntolerance struct {
	ResourceType       string            `json:"resourceType" bson:"resourceType"`
	ID                 string            `json:"id,omitempty" bson:"id,omitempty"`
	Meta               *Meta             `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier         []Identifier      `json:"identifier,omitempty" bson:"identifier,omitempty"`
	ClinicalStatus     *CodeableConcept  `json:"clinicalStatus,omitempty" bson:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept  `json:"verificationStatus,omitempty" bson:"verificationStatus,omitempty"`
	Type               string            `json:"type,omitempty" bson:"type,omitempty"`
	Category           []string          `json:"category,omitempty" bson:"category,omitempty"`
	Criticality        string            `json:"criticality,omitempty" bson:"criticality,omitempty"`
	Code               *CodeableConcept  `json:"code,omitempty" bson:"code,omitempty"`
	Patient            Reference         `json:"patient" bson:"patient"`
	OnsetDateTime      string            `json:"onsetDateTime,omitempty" bson:"onsetDateTime,omitempty"`
	RecordedDate       string            `json:"recordedDate,omitempty" bson:"recordedDate,omitempty"`
	Reaction           []AllergyReaction `json:"reaction,omitempty" bson:"reaction,omitempty"`
}

type AllergyReaction struct {
	Manifestation []CodeableConcept `json:"manifestation,omitempty" bson:"manifestation,omitempty"`
	Severity      string            `json:"severity,omitempty" bson:"severity,omitempty"`
	Onset         string            `json:"onset,omitempty" bson:"onset,omitempty"`
}
