package fhir_dto

type Condition struct {
	ResourceType       string            `json:"resourceType" bson:"resourceType"`
	ID                 string            `json:"id,omitempty" bson:"id,omitempty"`
	Meta               *Meta             `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier         []Identifier      `json:"identifier,omitempty" bson:"identifier,omitempty"`
	ClinicalStatus     *CodeableConcept  `json:"clinicalStatus,omitempty" bson:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept  `json:"verificationStatus,omitempty" bson:"verificationStatus,omitempty"`
	Category           []CodeableConcept `json:"category,omitempty" bson:"category,omitempty"`
	Severity           *CodeableConcept  `json:"severity,omitempty" bson:"severity,omitempty"`
	Code               *CodeableConcept  `json:"code,omitempty" bson:"code,omitempty"`
	Subject            Reference         `json:"subject" bson:"subject"`
	OnsetDateTime      string            `json:"onsetDateTime,omitempty" bson:"onsetDateTime,omitempty"`
	AbatementDateTime  string            `json:"abatementDateTime,omitempty" bson:"abatementDateTime,omitempty"`
	RecordedDate       string            `json:"recordedDate,omitempty" bson:"recordedDate,omitempty"`
	Note               []Annotation      `json:"note,omitempty" bson:"note,omitempty"`
}

// IsActive reports whether the condition's clinical status codes it as active.
func (c *Condition) IsActive() bool {
	return c.ClinicalStatus.HasCode("active", "recurrence", "relapse")
}
