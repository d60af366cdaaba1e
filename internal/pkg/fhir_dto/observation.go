package fhir_dto

type Observation struct {
	ResourceType      string                 `json:"resourceType" bson:"resourceType"`
	ID                string                 `json:"id,omitempty" bson:"id,omitempty"`
	Meta              *Meta                  `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier        []Identifier           `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Status            string                 `json:"status,omitempty" bson:"status,omitempty"`
	Category          []CodeableConcept      `json:"category,omitempty" bson:"category,omitempty"`
	Code              CodeableConcept        `json:"code" bson:"code"`
	Subject           Reference              `json:"subject" bson:"subject"`
	EffectiveDateTime string                 `json:"effectiveDateTime,omitempty" bson:"effectiveDateTime,omitempty"`
	EffectivePeriod   *Period                `json:"effectivePeriod,omitempty" bson:"effectivePeriod,omitempty"`
	Issued            string                 `json:"issued,omitempty" bson:"issued,omitempty"`
	ValueQuantity     *Quantity              `json:"valueQuantity,omitempty" bson:"valueQuantity,omitempty"`
	ValueString       string                 `json:"valueString,omitempty" bson:"valueString,omitempty"`
	ValueCodeable     *CodeableConcept       `json:"valueCodeableConcept,omitempty" bson:"valueCodeableConcept,omitempty"`
	Component         []ObservationComponent `json:"component,omitempty" bson:"component,omitempty"`
}

type ObservationComponent struct {
	Code          CodeableConcept `json:"code" bson:"code"`
	ValueQuantity *Quantity       `json:"valueQuantity,omitempty" bson:"valueQuantity,omitempty"`
	ValueString   string          `json:"valueString,omitempty" bson:"valueString,omitempty"`
}

// EffectiveDate returns the best available clinically-effective date string:
// effectiveDateTime, then the start of effectivePeriod, then issued.
func (o *Observation) EffectiveDate() string {
	if o.EffectiveDateTime != "" {
		return o.EffectiveDateTime
	}
	if o.EffectivePeriod != nil && o.EffectivePeriod.Start != "" {
		return o.EffectivePeriod.Start
	}
	return o.Issued
}
