package fhir_dto

type Immunization struct {
	ResourceType       string          `json:"resourceType" bson:"resourceType"`
	ID                 string          `json:"id,omitempty" bson:"id,omitempty"`
	Meta               *Meta           `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier         []Identifier    `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Status             string          `json:"status,omitempty" bson:"status,omitempty"`
	VaccineCode        CodeableConcept `json:"vaccineCode" bson:"vaccineCode"`
	Patient            Reference       `json:"patient" bson:"patient"`
	OccurrenceDateTime string          `json:"occurrenceDateTime,omitempty" bson:"occurrenceDateTime,omitempty"`
	OccurrenceString   string          `json:"occurrenceString,omitempty" bson:"occurrenceString,omitempty"`
	Recorded           string          `json:"recorded,omitempty" bson:"recorded,omitempty"`
	PrimarySource      *bool           `json:"primarySource,omitempty" bson:"primarySource,omitempty"`
	LotNumber          string          `json:"lotNumber,omitempty" bson:"lotNumber,omitempty"`
}

// OccurrenceDate prefers the dateTime occurrence, falling back to the
// recorded date when the source only reports an occurrence string.
func (i *Immunization) OccurrenceDate() string {
	if i.OccurrenceDateTime != "" {
		return i.OccurrenceDateTime
	}
	return i.Recorded
}
