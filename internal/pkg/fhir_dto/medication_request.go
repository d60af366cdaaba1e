package fhir_dto

type MedicationRequest struct {
	ResourceType              string           `json:"resourceType" bson:"resourceType"`
	ID                        string           `json:"id,omitempty" bson:"id,omitempty"`
	Meta                      *Meta            `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier                []Identifier     `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Status                    string           `json:"status,omitempty" bson:"status,omitempty"`
	Intent                    string           `json:"intent,omitempty" bson:"intent,omitempty"`
	MedicationCodeableConcept *CodeableConcept `json:"medicationCodeableConcept,omitempty" bson:"medicationCodeableConcept,omitempty"`
	MedicationReference       *Reference       `json:"medicationReference,omitempty" bson:"medicationReference,omitempty"`
	Subject                   Reference        `json:"subject" bson:"subject"`
	AuthoredOn                string           `json:"authoredOn,omitempty" bson:"authoredOn,omitempty"`
	Requester                 *Reference       `json:"requester,omitempty" bson:"requester,omitempty"`
	DosageInstruction         []Dosage         `json:"dosageInstruction,omitempty" bson:"dosageInstruction,omitempty"`
}

type Dosage struct {
	Sequence int    `json:"sequence,omitempty" bson:"sequence,omitempty"`
	Text     string `json:"text,omitempty" bson:"text,omitempty"`
}
