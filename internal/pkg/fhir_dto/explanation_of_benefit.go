package fhir_dto

type ExplanationOfBenefit struct {
	ResourceType string           `json:"resourceType" bson:"resourceType"`
	ID           string           `json:"id,omitempty" bson:"id,omitempty"`
	Meta         *Meta            `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier   []Identifier     `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Status       string           `json:"status,omitempty" bson:"status,omitempty"`
	Type         *CodeableConcept `json:"type,omitempty" bson:"type,omitempty"`
	Use          string           `json:"use,omitempty" bson:"use,omitempty"`
	Patient      Reference        `json:"patient" bson:"patient"`
	BillablePeriod *Period        `json:"billablePeriod,omitempty" bson:"billablePeriod,omitempty"`
	Created      string           `json:"created,omitempty" bson:"created,omitempty"`
	Insurer      *Reference       `json:"insurer,omitempty" bson:"insurer,omitempty"`
	Provider     *Reference       `json:"provider,omitempty" bson:"provider,omitempty"`
	Outcome      string           `json:"outcome,omitempty" bson:"outcome,omitempty"`
	Claim        *Reference       `json:"claim,omitempty" bson:"claim,omitempty"`
	Total        []EOBTotal       `json:"total,omitempty" bson:"total,omitempty"`
}

type EOBTotal struct {
	Category CodeableConcept `json:"category" bson:"category"`
	Amount   Money           `json:"amount" bson:"amount"`
}
