package fhir_dto

type Coverage struct {
	ResourceType string           `json:"resourceType" bson:"resourceType"`
	ID           string           `json:"id,omitempty" bson:"id,omitempty"`
	Meta         *Meta            `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier   []Identifier     `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Status       string           `json:"status,omitempty" bson:"status,omitempty"`
	Type         *CodeableConcept `json:"type,omitempty" bson:"type,omitempty"`
	Subscriber   *Reference       `json:"subscriber,omitempty" bson:"subscriber,omitempty"`
	SubscriberID string           `json:"subscriberId,omitempty" bson:"subscriberId,omitempty"`
	Beneficiary  Reference        `json:"beneficiary" bson:"beneficiary"`
	Relationship *CodeableConcept `json:"relationship,omitempty" bson:"relationship,omitempty"`
	Period       *Period          `json:"period,omitempty" bson:"period,omitempty"`
	Payor        []Reference      `json:"payor,omitempty" bson:"payor,omitempty"`
}
