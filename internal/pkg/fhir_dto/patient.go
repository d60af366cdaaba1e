package fhir_dto

type Patient struct {
	ResourceType string         `json:"resourceType" bson:"resourceType"`
	ID           string         `json:"id,omitempty" bson:"id,omitempty"`
	Meta         *Meta          `json:"meta,omitempty" bson:"meta,omitempty"`
	Identifier   []Identifier   `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Active       *bool          `json:"active,omitempty" bson:"active,omitempty"`
	Name         []HumanName    `json:"name,omitempty" bson:"name,omitempty"`
	Telecom      []ContactPoint `json:"telecom,omitempty" bson:"telecom,omitempty"`
	Gender       string         `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate    string         `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Deceased     *bool          `json:"deceasedBoolean,omitempty" bson:"deceasedBoolean,omitempty"`
	Address      []Address      `json:"address,omitempty" bson:"address,omitempty"`
}
