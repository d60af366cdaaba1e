package fhir_dto

type Claim struct {
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
	Provider     *Reference       `json:"provider,omitempty" bson:"provider,omitempty"`
	Insurer      *Reference       `json:"insurer,omitempty" bson:"insurer,omitempty"`
	Total        *Money           `json:"total,omitempty" bson:"total,omitempty"`
	Item         []ClaimItem      `json:"item,omitempty" bson:"item,omitempty"`
}

type ClaimItem struct {
	Sequence         int              `json:"sequence,omitempty" bson:"sequence,omitempty"`
	ProductOrService *CodeableConcept `json:"productOrService,omitempty" bson:"productOrService,omitempty"`
	ServicedDate     string           `json:"servicedDate,omitempty" bson:"servicedDate,omitempty"`
	Net              *Money           `json:"net,omitempty" bson:"net,omitempty"`
}
