package fhir_dto

import "time"

type Reference struct {
	Reference string      `json:"reference,omitempty" bson:"reference,omitempty"`
	Type      string      `json:"type,omitempty" bson:"type,omitempty"`
	Identifier *Identifier `json:"identifier,omitempty" bson:"identifier,omitempty"`
	Display   string      `json:"display,omitempty" bson:"display,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty" bson:"use,omitempty"`
	System string           `json:"system,omitempty" bson:"system,omitempty"`
	Value  string           `json:"value,omitempty" bson:"value,omitempty"`
	Period *Period          `json:"period,omitempty" bson:"period,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty" bson:"type,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty" bson:"coding,omitempty"`
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
}

// HasCode reports whether any coding of the concept carries one of the given
// codes, regardless of system.
func (c *CodeableConcept) HasCode(codes ...string) bool {
	if c == nil {
		return false
	}
	for _, coding := range c.Coding {
		for _, code := range codes {
			if coding.Code == code {
				return true
			}
		}
	}
	return false
}

type Coding struct {
	System  string `json:"system,omitempty" bson:"system,omitempty"`
	Version string `json:"version,omitempty" bson:"version,omitempty"`
	Code    string `json:"code,omitempty" bson:"code,omitempty"`
	Display string `json:"display,omitempty" bson:"display,omitempty"`
}

type Period struct {
	Start string `json:"start,omitempty" bson:"start,omitempty"`
	End   string `json:"end,omitempty" bson:"end,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty" bson:"use,omitempty"`
	Text   string   `json:"text,omitempty" bson:"text,omitempty"`
	Family string   `json:"family,omitempty" bson:"family,omitempty"`
	Given  []string `json:"given,omitempty" bson:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty" bson:"prefix,omitempty"`
}

type Meta struct {
	VersionId   string    `json:"versionId,omitempty" bson:"versionId,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	Source      string    `json:"source,omitempty" bson:"source,omitempty"`
	Profile     []string  `json:"profile,omitempty" bson:"profile,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty" bson:"system,omitempty"`
	Value  string `json:"value,omitempty" bson:"value,omitempty"`
	Use    string `json:"use,omitempty" bson:"use,omitempty"`
}

type Address struct {
	Use        string   `json:"use,omitempty" bson:"use,omitempty"`
	Line       []string `json:"line,omitempty" bson:"line,omitempty"`
	City       string   `json:"city,omitempty" bson:"city,omitempty"`
	State      string   `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty" bson:"country,omitempty"`
}

type Quantity struct {
	Value      float64 `json:"value,omitempty" bson:"value,omitempty"`
	Comparator string  `json:"comparator,omitempty" bson:"comparator,omitempty"`
	Unit       string  `json:"unit,omitempty" bson:"unit,omitempty"`
	System     string  `json:"system,omitempty" bson:"system,omitempty"`
	Code       string  `json:"code,omitempty" bson:"code,omitempty"`
}

type Money struct {
	Value    float64 `json:"value,omitempty" bson:"value,omitempty"`
	Currency string  `json:"currency,omitempty" bson:"currency,omitempty"`
}

type Annotation struct {
	Time string `json:"time,omitempty" bson:"time,omitempty"`
	Text string `json:"text,omitempty" bson:"text,omitempty"`
}

type OperationOutcome struct {
	ResourceType string                  `json:"resourceType"`
	Issue        []OperationOutcomeIssue `json:"issue,omitempty"`
}

type OperationOutcomeIssue struct {
	Severity    string `json:"severity,omitempty"`
	Code        string `json:"code,omitempty"`
	Diagnostics string `json:"diagnostics,omitempty"`
}
