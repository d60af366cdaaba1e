package fhir_dto

import "encoding/json"

type Bundle struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Type         string       `json:"type,omitempty"`
	Total        int          `json:"total,omitempty"`
	Link         []BundleLink `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleLink struct {
	Relation string `json:"relation,omitempty"`
	Url      string `json:"url,omitempty"`
}

type BundleEntry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource,omitempty"`
}

// NextLink returns the paging continuation URL of a searchset bundle, or ""
// when the result set is exhausted.
func (b *Bundle) NextLink() string {
	for _, link := range b.Link {
		if link.Relation == "next" {
			return link.Url
		}
	}
	return ""
}
