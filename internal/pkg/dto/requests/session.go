package requests

// CreateSession registers an authorized connection to an external provider
// for one patient. The access token is whatever the provider's authorization
// flow produced; this service stores it opaque.
type CreateSession struct {
	ProviderID        string `json:"provider_id" validate:"required"`
	PatientExternalID string `json:"patient_external_id" validate:"required"`
	AccessToken       string `json:"access_token" validate:"required"`
}
