package constvars

const (
	MongoCollectionProviderSessions = "provider_sessions"

	MongoCollectionPatients              = "patients"
	MongoCollectionConditions            = "conditions"
	MongoCollectionObservations          = "observations"
	MongoCollectionMedicationRequests    = "medication_requests"
	MongoCollectionAllergyIntolerances   = "allergy_intolerances"
	MongoCollectionImmunizations         = "immunizations"
	MongoCollectionCoverages             = "coverages"
	MongoCollectionClaims                = "claims"
	MongoCollectionExplanationOfBenefits = "explanation_of_benefits"
)

const (
	RedisKeyCareGapsFormat = "caregaps:%s"
)

const (
	MinioBundleObjectFormat = "sessions/%s/%s.json"
)
