package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"url":      "must be a valid URL",
	"datetime": "must be a valid date in format %s",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Client-facing messages. Kept deliberately vague; detail lives in the dev message.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSessionNotFound               = "we couldn't find that provider connection"
	ErrClientSessionInvalid                = "this provider connection can't be used anymore"
	ErrClientRecordNotFound                = "we couldn't find the requested record"
	ErrClientUnknownResourceType           = "unknown clinical record type"
)

// Developer-facing messages.
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime        = "cannot parse time into the given format"
	ErrDevValidationFailed       = "validation failed"
	ErrDevURLParamMissing        = "parameter %s is missing or empty"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing the request"
	ErrDevServerProcess          = "server failed to process the request"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	ErrDevAuthSigningMethod = "unexpected signing method"
	ErrDevAuthTokenMissing  = "token missing"
	ErrDevAuthTokenInvalid  = "invalid or expired token"

	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToUpsertDocument   = "failed to upsert document into database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data to redis"
	ErrDevRedisDelete  = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq queue %s"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	ErrDevSourceGetFHIRResource    = "failed to get FHIR %s from the external source"
	ErrDevSourceDecodeFHIRResource = "failed to decode FHIR %s response from the external source"

	ErrDevSessionNotFound     = "provider session not found"
	ErrDevSessionInvalid      = "provider session is missing its provider or patient identifiers"
	ErrDevUnknownResourceType = "resource type %s is not part of the canonical store"
)
