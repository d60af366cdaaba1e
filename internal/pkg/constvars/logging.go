package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingSessionIDKey    = "session_id"
	LoggingProviderIDKey   = "provider_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingResourceTypeKey = "resource_type"
	LoggingMeasureIDKey    = "measure_id"
	LoggingCountKey        = "count"
)

type ContextKey string

const (
	ContextRequestID ContextKey = "requestID"
	ContextSessionID ContextKey = "sessionID"
)
