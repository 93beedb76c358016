package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldAttempt        = "attempt"
	FieldCycleID        = "cycle-id"
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldURL            = "url"
)
