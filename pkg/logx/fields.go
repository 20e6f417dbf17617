package logx

const (
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldChannelID    = "channel-id"
	FieldCommand      = "command"
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldHTTPMethod   = "http-method"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldIP           = "ip"
	FieldMessageID    = "message-id"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldStack        = "stack"
	FieldTraceID      = "trace-id"
	FieldURL          = "url"
	FieldUserID       = "user-id"
)
