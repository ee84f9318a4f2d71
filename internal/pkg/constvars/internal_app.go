package constvars

type contextKey string

const (
	// ContextSessionIDKey carries the gateway session ID through the request context.
	ContextSessionIDKey contextKey = "sessionID"
	// ContextCredentialKey carries the loaded credential through the request context.
	ContextCredentialKey contextKey = "credential"
	// ContextRequestIDKey carries the per-request correlation ID.
	ContextRequestIDKey contextKey = "requestID"
)

const (
	LoggingRequestIDKey = "request_id"
	LoggingSessionIDKey = "session_id"
)

const (
	// DefaultViewPath is where role-mismatched navigations are sent.
	DefaultViewPath = "/dashboard"
	// LoginViewPath is where unauthenticated navigations are sent.
	LoginViewPath = "/login"
)

const (
	ActivityCollectionName   = "activities"
	ActivityDefaultListLimit = 100
)

const (
	EmailHTMLMessageFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"
)

const (
	RegexEmail      = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	BirthdateLayout = "2006-01-02"
)
