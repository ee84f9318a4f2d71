package constvars

// Client-facing messages. Kept generic on purpose; the dev message carries detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or has expired, please log in again"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientInvalidImageFormat            = "The uploaded file is not a supported image format"
	ErrClientImageTooLarge                 = "The uploaded image exceeds the maximum allowed size"
	ErrClientNoImageSelected               = "Please upload an image first"
	ErrClientActionInFlight                = "Another processing action is still running for this image"
	ErrClientNoDetectionsForReport         = "No analysis results available to generate a report"
	ErrClientResultSuperseded              = "The image changed while processing, so the result was discarded"
	ErrClientRemoteServiceUnavailable      = "A remote service could not be reached, please try again"
)

// Dev-facing messages, logged but never returned to production clients.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Cannot parse request body as JSON"
	ErrDevCannotParseMultipartForm  = "Cannot parse multipart form"
	ErrDevImageValidationFailed     = "Image validation failed"
	ErrDevAuthTokenMissing          = "Authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate session token"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevCredentialMissing         = "No credential stored for session"
	ErrDevCredentialExpired         = "Stored credential is expired or undecodable"
	ErrDevRoleNotPermitted          = "Operator role does not permit this destination"
	ErrDevCannotMarshalJSON         = "Cannot marshal value to JSON"
	ErrDevCreateHTTPRequest         = "Failed to build outbound HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send outbound HTTP request"
	ErrDevDecodeRemoteResponse      = "Failed to decode response from %s"
	ErrDevRemoteRejection           = "Remote service %s rejected the request"
	ErrDevWorkspaceWrongState       = "Analysis workspace is not in a state that allows this operation"
	ErrDevRedisStoreCredential      = "Failed to store credential in Redis"
	ErrDevRedisDelete               = "Failed to delete Redis key"
	ErrDevRedisSet                  = "Failed to set Redis key"
	ErrDevRedisGet                  = "Failed to get Redis key"
	ErrDevMinioCreateObject         = "Failed to store object in bucket %s"
	ErrDevMinioRemoveObject         = "Failed to remove object from bucket %s"
	ErrDevMongoInsert               = "Failed to insert document into %s"
	ErrDevMongoFind                 = "Failed to query documents from %s"
	ErrDevQueuePublish              = "Failed to publish message to queue %s"
	ErrDevSMTPSendEmail             = "Failed to send email via SMTP host %s"
)
