package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// ContextKeyUserID holds the authenticated user ID set by the auth middleware.
	ContextKeyUserID = "user_id"
	// ContextKeyUserRole holds the role claim of the authenticated user.
	ContextKeyUserRole = "user_role"
	// ContextKeyRequestID holds the request correlation ID.
	ContextKeyRequestID = "request_id"

	// DateLayout is the layout of date-only query parameters.
	DateLayout = "2006-01-02"
)
