package common

type contextKey string

const (
	RequestIDContextKey contextKey = "request_id"
	ApiKeyContextKey    contextKey = "api_key"
	ScopeContextKey     contextKey = "scope"
	AdminClaimsKey      contextKey = "admin_claims"
)
