package common

// Header names shared by both services.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"

	// Credentials carried by the anonymous category listing endpoint.
	EmailHeaderName    = "email"
	PasswordHeaderName = "password"
)

// EnvironmentDevelopment enables error details in HTTP responses.
const EnvironmentDevelopment = "Development"
