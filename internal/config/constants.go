package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./trending-collections.db"

	// DefaultJWTSecret is the built-in development signing key. Anything
	// signed with it is forgeable; production deployments must override it
	// via AUTH_JWT_SECRET.
	DefaultJWTSecret = "change-me-in-production"
)
