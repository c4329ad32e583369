// Package auth provides authentication and authorization for the application.
//
// Clients authenticate with email and password via POST /api/login and
// receive a signed HS256 bearer token carrying their email as the subject.
// Tokens are stateless: nothing is stored server-side, and a token stays
// valid for the lifetime of the signing key unless an expiry is configured.
//
// # Configuration
//
//	AUTH_JWT_SECRET=<signing key>  # Rotating it invalidates all tokens
//	AUTH_TOKEN_EXPIRY=0            # 0 disables expiry; e.g. 24h to enable
//	AUTH_BCRYPT_COST=12            # bcrypt cost factor
//
// # Usage
//
// Initialize in the entrypoint:
//
//	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
//	service := auth.NewService(userRepo, tokens, cfg.Auth)
//	middleware := auth.NewMiddleware(tokens, service)
//	protected := router.Group("/api", middleware.RequireAuth())
//
// Extract the identity in handlers:
//
//	email := auth.GetEmail(c)
//
// Authorization is deliberately live: RequireAdmin re-reads the user's admin
// flag from the store on every delete rather than trusting a claim baked
// into the token, so role changes apply to tokens already in the wild.
package auth
