// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP/HTTPS ports,
// TLS, logging, CORS, request limits). AppConfig is everything specific to
// this application: database connection strings, auth secrets, storage,
// OAuth credentials, and seeding defaults.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// Admin credential configuration. Admin auth is a signed JWT in an
	// HTTP-only cookie; there is no server-side session state.
	JWTSecret     string        // Signing key for admin tokens (32+ chars in production)
	JWTCookieName string        // Cookie name carrying the admin token
	JWTTokenTTL   time.Duration // Admin token lifetime (default: 168h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// S3/CloudFront configuration (only used if StorageType is "s3")
	StorageS3Region    string // AWS region
	StorageS3Bucket    string // S3 bucket name
	StorageS3Prefix    string // Key prefix (e.g., "uploads/")
	StorageCFURL       string // CloudFront distribution URL
	StorageCFKeyPairID string // CloudFront key pair ID
	StorageCFKeyPath   string // Path to CloudFront private key file

	// BaseURL is the public origin of this service, used to build the
	// Google OAuth redirect URL.
	BaseURL string // e.g., "https://cms.novaaglobal.com" or "http://localhost:8080"

	// Frontend redirect targets for the OAuth flow.
	AdminLoginURL string // admin login page (failure redirects land here with ?error=)
	AdminPanelURL string // admin panel home (success redirects land here)

	// Google OAuth configuration
	GoogleClientID     string // Google OAuth2 client ID
	GoogleClientSecret string // Google OAuth2 client secret

	// Admin seeding configuration
	SeedAdminEmail    string // Email of the admin account to create on startup (if set)
	SeedAdminName     string // Display name of the seeded admin account
	SeedAdminPassword string // Initial password for the seeded admin account
}
