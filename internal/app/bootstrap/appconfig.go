// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, CORS). AppConfig is everything specific to the LMS: database
// connection strings, session and token secrets, file storage, OAuth
// credentials, and rate limit knobs.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session cookie configuration
	SessionKey    string // secret key for signing session cookies
	SessionName   string // cookie name (default: lms-session)
	SessionDomain string // cookie domain (blank means current host)

	// Bearer token configuration (API clients)
	TokenSecret string
	TokenExpiry time.Duration

	// File storage (uploaded resource files)
	StorageLocalPath string // e.g. "./uploads/resources"
	StorageURLPrefix string // e.g. "/files/resources"

	// Base URL used for OAuth callbacks and post-login redirects
	BaseURL string

	// Google OAuth (optional; password login always works)
	GoogleClientID     string
	GoogleClientSecret string

	// Login rate limiting
	LoginIPLimit    int
	LoginIPWindow   time.Duration
	LoginIDLimit    int
	LoginIDWindow   time.Duration
}
