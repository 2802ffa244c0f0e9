// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/oauthstate"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
)

// Handler handles Google OAuth sign-in. Accounts are matched by the email
// address on file; OAuth never creates accounts.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Accounts *accountstore.Store
	States   *oauthstate.Store
	Sessions *auth.SessionManager

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://lms.example.edu/api/auth/google/callback"
	BaseURL      string // where the browser lands after sign-in
}

// NewHandler creates a Google OAuth handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, clientID, clientSecret, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		Accounts:     accountstore.New(db),
		States:       oauthstate.New(db),
		Sessions:     sm,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/api/auth/google/callback",
		BaseURL:      baseURL,
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured reports whether Google OAuth credentials are set.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}
