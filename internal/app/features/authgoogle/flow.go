// internal/app/features/authgoogle/flow.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
)

const stateTTL = 10 * time.Minute

// ServeLogin handles GET /api/auth/google and redirects the browser to
// Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("google oauth not configured")
		h.redirectWithError(w, r, "google_not_configured")
		return
	}

	state, err := generateState()
	if err != nil {
		h.Log.Error("failed to generate oauth state", zap.Error(err))
		h.redirectWithError(w, r, "internal")
		return
	}

	returnURL := query.Get(r, "return")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.States.Save(ctx, state, returnURL, time.Now().UTC().Add(stateTTL)); err != nil {
		h.Log.Error("failed to save oauth state", zap.Error(err))
		h.redirectWithError(w, r, "internal")
		return
	}

	http.Redirect(w, r, h.oauth2Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /api/auth/google/callback. It validates the
// state token, exchanges the code, matches the Google email to an account,
// and establishes a session.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := query.Get(r, "error"); errParam != "" {
		h.Log.Warn("google oauth error", zap.String("error", errParam))
		h.redirectWithError(w, r, "google_denied")
		return
	}

	state := query.Get(r, "state")
	if state == "" {
		h.redirectWithError(w, r, "invalid_state")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	returnURL, valid, err := h.States.Validate(ctx, state)
	if err != nil {
		h.Log.Error("failed to validate oauth state", zap.Error(err))
		h.redirectWithError(w, r, "internal")
		return
	}
	if !valid {
		h.Log.Warn("invalid or expired oauth state")
		h.redirectWithError(w, r, "invalid_state")
		return
	}

	code := query.Get(r, "code")
	if code == "" {
		h.redirectWithError(w, r, "invalid_code")
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange oauth code", zap.Error(err))
		h.redirectWithError(w, r, "token_exchange")
		return
	}

	info, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch google user info", zap.Error(err))
		h.redirectWithError(w, r, "user_info")
		return
	}
	if info.Email == "" || !info.EmailVerified {
		h.redirectWithError(w, r, "email_unverified")
		return
	}

	acct, err := h.Accounts.GetByEmail(ctx, strings.ToLower(info.Email))
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			h.Log.Info("google sign-in for unknown email", zap.String("email", info.Email))
			h.redirectWithError(w, r, "no_account")
			return
		}
		h.Log.Error("failed to look up account by email", zap.Error(err))
		h.redirectWithError(w, r, "internal")
		return
	}
	if !acct.IsActive() {
		h.redirectWithError(w, r, "account_suspended")
		return
	}

	user := auth.SessionUser{
		AccountID: acct.AccountID,
		LoginID:   acct.LoginID,
		Name:      acct.FullName,
		Role:      acct.Role,
	}
	if err := h.Sessions.SignIn(w, r, user); err != nil {
		h.Log.Error("failed to establish session", zap.Error(err))
		h.redirectWithError(w, r, "internal")
		return
	}

	h.Log.Info("account signed in via google",
		zap.Int64("account_id", acct.AccountID),
		zap.String("login_id", acct.LoginID))

	dest := h.BaseURL
	if returnURL != "" && strings.HasPrefix(returnURL, "/") {
		dest = h.BaseURL + returnURL
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, h.BaseURL+"/login?error="+url.QueryEscape(code), http.StatusSeeOther)
}

// googleUserInfo is the payload from Google's userinfo endpoint.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
