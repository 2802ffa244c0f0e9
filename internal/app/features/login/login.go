package login

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
)

type loginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      auth.SessionUser `json:"user"`
}

// HandleLogin handles POST /api/auth/login.
//
// Failed attempts are rate limited per client IP and per login id; the
// same generic message is returned for unknown accounts and wrong
// passwords so that login ids cannot be probed.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	loginID := normalize.LoginID(req.LoginID)
	if loginID == "" || req.Password == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "login id and password are required")
		return
	}

	if ok, reason := h.Limiter.Check(r, loginID); !ok {
		httpapi.WriteError(w, http.StatusTooManyRequests, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Accounts.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			// Burn a comparison so timing does not reveal whether the
			// login id exists.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			httpapi.WriteError(w, http.StatusUnauthorized, "incorrect login id or password")
			return
		}
		h.errs.ServerError(w, "failed to load account", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(req.Password)); err != nil {
		httpapi.WriteError(w, http.StatusUnauthorized, "incorrect login id or password")
		return
	}

	if !acct.IsActive() {
		httpapi.WriteError(w, http.StatusForbidden, "account is suspended")
		return
	}

	user := auth.SessionUser{
		AccountID: acct.AccountID,
		LoginID:   acct.LoginID,
		Name:      acct.FullName,
		Role:      acct.Role,
	}

	if err := h.Sessions.SignIn(w, r, user); err != nil {
		h.errs.ServerError(w, "failed to establish session", err)
		return
	}

	token, expiresAt, err := h.Tokens.Issue(user)
	if err != nil {
		h.errs.ServerError(w, "failed to issue token", err)
		return
	}

	h.Limiter.ResetLogin(loginID)
	h.Log.Info("account signed in",
		zap.Int64("account_id", acct.AccountID),
		zap.String("login_id", acct.LoginID))

	httpapi.WriteData(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	})
}

// dummyHash is a bcrypt hash of a random string, used to equalize
// response timing for unknown login ids.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("lms-timing-pad"), bcrypt.DefaultCost)
	return h
}()
