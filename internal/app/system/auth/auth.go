// internal/app/system/auth/auth.go
package auth

// Terminology: Account Identifiers
//   - AccountID / account_id: the numeric id that uniquely identifies an account
//   - LoginID / login_id: the human-readable string accounts type to log in

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey    = "is_authenticated"
	accountIDKey = "account_id"
	loginIDKey   = "login_id"
	nameKey      = "account_name"
	roleKey      = "account_role"
)

// SessionUser is what we cache in the session & inject into r.Context().
// Ownership checks (e.g. "may this user edit this Q&A post") compare
// AccountID; authorization gates compare Role.
type SessionUser struct {
	AccountID int64  `json:"accountId"`
	LoginID   string `json:"loginId"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// IsAdmin reports whether the request carries an ADMIN session.
func IsAdmin(r *http.Request) bool {
	u, ok := CurrentUser(r)
	return ok && u.Role == "ADMIN"
}

// SessionManager owns the cookie store and the bearer-token verifier.
// Requests may authenticate either way; the session cookie is checked first,
// then the Authorization header.
type SessionManager struct {
	store  *sessions.CookieStore
	name   string
	tokens *TokenIssuer
	log    *zap.Logger
}

// NewSessionManager initializes the cookie store using the provided session
// key and domain. The `secure` flag controls whether cookies are marked
// Secure and which SameSite mode is used.
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, tokens *TokenIssuer, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: sessionName, tokens: tokens, log: logger}, nil
}

// SignIn writes the user into the session cookie.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values[isAuthKey] = true
	sess.Values[accountIDKey] = u.AccountID
	sess.Values[loginIDKey] = u.LoginID
	sess.Values[nameKey] = u.Name
	sess.Values[roleKey] = u.Role
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if the request carries a
// valid session cookie or a bearer token. It never rejects; gating is the
// job of RequireSignedIn / RequireRole.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := sm.userFromSession(r); ok {
			next.ServeHTTP(w, withUser(r, u))
			return
		}
		if u, ok := sm.userFromBearer(r); ok {
			next.ServeHTTP(w, withUser(r, u))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (sm *SessionManager) userFromSession(r *http.Request) (*SessionUser, bool) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return nil, false
	}
	if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
		return nil, false
	}
	u := &SessionUser{
		AccountID: getInt64(sess, accountIDKey),
		LoginID:   getString(sess, loginIDKey),
		Name:      getString(sess, nameKey),
		Role:      getString(sess, roleKey),
	}
	return u, true
}

func (sm *SessionManager) userFromBearer(r *http.Request) (*SessionUser, bool) {
	if sm.tokens == nil {
		return nil, false
	}
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}
	u, err := sm.tokens.Verify(strings.TrimPrefix(h, "Bearer "))
	if err != nil {
		sm.log.Debug("bearer token rejected", zap.Error(err))
		return nil, false
	}
	return u, true
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// API callers get a plain 401 JSON body; there are no HTML redirects here.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
	})
}

// RequireRole ensures the signed-in user holds one of the allowed roles.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
				return
			}
			if _, has := set[strings.ToUpper(u.Role)]; !has {
				httpapi.WriteError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user directly into the request context.
// Handler tests use this to bypass the session middleware.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func getInt64(s *sessions.Session, key string) int64 {
	if v, ok := s.Values[key].(int64); ok {
		return v
	}
	return 0
}
