package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	ti, err := NewTokenIssuer(testSecret, time.Hour, "lms-test")
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}
	sm, err := NewSessionManager(testSecret, "lms-test-session", "", false, ti, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func TestTokenIssueVerify(t *testing.T) {
	ti, err := NewTokenIssuer(testSecret, time.Hour, "lms-test")
	if err != nil {
		t.Fatalf("NewTokenIssuer failed: %v", err)
	}

	in := SessionUser{AccountID: 42, LoginID: "staff01", Name: "Staff One", Role: "STAFF"}
	tok, exp, err := ti.Issue(in)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	out, err := ti.Verify(tok)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if *out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestTokenVerify_Tampered(t *testing.T) {
	ti, _ := NewTokenIssuer(testSecret, time.Hour, "lms-test")
	tok, _, err := ti.Issue(SessionUser{AccountID: 1, LoginID: "a", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip a character in the signature.
	tampered := tok[:len(tok)-2] + "xx"
	if _, err := ti.Verify(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestTokenIssuer_ShortSecret(t *testing.T) {
	if _, err := NewTokenIssuer("short", time.Hour, "lms-test"); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestSessionManager_ShortKey(t *testing.T) {
	if _, err := NewSessionManager("", "n", "", false, nil, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

func TestLoadSessionUser_Bearer(t *testing.T) {
	sm := newTestManager(t)
	tok, _, err := sm.tokens.Issue(SessionUser{AccountID: 7, LoginID: "stu07", Name: "Student", Role: "STUDENT"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	var got *SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))

	req := httptest.NewRequest("GET", "/api/surveys", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected user in context")
	}
	if got.AccountID != 7 || got.Role != "STUDENT" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newTestManager(t)
	h := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Unauthenticated request is rejected with JSON 401.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/accounts", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	// Authenticated request passes.
	rec = httptest.NewRecorder()
	req := WithTestUser(httptest.NewRequest("GET", "/api/accounts", nil),
		&SessionUser{AccountID: 1, Role: "ADMIN"})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	sm := newTestManager(t)
	h := sm.RequireRole("ADMIN", "STAFF")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name string
		user *SessionUser
		want int
	}{
		{"no user", nil, http.StatusUnauthorized},
		{"student forbidden", &SessionUser{AccountID: 2, Role: "STUDENT"}, http.StatusForbidden},
		{"staff allowed", &SessionUser{AccountID: 3, Role: "STAFF"}, http.StatusOK},
		{"admin allowed", &SessionUser{AccountID: 4, Role: "ADMIN"}, http.StatusOK},
		{"case-insensitive role", &SessionUser{AccountID: 5, Role: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/accounts", nil)
			if tt.user != nil {
				req = WithTestUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSignInRoundTrip(t *testing.T) {
	sm := newTestManager(t)

	// Sign in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	if err := sm.SignIn(rec, req, SessionUser{AccountID: 9, LoginID: "adm", Name: "Admin", Role: "ADMIN"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie")
	}

	// Replay the cookie through the middleware.
	var got *SessionUser
	h := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))
	req2 := httptest.NewRequest("GET", "/api/accounts", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected user from session cookie")
	}
	if got.AccountID != 9 || got.LoginID != "adm" || !strings.EqualFold(got.Role, "ADMIN") {
		t.Errorf("unexpected user: %+v", got)
	}
}
