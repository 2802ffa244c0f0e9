package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// AdminUser returns a session user with the ADMIN role.
func AdminUser() *auth.SessionUser {
	return &auth.SessionUser{
		AccountID: 1,
		LoginID:   "admin",
		Name:      "Test Admin",
		Role:      models.RoleAdmin,
	}
}

// StaffUser returns a session user with the STAFF role.
func StaffUser() *auth.SessionUser {
	return &auth.SessionUser{
		AccountID: 2,
		LoginID:   "staff",
		Name:      "Test Staff",
		Role:      models.RoleStaff,
	}
}

// StudentUser returns a session user with the STUDENT role and the given id.
func StudentUser(accountID int64) *auth.SessionUser {
	return &auth.SessionUser{
		AccountID: accountID,
		LoginID:   "student",
		Name:      "Test Student",
		Role:      models.RoleStudent,
	}
}

// WithUser adds a session user to the request context, bypassing the
// session middleware for handler tests.
func WithUser(r *http.Request, user *auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, user)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates an HTTP request carrying a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeData unmarshals the "data" member of a response envelope into out.
func DecodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response envelope: %v (body %q)", err, rec.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode response data: %v", err)
	}
}
