package lmsapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestErrorMessageFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"account not found"}`, "account not found"},
		{"nested error.message", `{"error":{"message":"nested"}}`, "nested"},
		{"raw text", `something broke`, "something broke"},
		{"empty body", ``, "request failed (404)"},
		{"whitespace body", "  \n ", "request failed (404)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := errorMessage(404, []byte(tc.body)); got != tc.want {
				t.Errorf("errorMessage = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"offering is full"}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.PostJSON(context.Background(), "/api/offerings/1/enrollments", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "offering is full" {
		t.Errorf("got %+v", apiErr)
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `{"data":[]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok123"))
	if _, err := c.GetJSON(context.Background(), "/api/accounts", nil); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestClientQueryEncoding(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		io.WriteString(w, `{"data":[]}`)
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("page", "2")
	params.Set("keyword", "김")
	c := New(srv.URL)
	if _, err := c.GetJSON(context.Background(), "/api/accounts", params); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotQuery.Get("page") != "2" || gotQuery.Get("keyword") != "김" {
		t.Errorf("query = %v", gotQuery)
	}
}

func TestClientPostMultipart(t *testing.T) {
	type received struct {
		request string
		files   []string
	}
	var got received

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		got.request = r.FormValue("request")
		for _, fh := range r.MultipartForm.File["files"] {
			got.files = append(got.files, fh.Filename)
		}
		io.WriteString(w, `{"data":{"id":1}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	body, err := c.PostMultipart(context.Background(), "/api/resources",
		map[string]string{"title": "Week 1 slides"},
		[]Upload{
			{Name: "slides.pdf", Reader: strings.NewReader("%PDF-")},
			{Name: "notes.txt", Reader: strings.NewReader("hello")},
		})
	if err != nil {
		t.Fatalf("PostMultipart: %v", err)
	}
	if UnwrapData(body).Int64("id") != 1 {
		t.Errorf("unexpected body: %s", body)
	}
	if !strings.Contains(got.request, `"title":"Week 1 slides"`) {
		t.Errorf("request part = %q", got.request)
	}
	if len(got.files) != 2 || got.files[0] != "slides.pdf" || got.files[1] != "notes.txt" {
		t.Errorf("files = %v", got.files)
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		io.WriteString(w, `{"data":{"token":"jwt123","expiresAt":"2026-09-01T00:00:00Z","user":{"accountId":7,"loginId":"admin","name":"Admin","role":"ADMIN"}}}`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	sess, err := c.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Token != "jwt123" || sess.AccountID != 7 || sess.Role != "ADMIN" {
		t.Errorf("session = %+v", sess)
	}
	if c.token != "jwt123" {
		t.Error("token was not installed on the client")
	}
}
