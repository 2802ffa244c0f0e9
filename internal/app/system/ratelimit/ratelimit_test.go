package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckLimitsByLoginID(t *testing.T) {
	ll := NewLoginLimiter(Config{
		IPLimit: 100, IPWindow: time.Minute,
		LoginLimit: 2, LoginWindow: time.Minute,
	})

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(req, "Student01"); !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}
	ok, reason := ll.Check(req, "student01 ")
	if ok {
		t.Fatal("third attempt should be blocked; login ids are case-insensitive")
	}
	if reason != msgLoginLimited {
		t.Errorf("reason = %q, want login-limited message", reason)
	}

	// A different account from the same IP still gets through.
	if ok, _ := ll.Check(req, "student02"); !ok {
		t.Error("other login id should not be affected")
	}
}

func TestCheckLimitsByIP(t *testing.T) {
	ll := NewLoginLimiter(Config{
		IPLimit: 2, IPWindow: time.Minute,
		LoginLimit: 100, LoginWindow: time.Minute,
	})

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:40000"

	ll.Check(req, "a1")
	ll.Check(req, "a2")
	ok, reason := ll.Check(req, "a3")
	if ok {
		t.Fatal("third attempt from same IP should be blocked")
	}
	if reason != msgIPLimited {
		t.Errorf("reason = %q, want ip-limited message", reason)
	}

	other := httptest.NewRequest("POST", "/api/auth/login", nil)
	other.RemoteAddr = "10.0.0.3:40000"
	if ok, _ := ll.Check(other, "a3"); !ok {
		t.Error("other IP should not be affected")
	}
}

func TestResetLoginClearsWindow(t *testing.T) {
	ll := NewLoginLimiter(Config{
		IPLimit: 100, IPWindow: time.Minute,
		LoginLimit: 1, LoginWindow: time.Minute,
	})

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.4:40000"

	ll.Check(req, "resetme")
	if ok, _ := ll.Check(req, "resetme"); ok {
		t.Fatal("second attempt should be blocked")
	}
	ll.ResetLogin("ResetMe")
	if ok, _ := ll.Check(req, "resetme"); !ok {
		t.Error("attempt after reset should be allowed")
	}
}

func TestConfigZeroFieldsUseDefaults(t *testing.T) {
	ll := NewLoginLimiter(Config{})
	if ll.byIP.limit != defaultIPLimit || ll.byIP.window != defaultIPWindow {
		t.Errorf("ip counter = (%d, %v), want defaults", ll.byIP.limit, ll.byIP.window)
	}
	if ll.byLogin.limit != defaultLoginLimit || ll.byLogin.window != defaultLoginWindow {
		t.Errorf("login counter = (%d, %v), want defaults", ll.byLogin.limit, ll.byLogin.window)
	}
}

func TestClientIPPrefersProxyHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"

	if got := clientIP(req); got != "127.0.0.1" {
		t.Errorf("clientIP = %q, want RemoteAddr host", got)
	}

	req.Header.Set("X-Real-IP", "203.0.113.9")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("clientIP = %q, want X-Real-IP", got)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := clientIP(req); got != "198.51.100.7" {
		t.Errorf("clientIP = %q, want first X-Forwarded-For entry", got)
	}
}
