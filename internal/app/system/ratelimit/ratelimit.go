// internal/app/system/ratelimit/ratelimit.go

// Package ratelimit throttles sign-in attempts. Two windows run side by
// side, one keyed by client IP and one keyed by normalized login id, so
// neither one address spraying many accounts nor many addresses hitting
// one account slips through.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
)

// Config sets the limits for both windows. Zero fields fall back to the
// package defaults.
type Config struct {
	IPLimit     int // attempts per IP per IPWindow
	IPWindow    time.Duration
	LoginLimit  int // attempts per login id per LoginWindow
	LoginWindow time.Duration
}

const (
	defaultIPLimit     = 10
	defaultIPWindow    = time.Minute
	defaultLoginLimit  = 5
	defaultLoginWindow = 5 * time.Minute
)

const (
	msgIPLimited    = "Too many login attempts. Please wait a minute before trying again."
	msgLoginLimited = "Too many login attempts for this account. Please wait a few minutes."
)

// LoginLimiter gates login attempts. Safe for concurrent use.
type LoginLimiter struct {
	byIP    *counter
	byLogin *counter
}

// NewLoginLimiter builds a limiter from cfg, filling zero fields with the
// defaults.
func NewLoginLimiter(cfg Config) *LoginLimiter {
	if cfg.IPLimit <= 0 {
		cfg.IPLimit = defaultIPLimit
	}
	if cfg.IPWindow <= 0 {
		cfg.IPWindow = defaultIPWindow
	}
	if cfg.LoginLimit <= 0 {
		cfg.LoginLimit = defaultLoginLimit
	}
	if cfg.LoginWindow <= 0 {
		cfg.LoginWindow = defaultLoginWindow
	}
	return &LoginLimiter{
		byIP:    newCounter(cfg.IPLimit, cfg.IPWindow),
		byLogin: newCounter(cfg.LoginLimit, cfg.LoginWindow),
	}
}

// Check reports whether a login attempt may proceed. When blocked, the
// second return value carries the message for the 429 response. The IP
// window is consulted first; the login window only when a login id was
// submitted.
func (ll *LoginLimiter) Check(r *http.Request, loginID string) (bool, string) {
	if !ll.byIP.allow(clientIP(r)) {
		return false, msgIPLimited
	}
	if key := normalize.LoginID(loginID); key != "" {
		if !ll.byLogin.allow(key) {
			return false, msgLoginLimited
		}
	}
	return true, ""
}

// ResetLogin clears the login-id window after a successful sign-in, so a
// user who eventually gets the password right is not locked out by their
// own earlier typos.
func (ll *LoginLimiter) ResetLogin(loginID string) {
	if key := normalize.LoginID(loginID); key != "" {
		ll.byLogin.reset(key)
	}
}

// counter is a fixed-window attempt counter over string keys.
type counter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	seen   map[string]windowEntry
}

type windowEntry struct {
	n     int
	until time.Time
}

func newCounter(limit int, window time.Duration) *counter {
	c := &counter{
		limit:  limit,
		window: window,
		seen:   make(map[string]windowEntry),
	}
	go c.sweep()
	return c
}

func (c *counter) allow(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	e, ok := c.seen[key]
	if !ok || now.After(e.until) {
		c.seen[key] = windowEntry{n: 1, until: now.Add(c.window)}
		return true
	}
	if e.n >= c.limit {
		return false
	}
	e.n++
	c.seen[key] = e
	return true
}

func (c *counter) reset(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.seen, key)
}

// sweep drops expired entries so the map does not grow with every key
// ever seen.
func (c *counter) sweep() {
	ticker := time.NewTicker(2 * c.window)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, e := range c.seen {
			if now.After(e.until) {
				delete(c.seen, key)
			}
		}
		c.mu.Unlock()
	}
}

// clientIP resolves the caller's address, preferring the proxy headers
// over RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
