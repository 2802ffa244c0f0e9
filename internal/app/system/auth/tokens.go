// internal/app/system/auth/tokens.go
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints and verifies bearer tokens for non-browser API clients
// (the admin CLI and the SDK). Tokens carry the same identity fields as the
// session cookie, so handlers see one SessionUser regardless of auth path.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

type tokenClaims struct {
	LoginID string `json:"loginId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// NewTokenIssuer creates a TokenIssuer with the given HMAC secret and TTL.
func NewTokenIssuer(secret string, ttl time.Duration, issuer string) (*TokenIssuer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("token secret too short: need ≥32 bytes, got %d", len(secret))
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, issuer: issuer}, nil
}

// Issue mints a signed token for the given user, returning the token string
// and its expiry time.
func (ti *TokenIssuer) Issue(u SessionUser) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ti.ttl)
	claims := tokenClaims{
		LoginID: u.LoginID,
		Name:    u.Name,
		Role:    u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.AccountID, 10),
			Issuer:    ti.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify parses and validates a token string and returns the embedded user.
func (ti *TokenIssuer) Verify(tokenString string) (*SessionUser, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return ti.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("verify token: bad subject %q", claims.Subject)
	}
	return &SessionUser{
		AccountID: accountID,
		LoginID:   claims.LoginID,
		Name:      claims.Name,
		Role:      claims.Role,
	}, nil
}
