// Package token issues and verifies the signed bearer tokens that carry
// customer identity between requests. Tokens are never persisted; claims
// are reconstructed and validated per request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any verification failure: malformed
// token, signature mismatch, or elapsed expiry. Callers must treat every
// cause uniformly.
var ErrInvalidToken = errors.New("invalid token")

// ExpiresIn is the human-readable lifetime echoed in auth responses.
const ExpiresIn = "24hrs"

// Claims is the identity assertion embedded in an issued token.
type Claims struct {
	CustomerID int    `json:"customer_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with a process-wide secret loaded
// once at startup.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue encodes the customer identity plus issuance and expiry
// timestamps and signs the result.
func (m *Manager) Issue(customerID int, email string) (string, error) {
	now := m.now()
	claims := Claims{
		CustomerID: customerID,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify validates the signature and expiry and returns the embedded
// claims. Any failure yields ErrInvalidToken without distinguishing the
// cause.
func (m *Manager) Verify(raw string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
