// Package auth implements the admin credential gate: a signed, time-boxed
// JWT carried in an HTTP-only cookie. The server keeps no session state;
// validity is recomputed on every request from signature and expiry, plus a
// lookup confirming the administrator record is still live.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nexgeno-Developers/novaa-cms/internal/domain/models"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "novaa_admin_token"

// DefaultTokenTTL is the credential lifetime when none is configured.
// There is no refresh mechanism; re-authentication requires a fresh login.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: missing, malformed,
// bad signature, expired. Callers must not distinguish these to the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload for an admin credential.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and verifies admin credentials and manages the cookie.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	logger     *zap.Logger
}

// ConfigError reports invalid auth configuration at startup.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return "auth config: " + e.Message }

// NewManager creates a Manager.
//
// secret must be non-empty; in secure (production) mode it must be at least
// 32 bytes so HS256 has adequate key material. cookieName and ttl fall back
// to the package defaults when zero.
func NewManager(secret, cookieName string, ttl time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, &ConfigError{Message: "signing secret is empty"}
	}
	if secure && len(secret) < 32 {
		return nil, &ConfigError{Message: "signing secret must be at least 32 chars in production"}
	}
	if !secure && len(secret) < 32 {
		logger.Warn("JWT signing secret is weak; 32+ random chars required in production",
			zap.Int("length", len(secret)))
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}, nil
}

// CookieName returns the configured credential cookie name.
func (m *Manager) CookieName() string { return m.cookieName }

// Issue signs a credential for the given admin. The expiry is a fixed
// offset from issuance.
func (m *Manager) Issue(admin models.Admin) (string, time.Time, error) {
	now := time.Now().UTC()
	expires := now.Add(m.ttl)

	claims := Claims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Verify parses and validates a credential string. Any failure - bad
// signature, wrong algorithm, expired - returns ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetCookie writes the credential cookie. HTTP-only and SameSite=Strict:
// the token is never readable from script and never sent cross-site.
func (m *Manager) SetCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearCookie removes the credential cookie by setting max-age to zero.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// TokenFromRequest extracts the raw credential from the request cookie.
func (m *Manager) TokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
