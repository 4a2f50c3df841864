// Package auth implements credential validation and signed session tokens
// for the admin surface.
package auth

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eazyservice/sitekeeper/internal/apperr"
)

// CookieName is the session cookie set on successful login.
const CookieName = "admin_token"

// RoleAdmin is the only role issued; there is a single operator identity.
const RoleAdmin = "admin"

// Identity is the verified subject embedded in a session token.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Options configures a Gate. PasswordHash (bcrypt) takes precedence over
// the plaintext Password when both are set; a plaintext-only configuration
// is the documented accepted weakness of the single-operator setup.
type Options struct {
	Username     string
	Password     string
	PasswordHash string
	Secret       string
	TTL          time.Duration
}

// Gate validates the operator credential pair and issues/verifies the
// signed session tokens guarding the admin surface. Tokens are stateless:
// validity is fully determined by signature and expiry, so there is no
// server-side session to revoke.
type Gate struct {
	username     string
	password     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

// NewGate creates a Gate from the given options.
func NewGate(opts Options) *Gate {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Gate{
		username:     opts.Username,
		password:     opts.Password,
		passwordHash: opts.PasswordHash,
		secret:       []byte(opts.Secret),
		ttl:          ttl,
	}
}

// TTL returns the session lifetime, which also bounds the cookie MaxAge.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// ValidateCredentials reports whether the pair matches the configured
// operator identity. Callers must not reveal which field mismatched.
func (g *Gate) ValidateCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1

	var passOK bool
	if g.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	}

	return userOK && passOK
}

// IssueToken produces a signed session token for username, expiring after
// the configured TTL.
func (g *Gate) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// identity. Any failure (bad signature, expired, malformed) maps to
// apperr.ErrInvalidToken; no further detail is exposed.
func (g *Gate) VerifyToken(token string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, apperr.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return Identity{}, apperr.ErrInvalidToken
	}
	return Identity{Username: claims.Username, Role: claims.Role}, nil
}
