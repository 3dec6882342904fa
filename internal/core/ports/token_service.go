package ports

import (
	"time"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// TokenClaims is the decoded payload of a bearer token. Fixed shape: decode
// errors fail closed rather than degrade to a partial claim set.
type TokenClaims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless bearer tokens. Verify never
// returns a hard error for a bad token: an invalid, expired, or malformed
// token yields ok=false so the caller can proceed unauthenticated.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (claims *TokenClaims, ok bool)
	// ExtractSubject decodes the subject claim from an already-verified token.
	ExtractSubject(token string) (string, error)
}

// PasswordHasher abstracts the adaptive password hash primitive so tests can
// substitute a deterministic fake.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}
