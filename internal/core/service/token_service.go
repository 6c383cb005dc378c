package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// DefaultTokenTTL is the fixed validity window of issued session tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256-signed stateless session tokens.
// Tokens are never stored server-side; expiry is the only invalidation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service issuing tokens valid for ttl. Callers own
// the value; production wiring passes DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the user's id, username and role at issuance
// time. Role changes after issuance are not reflected until re-login.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a raw token. Every failure collapses to
// ErrUnauthorized so callers cannot distinguish which check failed.
func (s *TokenService) Verify(raw string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrUnauthorized
	}
	username, _ := claims["username"].(string)

	roleStr, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		role = domain.RoleUser
	}

	return &ports.TokenClaims{UserID: sub, Username: username, Role: role}, nil
}
