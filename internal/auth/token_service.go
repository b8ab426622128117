package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is the duration for which issued tokens are valid. The bearer
// tokens are stateless, so expiry is the only revocation mechanism.
const TokenExpiry = 24 * time.Hour

// ErrNoSecret is returned when no signing secret is configured. Callers must
// still answer the request (500), never drop it.
var ErrNoSecret = errors.New("signing secret is not configured")

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens carrying a user identity claim.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given secret. An empty
// secret yields a degraded service whose Issue and Verify fail with ErrNoSecret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Configured reports whether a signing secret is present.
func (s *TokenService) Configured() bool {
	return len(s.secret) > 0
}

// Issue signs a token for the given identity.
func (s *TokenService) Issue(id, name string) (string, error) {
	if !s.Configured() {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := &Claims{
		ID:   id,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns the embedded claims. It fails on a
// signature mismatch, malformed token, expired token, or missing secret.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if !s.Configured() {
		return nil, ErrNoSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
