package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	service := NewTokenService("test-secret")

	token, err := service.Issue("1", "a")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "1", claims.ID)
	assert.Equal(t, "a", claims.Name)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_VerifyTamperedToken(t *testing.T) {
	service := NewTokenService("test-secret")

	token, err := service.Issue("1", "a")
	assert.NoError(t, err)

	// Flip one character in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	claims, err := service.Verify(string(tampered))
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-one").Issue("1", "a")
	assert.NoError(t, err)

	claims, err := NewTokenService("secret-two").Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyMalformedToken(t *testing.T) {
	service := NewTokenService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := service.Verify(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}

func TestTokenService_NoSecret(t *testing.T) {
	service := NewTokenService("")
	assert.False(t, service.Configured())

	token, err := service.Issue("1", "a")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Empty(t, token)

	claims, err := service.Verify("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
	assert.Nil(t, claims)
}
