package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndValidate(t *testing.T) {
	s, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	tok, err := s.GenerateToken("1234567890", "admin")
	require.NoError(t, err)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsTampering(t *testing.T) {
	s, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	tok, err := s.GenerateToken("42", "user")
	require.NoError(t, err)

	// Flip a character in the signature.
	tampered := tok[:len(tok)-2] + strings.Repeat("x", 2)
	claims, err := s.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err = s.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidateRejectsOtherSecret(t *testing.T) {
	a, err := NewService(Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)
	b, err := NewService(Config{SecretKey: strings.ToUpper(testSecret), Duration: time.Hour})
	require.NoError(t, err)

	tok, err := a.GenerateToken("42", "user")
	require.NoError(t, err)

	claims, err := b.ValidateToken(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewServiceConfigValidation(t *testing.T) {
	_, err := NewService(Config{SecretKey: "", Duration: time.Hour})
	assert.ErrorIs(t, err, ErrEmptySecretKey)

	_, err = NewService(Config{SecretKey: "short", Duration: time.Hour})
	assert.ErrorIs(t, err, ErrWeakSecretKey)

	_, err = NewService(Config{SecretKey: testSecret, Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
