package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_UserToken(t *testing.T) {
	s := NewJWTService("super-secret", 0)

	tok, err := s.GenerateUserToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.User.ID)
	assert.Nil(t, claims.Store)
	assert.Nil(t, claims.ExpiresAt, "zero ttl issues tokens without expiry")
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateAndValidate_StoreToken(t *testing.T) {
	s := NewJWTService("super-secret", time.Hour)

	tok, err := s.GenerateStoreToken(7, 3)
	require.NoError(t, err)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.User.ID)
	require.NotNil(t, claims.Store)
	assert.Equal(t, uint(3), claims.Store.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateToken_Table(t *testing.T) {
	good := NewJWTService("secret-a", time.Hour)

	expired := func() string {
		claims := &Claims{User: Subject{ID: 1}}
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-a"))
		require.NoError(t, err)
		return tok
	}

	otherSecret, err := NewJWTService("secret-b", time.Hour).GenerateUserToken(1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", otherSecret},
		{"expired", expired()},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := good.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
