package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	token, err := jwtService.GenerateToken("hr_user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hr_user", claims.Username)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	_, err := jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken("hr_user")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}
