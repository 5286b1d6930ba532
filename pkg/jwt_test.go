package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "awa@example.com", "employer", "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "awa@example.com", claims.Email)
	assert.Equal(t, "employer", claims.Role)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "awa@example.com", "jobseeker", "secret", 60)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	token, err := GenerateToken("user-1", "awa@example.com", "jobseeker", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.Error(t, err)
}
