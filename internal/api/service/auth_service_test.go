package service

import (
	"context"
	"strings"
	"testing"

	"joblink/internal/api/handler/request"
	"joblink/internal/apperrors"
	"joblink/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_Signup(t *testing.T) {
	env := newTestEnv(t)

	email := strings.ToUpper(uniqueEmail())
	user, token, err := env.auth.Signup(context.Background(), request.SignupDTO{
		Email:        email,
		Password:     "testpassword123",
		Name:         "Awa Diallo",
		UserType:     "employer",
		BusinessName: "Diallo Services",
	})
	require.NoError(t, err, "Failed to sign up")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, strings.ToLower(email), user.Email)
	assert.Equal(t, "Diallo Services", user.BusinessName)
	assert.False(t, user.CreatedAt.IsZero())

	claims, err := pkg.ValidateToken(token, testConfig().JWTConfig.Secret)
	require.NoError(t, err, "Signup token should validate")
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "employer", claims.Role)
}

func TestAuth_Signup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	dto := request.SignupDTO{
		Email:    uniqueEmail(),
		Password: "testpassword123",
		Name:     "Awa Diallo",
		UserType: "jobseeker",
	}
	_, _, err := env.auth.Signup(context.Background(), dto)
	require.NoError(t, err)

	_, _, err = env.auth.Signup(context.Background(), dto)
	require.Error(t, err, "Should fail on duplicate email")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyExists))
}

func TestAuth_Signin(t *testing.T) {
	env := newTestEnv(t)

	email := uniqueEmail()
	_, _, err := env.auth.Signup(context.Background(), request.SignupDTO{
		Email:    email,
		Password: "testpassword123",
		Name:     "Moussa Ndiaye",
		UserType: "jobseeker",
	})
	require.NoError(t, err)

	user, token, err := env.auth.Signin(context.Background(), request.SigninDTO{
		Email:    email,
		Password: "testpassword123",
	})
	require.NoError(t, err, "Failed to sign in")
	assert.Equal(t, email, user.Email)
	assert.NotEmpty(t, token)
}

func TestAuth_Signin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	email := uniqueEmail()
	_, _, err := env.auth.Signup(context.Background(), request.SignupDTO{
		Email:    email,
		Password: "testpassword123",
		Name:     "Moussa Ndiaye",
		UserType: "jobseeker",
	})
	require.NoError(t, err)

	_, _, err = env.auth.Signin(context.Background(), request.SigninDTO{
		Email:    email,
		Password: "wrongpassword",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestAuth_Signin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.auth.Signin(context.Background(), request.SigninDTO{
		Email:    uniqueEmail(),
		Password: "testpassword123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestAuth_Session(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupJobseeker(t)

	got, err := env.auth.Session(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuth_Session_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Session(context.Background(), "missing-user-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}
