package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"joblink"
	"joblink/internal/api/handler/request"
	"joblink/internal/api/models"
	"joblink/internal/api/repo"
	"joblink/internal/apperrors"
	"joblink/internal/kvstore"
	"joblink/pkg"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  *repo.UserRepository
	config joblink.AppConfig
	logger zerolog.Logger
}

func NewAuthService(users *repo.UserRepository) *AuthService {
	return &AuthService{
		users:  users,
		config: joblink.GetConfig(),
		logger: joblink.Logger,
	}
}

// Signup creates the profile and credential records for a new user and
// signs them in. Duplicate emails are rejected before anything is written.
func (slf *AuthService) Signup(ctx context.Context, dto request.SignupDTO) (models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	userType := models.UserType(dto.UserType)
	if !userType.Valid() {
		return models.User{}, "", apperrors.Validation("userType must be jobseeker or employer")
	}

	exists, err := slf.users.AccountExists(ctx, email)
	if err != nil {
		return models.User{}, "", apperrors.Internal(err)
	}
	if exists {
		return models.User{}, "", apperrors.New(apperrors.CodeAlreadyExists,
			"an account with this email already exists", http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", apperrors.Internal(err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         dto.Name,
		UserType:     userType,
		Phone:        dto.Phone,
		Location:     dto.Location,
		BusinessName: dto.BusinessName,
		CreatedAt:    time.Now(),
	}
	if err := slf.users.Create(ctx, &user); err != nil {
		return models.User{}, "", apperrors.Internal(err)
	}

	account := models.Account{
		UserID:       user.ID,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := slf.users.CreateAccount(ctx, &account); err != nil {
		return models.User{}, "", apperrors.Internal(err)
	}

	token, err := slf.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	slf.logger.Info().Str("userId", user.ID).Str("userType", string(user.UserType)).Msg("user signed up")
	return user, token, nil
}

// Signin checks the credential record and returns a fresh access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (slf *AuthService) Signin(ctx context.Context, dto request.SigninDTO) (models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	account, err := slf.users.FindAccount(ctx, email)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.User{}, "", apperrors.Unauthorized("Invalid email or password")
		}
		return models.User{}, "", apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(dto.Password)); err != nil {
		return models.User{}, "", apperrors.Unauthorized("Invalid email or password")
	}

	user, err := slf.users.FindByID(ctx, account.UserID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.User{}, "", apperrors.Unauthorized("Invalid email or password")
		}
		return models.User{}, "", apperrors.Internal(err)
	}

	token, err := slf.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Session resolves the profile behind an already validated token.
func (slf *AuthService) Session(ctx context.Context, userID string) (models.User, error) {
	user, err := slf.users.FindByID(ctx, userID)
	if err != nil {
		if kvstore.IsNotFound(err) {
			return models.User{}, apperrors.Unauthorized("session user no longer exists")
		}
		return models.User{}, apperrors.Internal(err)
	}
	return user, nil
}

func (slf *AuthService) issueToken(user models.User) (string, error) {
	token, err := pkg.GenerateToken(user.ID, user.Email, string(user.UserType),
		slf.config.JWTConfig.Secret, slf.config.JWTConfig.Expiration)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return token, nil
}
