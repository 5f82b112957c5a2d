package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
	now          func() time.Time

	dummyHash string
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenService *TokenService,
	logger *logger.Logger,
) (*Auth, error) {
	// Compared against when the email is unknown so both login failures cost one hash check.
	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
		dummyHash:    dummyHash,
	}, nil
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", model.ErrValidation)
	}
	return nil
}

func (a *Auth) Register(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := validateCredentials(email, password); err != nil {
		return model.AuthResult{}, err
	}
	if len(password) > model.MaxPasswordBytes {
		return model.AuthResult{}, fmt.Errorf("%w: password must be at most %d bytes", model.ErrValidation, model.MaxPasswordBytes)
	}

	hash, err := a.hasher.Hash(password)
	if errors.Is(err, model.ErrValidation) {
		return model.AuthResult{}, err
	}
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: email already registered",
				"email", email)
			return model.AuthResult{}, model.ErrEmailConflict
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := a.issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return result, nil
}

// Login verifies credentials. Unknown email and wrong password both yield model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (model.AuthResult, error) {
	a.logger.Debug("Auth service: starting login",
		"email", email)

	if err := validateCredentials(email, password); err != nil {
		return model.AuthResult{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			_ = a.hasher.Compare(a.dummyHash, password)
			a.logger.Info("Auth service: login failed",
				"email", email)
			return model.AuthResult{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: login failed",
			"email", email)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	result, err := a.issue(user)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return result, nil
}

func (a *Auth) issue(user model.User) (model.AuthResult, error) {
	token, expiresAt, err := a.tokenService.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return model.AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return model.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
