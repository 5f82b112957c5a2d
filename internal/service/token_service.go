package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// TokenService issues access tokens and resolves bearer credentials to user IDs.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

const bearerScheme = "bearer"

func (s *TokenService) Issue(userID uuid.UUID) (token string, expiresAt time.Time, err error) {
	token, expiresAt, err = s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("issue access: %w", err)
	}
	return token, expiresAt, nil
}

// Authenticate parses an Authorization header value of the form "Bearer <token>".
// Every failure is reported as model.ErrUnauthenticated.
func (s *TokenService) Authenticate(header string) (uuid.UUID, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], bearerScheme) {
		return uuid.Nil, fmt.Errorf("%w: malformed authorization header", model.ErrUnauthenticated)
	}

	userID, err := s.manager.ParseAccessToken(fields[1])
	if err != nil {
		s.logger.Debug("Token service: rejected access token",
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("%w: invalid token", model.ErrUnauthenticated)
	}
	if userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: token has no subject", model.ErrUnauthenticated)
	}

	return userID, nil
}
