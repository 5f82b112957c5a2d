package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// TokenService resolves an Authorization header to a user ID.
type TokenService interface {
	Authenticate(header string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle rejects the request with 401 unless it carries a valid bearer token.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	userID, err := m.tokenService.Authenticate(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.Path(),
			"error", err.Error())
		return fiber.NewError(fiber.StatusUnauthorized, model.ErrUnauthenticated.Error())
	}

	c.SetUserContext(m.contextManager.SetUserIDToContext(c.UserContext(), userID))
	return c.Next()
}
