package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.AuthResult, error)
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account and responds with an access token.
func (h *Auth) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(invalidBody())
	}
	if err := validateRequest(req); err != nil {
		return handleError(err)
	}

	h.logger.Debug("Auth handler: processing registration request",
		"email", req.Email)

	res, err := h.authService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(newAuthResponse(res))
}

// Login checks credentials and responds with an access token.
func (h *Auth) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return handleError(invalidBody())
	}
	if err := validateRequest(req); err != nil {
		return handleError(err)
	}

	res, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(err)
	}

	return c.JSON(newAuthResponse(res))
}
