package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError converts a service error into a fiber error with a client-safe message.
func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrEmailConflict):
		return fiber.NewError(fiber.StatusBadRequest, model.ErrEmailConflict.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrUnauthenticated):
		return fiber.NewError(fiber.StatusUnauthorized, model.ErrUnauthenticated.Error())
	case errors.Is(err, model.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "task not found")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler writes errors returned from handlers and middleware as JSON.
// Anything that is not a *fiber.Error is reported as an internal error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			reasons = append(reasons, field+" is required")
		case "max":
			reasons = append(reasons, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			reasons = append(reasons, field+" is invalid")
		}
	}

	return fmt.Errorf("%w: %s", model.ErrValidation, strings.Join(reasons, "; "))
}

func invalidBody() error {
	return fmt.Errorf("%w: request body must be a JSON object", model.ErrValidation)
}
