package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/tasktracker-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()
	requestID := GetRequestID(c)

	l.logger.Debug("HTTP request started",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", requestID)

	err := c.Next()
	if err != nil {
		// Write the error response now so the logged status is the one sent.
		if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	args := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	}

	switch {
	case status >= fiber.StatusInternalServerError:
		if err != nil {
			args = append(args, "error", err.Error())
		}
		l.logger.Error("HTTP request failed", args...)
	case status >= fiber.StatusBadRequest:
		l.logger.Warn("HTTP request completed", args...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}

	return nil
}
