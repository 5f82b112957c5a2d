package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "request_id"

// RequestID echoes the client's request ID or generates one.
func RequestID(c *fiber.Ctx) error {
	requestID := c.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set(RequestIDHeader, requestID)
	c.Locals(requestIDLocal, requestID)

	return c.Next()
}

// GetRequestID returns the request ID assigned by RequestID, if any.
func GetRequestID(c *fiber.Ctx) string {
	if requestID, ok := c.Locals(requestIDLocal).(string); ok {
		return requestID
	}
	return ""
}
