package helpers

import (
	"errors"

	"stakehouse/engine"

	"github.com/gofiber/fiber/v2"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONEngineError maps an engine rejection to its status and code. Engine
// sentinels already carry their upper-snake code as the error string.
func JSONEngineError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
		"data":    nil,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrUnauthorized), errors.Is(err, engine.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, engine.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, engine.ErrGameExists),
		errors.Is(err, engine.ErrAlreadySettled),
		errors.Is(err, engine.ErrAlreadyRequested),
		errors.Is(err, engine.ErrAlreadyOperator),
		errors.Is(err, engine.ErrNotOperator):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrInsufficientBalance),
		errors.Is(err, engine.ErrInsufficientFloat):
		return fiber.StatusPaymentRequired
	case errors.Is(err, engine.ErrPaused):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadRequest
	}
}
