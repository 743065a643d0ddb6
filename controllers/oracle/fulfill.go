package oracle

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type FulfillRequest struct {
	Handle string `json:"handle"`
	Value  uint64 `json:"value"`
}

// Fulfill delivers a randomness callback. Unknown and duplicate handles are
// acknowledged with success: oracle networks replay callbacks and a replayed
// delivery is not an error on either side.
func Fulfill(c *fiber.Ctx) error {
	var req FulfillRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Handle == "" {
		return helpers.JSONError(c, "HANDLE_REQUIRED")
	}

	if err := engine.Casino.FulfillRandomness(req.Handle, req.Value); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Fulfillment processed", nil)
}
