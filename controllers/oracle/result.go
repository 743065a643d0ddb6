package oracle

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type ResultRequest struct {
	GameID string `json:"game_id"`
}

func Result(c *fiber.Ctx) error {
	var req ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.GameID == "" {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	value, fulfilled := engine.Casino.RandomnessResult(req.GameID)

	data := fiber.Map{
		"game_id":   req.GameID,
		"fulfilled": fulfilled,
	}
	if fulfilled {
		data["value"] = value
	}

	return helpers.JSONSuccess(c, "Randomness result retrieved successfully", data)
}
