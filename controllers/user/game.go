package user

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type GameRequest struct {
	GameID string `json:"game_id"`
}

func Game(c *fiber.Ctx) error {
	var req GameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.GameID == "" {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	game, ok := engine.Casino.Game(req.GameID)
	if !ok {
		return helpers.JSONEngineError(c, engine.ErrGameNotFound)
	}

	data := fiber.Map{
		"game_id":       game.ID,
		"player":        game.Player,
		"bet_amount":    game.BetAmount,
		"state":         game.State,
		"provably_fair": game.ProvablyFair,
		"created_at":    game.CreatedAt,
	}
	if game.State == engine.GameSettled {
		data["is_win"] = game.IsWin
		data["win_amount"] = game.WinAmount
		if game.ResultHash != "" {
			data["result_hash"] = game.ResultHash
		}
	}
	if value, fulfilled := engine.Casino.RandomnessResult(req.GameID); fulfilled {
		data["random_value"] = value
	}

	return helpers.JSONSuccess(c, "Game retrieved successfully", data)
}
