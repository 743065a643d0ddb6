package user

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type PlaceBetRequest struct {
	GameID       string `json:"game_id"`
	Amount       string `json:"amount"`
	ProvablyFair bool   `json:"provably_fair"`
}

func PlaceBet(c *fiber.Ctx) error {
	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.GameID == "" || req.Amount == "" {
		return helpers.JSONError(c, "GAME_ID_AND_AMOUNT_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	handle, err := engine.Casino.PlaceBet(account, req.GameID, amount, req.ProvablyFair)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	data := fiber.Map{
		"game_id": req.GameID,
		"balance": engine.Casino.BalanceOf(account),
		"state":   engine.GamePending,
	}
	if handle != "" {
		data["randomness_handle"] = handle
	}

	return helpers.JSONSuccess(c, "Bet placed", data)
}
