package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type SettleRequest struct {
	GameID     string `json:"game_id"`
	IsWin      bool   `json:"is_win"`
	WinAmount  string `json:"win_amount"`
	ResultHash string `json:"result_hash"`
}

func Settle(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.GameID == "" {
		return helpers.JSONError(c, "GAME_ID_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	var winAmount int64
	if req.IsWin {
		if req.WinAmount == "" {
			return helpers.JSONError(c, "WIN_AMOUNT_REQUIRED")
		}
		var err error
		winAmount, err = helpers.ParseAmount(req.WinAmount)
		if err != nil {
			return helpers.JSONError(c, err.Error())
		}
	}

	if err := engine.Casino.SettleGame(account, req.GameID, req.IsWin, winAmount, req.ResultHash); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	game, _ := engine.Casino.Game(req.GameID)

	return helpers.JSONSuccess(c, "Game settled", fiber.Map{
		"game_id":        game.ID,
		"state":          game.State,
		"is_win":         game.IsWin,
		"win_amount":     game.WinAmount,
		"player_balance": engine.Casino.BalanceOf(game.Player),
	})
}
