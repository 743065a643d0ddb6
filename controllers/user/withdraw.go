package user

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type WithdrawRequest struct {
	Amount string `json:"amount"`
}

func Withdraw(c *fiber.Ctx) error {
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Amount == "" {
		return helpers.JSONError(c, "AMOUNT_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	refID, err := engine.Casino.Withdraw(account, amount)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Withdrawal accepted", fiber.Map{
		"account": account,
		"balance": engine.Casino.BalanceOf(account),
		"ref_id":  refID,
	})
}
