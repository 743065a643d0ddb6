package user

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type DepositRequest struct {
	Amount string `json:"amount"`
}

func Deposit(c *fiber.Ctx) error {
	var req DepositRequest
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

	if err := engine.Casino.Deposit(account, amount); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit accepted", fiber.Map{
		"account": account,
		"balance": engine.Casino.BalanceOf(account),
	})
}
