package user

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

func Balance(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	balance := engine.Casino.BalanceOf(account)

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"account": account,
		"balance": balance,
		"display": helpers.FormatAmount(balance),
	})
}
