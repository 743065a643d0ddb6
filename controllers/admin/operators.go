package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type OperatorRequest struct {
	Account string `json:"account"`
}

func AddOperator(c *fiber.Ctx) error {
	var req OperatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Account == "" {
		return helpers.JSONError(c, "ACCOUNT_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.AddOperator(account, req.Account); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Operator added", fiber.Map{
		"operators": engine.Casino.Operators(),
	})
}

func RemoveOperator(c *fiber.Ctx) error {
	var req OperatorRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Account == "" {
		return helpers.JSONError(c, "ACCOUNT_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.RemoveOperator(account, req.Account); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Operator removed", fiber.Map{
		"operators": engine.Casino.Operators(),
	})
}
