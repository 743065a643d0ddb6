package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

func Pause(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.Pause(account); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Casino paused", fiber.Map{"paused": true})
}

func Unpause(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.Unpause(account); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Casino unpaused", fiber.Map{"paused": false})
}
