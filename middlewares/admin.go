package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth gates the owner/operator surface. Same scheme as AccountAuth
// but signed under the admin secret, so player API credentials cannot reach
// settlement or config routes even before the engine's own role check runs.
func AdminAuth() fiber.Handler {
	secret := os.Getenv("ADMIN_SECRET")

	return func(c *fiber.Ctx) error {
		account := c.Get("X-Account-Code")
		signature := c.Get("X-Signature")

		if account == "" || signature == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "ACCOUNT_CODE_AND_SIGNATURE_REQUIRED",
			})
		}

		if !verifyHMAC(account, signature, secret) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_SIGNATURE",
			})
		}

		c.Locals("account", account)
		return c.Next()
	}
}
