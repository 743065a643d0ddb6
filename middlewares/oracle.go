package middlewares

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// OracleAuth gates the randomness-fulfillment callback: the oracle signs the
// raw request body with the shared oracle secret. Only authentication lives
// here; unknown or duplicate fulfillments are dropped by the engine itself.
func OracleAuth() fiber.Handler {
	secret := os.Getenv("ORACLE_SECRET")

	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Oracle-Signature")
		if signature == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "ORACLE_SIGNATURE_REQUIRED",
			})
		}

		if !verifyHMAC(string(c.Body()), signature, secret) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "INVALID_ORACLE_SIGNATURE",
			})
		}

		return c.Next()
	}
}
