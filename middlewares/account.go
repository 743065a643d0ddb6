package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

// AccountAuth identifies the calling account. The caller presents its
// account code and an HMAC-SHA256 signature of that code under the shared
// API secret; the verified code is stored in Locals("account") for the
// handler. Role checks (owner/operator) stay inside the engine.
func AccountAuth() fiber.Handler {
	secret := os.Getenv("API_SECRET")

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

func verifyHMAC(data, signature, secret string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
