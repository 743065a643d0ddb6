package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type EmergencyWithdrawRequest struct {
	Amount string `json:"amount"`
}

func EmergencyWithdraw(c *fiber.Ctx) error {
	var req EmergencyWithdrawRequest
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

	refID, err := engine.Casino.EmergencyWithdraw(account, amount)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Emergency withdrawal accepted", fiber.Map{
		"ref_id": refID,
		"float":  engine.Casino.Float(),
	})
}

type TransferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

func TransferOwnership(c *fiber.Ctx) error {
	var req TransferOwnershipRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.NewOwner == "" {
		return helpers.JSONError(c, "NEW_OWNER_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.TransferOwnership(account, req.NewOwner); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Ownership transferred", fiber.Map{
		"owner": engine.Casino.Owner(),
	})
}
