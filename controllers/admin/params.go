package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

type HouseEdgeRequest struct {
	HouseEdgeBps uint16 `json:"house_edge_bps"`
}

func SetHouseEdge(c *fiber.Ctx) error {
	var req HouseEdgeRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	if err := engine.Casino.SetHouseEdge(account, req.HouseEdgeBps); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return paramsResponse(c, "House edge updated")
}

type BetLimitsRequest struct {
	MinBet string `json:"min_bet"`
	MaxBet string `json:"max_bet"`
}

func SetBetLimits(c *fiber.Ctx) error {
	var req BetLimitsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.MinBet == "" || req.MaxBet == "" {
		return helpers.JSONError(c, "MIN_AND_MAX_BET_REQUIRED")
	}

	account, ok := c.Locals("account").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACCOUNT_SESSION")
	}

	minBet, err := helpers.ParseAmount(req.MinBet)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}
	maxBet, err := helpers.ParseAmount(req.MaxBet)
	if err != nil {
		return helpers.JSONError(c, err.Error())
	}

	if err := engine.Casino.SetBetLimits(account, minBet, maxBet); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return paramsResponse(c, "Bet limits updated")
}

func paramsResponse(c *fiber.Ctx, message string) error {
	cfg := engine.Casino.Params()
	return helpers.JSONSuccess(c, message, fiber.Map{
		"house_edge_bps": cfg.HouseEdgeBps,
		"min_bet":        cfg.MinBet,
		"max_bet":        cfg.MaxBet,
	})
}
