package admin

import (
	"stakehouse/engine"
	"stakehouse/helpers"

	"github.com/gofiber/fiber/v2"
)

func Info(c *fiber.Ctx) error {
	cfg := engine.Casino.Params()

	return helpers.JSONSuccess(c, "Casino info retrieved successfully", fiber.Map{
		"owner":          engine.Casino.Owner(),
		"operators":      engine.Casino.Operators(),
		"house_edge_bps": cfg.HouseEdgeBps,
		"min_bet":        cfg.MinBet,
		"max_bet":        cfg.MaxBet,
		"paused":         engine.Casino.Paused(),
		"float":          engine.Casino.Float(),
	})
}
