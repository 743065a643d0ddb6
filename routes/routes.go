package routes

import (
	"stakehouse/controllers/admin"
	"stakehouse/controllers/oracle"
	"stakehouse/controllers/user"
	"stakehouse/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	userroutes := app.Group("/user", middlewares.AccountAuth())
	userroutes.Post("/balance", user.Balance)
	userroutes.Post("/deposit", user.Deposit)
	userroutes.Post("/withdraw", user.Withdraw)
	userroutes.Post("/bets/place", user.PlaceBet)
	userroutes.Post("/games/get", user.Game)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Post("/info", admin.Info)
	adminroutes.Post("/games/settle", admin.Settle)
	adminroutes.Post("/params/house-edge", admin.SetHouseEdge)
	adminroutes.Post("/params/bet-limits", admin.SetBetLimits)
	adminroutes.Post("/operators/add", admin.AddOperator)
	adminroutes.Post("/operators/remove", admin.RemoveOperator)
	adminroutes.Post("/pause", admin.Pause)
	adminroutes.Post("/unpause", admin.Unpause)
	adminroutes.Post("/treasury/emergency-withdraw", admin.EmergencyWithdraw)
	adminroutes.Post("/ownership/transfer", admin.TransferOwnership)

	oracleroutes := app.Group("/oracle", middlewares.OracleAuth())
	oracleroutes.Post("/fulfill", oracle.Fulfill)
	oracleroutes.Post("/result", oracle.Result)
}
