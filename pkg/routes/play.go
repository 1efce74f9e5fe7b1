package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tycoongames/tycoon-backend/app/controllers"
)

// PlayRoutes is the request/response twin of the socket surface: one
// endpoint per engine operation.
func PlayRoutes(a *fiber.App) {
	route := a.Group("/play")
	route.Post("/start", controllers.StartPlay)
	route.Get("/:id/state", controllers.GetPlayState)
	route.Post("/:id/roll", controllers.RollDice)
	route.Post("/:id/buy", controllers.BuyProperty)
	route.Post("/:id/mortgage", controllers.MortgageProperty)
	route.Post("/:id/unmortgage", controllers.UnmortgageProperty)
	route.Post("/:id/bankrupt", controllers.DeclareBankruptcy)
	route.Post("/:id/forfeit", controllers.ForfeitGame)
	route.Post("/:id/use-jail-card", controllers.UseJailCard)
}
