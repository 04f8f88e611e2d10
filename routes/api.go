package routes

import (
	api_handlers "dugun.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki public JSON uçlarını tanımlar.
// Bu uçlar oturum gerektirmez; davetliler tarafından kullanılır.
func registerAPIRoutes(app *fiber.App) {
	rsvpHandler := api_handlers.NewPublicRSVPHandler()
	wishHandler := api_handlers.NewPublicWishHandler()

	apiGroup := app.Group("/api")

	apiGroup.Post("/rsvp", rsvpHandler.SubmitRSVP)   // POST /api/rsvp
	apiGroup.Get("/wishes", wishHandler.ListWishes)  // GET /api/wishes (sadece onaylılar)
	apiGroup.Post("/wishes", wishHandler.SubmitWish) // POST /api/wishes
}
