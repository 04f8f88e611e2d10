package routes

import (
	invitation_handlers "dugun.link/handlers/invitation"

	"github.com/gofiber/fiber/v2"
)

// registerInvitationRoutes public davetiye sayfasını tanımlar.
func registerInvitationRoutes(app *fiber.App) {
	invitationHandler := invitation_handlers.NewInvitationHandler()

	// ?guest={slug} parametresi opsiyoneldir; verilirse davetli karşılanır.
	app.Get("/invitation", invitationHandler.ShowInvitation)
}
