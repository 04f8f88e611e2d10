package routes

import (
	handlers "dugun.link/handlers/dashboard" // Dashboard handler'ları
	"dugun.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları ve middleware'leri tanımlar.
// Tüm rotalar oturum açmış admin gerektirir.
func registerDashboardRoutes(app *fiber.App) {
	// Handler instance'larını başta oluştur
	homeHandler := handlers.NewHomeHandler()
	guestHandler := handlers.NewGuestHandler()
	rsvpHandler := handlers.NewRSVPHandler()
	wishHandler := handlers.NewWishHandler()
	contentHandler := handlers.NewContentHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(middlewares.AuthMiddleware)

	// --- Ana Sayfa ---
	dashboardGroup.Get("/home", homeHandler.ShowHome) // GET /dashboard/home

	// --- Davetli Yönetimi ---
	dashboardGroup.Get("/guests", guestHandler.ListGuests)                 // GET /dashboard/guests
	dashboardGroup.Get("/guests/create", guestHandler.ShowCreateGuest)     // GET /dashboard/guests/create
	dashboardGroup.Post("/guests/create", guestHandler.CreateGuest)        // POST /dashboard/guests/create
	dashboardGroup.Get("/guests/update/:id", guestHandler.ShowUpdateGuest) // GET /dashboard/guests/update/{id}
	dashboardGroup.Post("/guests/update/:id", guestHandler.UpdateGuest)    // POST /dashboard/guests/update/{id}
	dashboardGroup.Post("/guests/delete/:id", guestHandler.DeleteGuest)    // POST /dashboard/guests/delete/{id} (Form için)
	dashboardGroup.Delete("/guests/delete/:id", guestHandler.DeleteGuest)  // DELETE /dashboard/guests/delete/{id} (API/JS için)

	// --- RSVP Yönetimi ---
	dashboardGroup.Get("/rsvps", rsvpHandler.ListRSVPs)                // GET /dashboard/rsvps
	dashboardGroup.Get("/rsvps/export", rsvpHandler.ExportRSVPs)       // GET /dashboard/rsvps/export (CSV)
	dashboardGroup.Post("/rsvps/delete/:id", rsvpHandler.DeleteRSVP)   // POST /dashboard/rsvps/delete/{id}
	dashboardGroup.Delete("/rsvps/delete/:id", rsvpHandler.DeleteRSVP) // DELETE /dashboard/rsvps/delete/{id}

	// --- Dilek Moderasyonu ---
	dashboardGroup.Get("/wishes", wishHandler.ListWishes)                   // GET /dashboard/wishes
	dashboardGroup.Post("/wishes/approve/:id", wishHandler.ApproveWish)     // POST /dashboard/wishes/approve/{id}
	dashboardGroup.Post("/wishes/unapprove/:id", wishHandler.UnapproveWish) // POST /dashboard/wishes/unapprove/{id}
	dashboardGroup.Post("/wishes/update/:id", wishHandler.UpdateWish)       // POST /dashboard/wishes/update/{id}
	dashboardGroup.Post("/wishes/delete/:id", wishHandler.DeleteWish)       // POST /dashboard/wishes/delete/{id}
	dashboardGroup.Delete("/wishes/delete/:id", wishHandler.DeleteWish)     // DELETE /dashboard/wishes/delete/{id}

	// --- Düğün İçeriği ---
	dashboardGroup.Get("/content", contentHandler.ShowContent)    // GET /dashboard/content
	dashboardGroup.Post("/content", contentHandler.UpdateContent) // POST /dashboard/content
}
