package routes

import (
	"kartvizit.link/configs"
	panel_handlers "kartvizit.link/handlers/panel"
	"kartvizit.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki rotaları ve middleware'leri tanımlar.
// Sadece normal kullanıcıların (IsSystem == false) erişimine izin verilir.
func registerPanelRoutes(app *fiber.App) {
	panelHomeHandler := panel_handlers.NewPanelHomeHandler()
	cardHandler := panel_handlers.NewPanelCardHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(
		middlewares.AuthMiddleware, // 1. Giriş yapmış mı?
		middlewares.RequireUser(),  // 2. Normal kullanıcı mı?
		configs.SetupCSRF(),        // 3. Form gönderimlerinde CSRF
	)

	// --- Panel Ana Sayfa ---
	panelGroup.Get("/home", panelHomeHandler.PanelHomeHandler) // GET /panel/home

	// --- Kullanıcının Kendi Kartvizitleri ---
	panelGroup.Get("/cards", cardHandler.ListCards)                 // GET /panel/cards
	panelGroup.Get("/cards/create", cardHandler.ShowCreateCard)     // GET /panel/cards/create
	panelGroup.Post("/cards/create", cardHandler.CreateCard)        // POST /panel/cards/create
	panelGroup.Get("/cards/update/:id", cardHandler.ShowUpdateCard) // GET /panel/cards/update/{id}
	panelGroup.Post("/cards/update/:id", cardHandler.UpdateCard)    // POST /panel/cards/update/{id}
	panelGroup.Post("/cards/delete/:id", cardHandler.DeleteCard)    // POST /panel/cards/delete/{id} (Formdan silme)
	panelGroup.Delete("/cards/delete/:id", cardHandler.DeleteCard)  // DELETE /panel/cards/delete/{id} (JS/API için)

	// --- Kart içerik düzenleme (JSON uçları) ---
	panelGroup.Put("/cards/:id/sections", cardHandler.UpdateSections)          // PUT /panel/cards/{id}/sections
	panelGroup.Put("/cards/:id/social-links", cardHandler.UpdateSocialLinks)   // PUT /panel/cards/{id}/social-links
	panelGroup.Put("/cards/:id/content-order", cardHandler.UpdateContentOrder) // PUT /panel/cards/{id}/content-order
}
