package routes

import (
	handlers "kartvizit.link/handlers/dashboard"
	"kartvizit.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları ve middleware'leri tanımlar.
// Sadece IsSystem=true olan kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	homeHandler := handlers.NewDashboardHomeHandler()
	cardHandler := handlers.NewDashboardCardHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,  // 1. Giriş yapmış mı?
		middlewares.RequireSystem(), // 2. Sistem yöneticisi mi?
	)

	// --- Ana Sayfa ---
	dashboardGroup.Get("/home", homeHandler.DashboardHomeHandler) // GET /dashboard/home

	// --- Kartvizit Yönetimi (Admin Görünümü) ---
	dashboardGroup.Get("/cards", cardHandler.ListCards) // GET /dashboard/cards
}
