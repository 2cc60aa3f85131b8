package routes

import (
	handlers "kartvizit.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes public kartvizit rotalarını (örn. /Ab3dEf56...) tanımlar.
// Bu rotalar diğer özel gruplardan (auth, panel, dashboard) SONRA tanımlanmalı.
func registerPublicLinkRoutes(app *fiber.App) {
	publicHandler := handlers.NewPublicLinkHandler()

	app.Get("/:key", publicHandler.HandleCard)         // Kart görünümü
	app.Get("/:key/vcard", publicHandler.HandleVCard)  // vCard indirme
	app.Post("/:key/track", publicHandler.HandleTrack) // Etkinlik kaydı
}
