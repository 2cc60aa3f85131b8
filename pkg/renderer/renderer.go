// pkg/renderer/renderer.go
package renderer

import (
	"kartvizit.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View katmanına taşınan flash anahtarları.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render flash mesajları ve oturum bilgilerini ekleyerek view'ı render eder.
// Handler'lar status belirtmezse 200 kullanılır.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	// Flash mesajlar tek kullanımlıktır; burada okunup view'a taşınır.
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, ok := data[FlashErrorKeyView]; !ok {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	// Oturum bilgileri locals'tan view'a aktarılır.
	if userName, ok := c.Locals("userName").(string); ok {
		data["UserName"] = userName
	}
	if isSystem, ok := c.Locals("isSystem").(bool); ok {
		data["IsSystem"] = isSystem
	}
	if token := c.Locals("csrf"); token != nil {
		data["CsrfToken"] = token
	}

	statusCode := fiber.StatusOK
	if len(status) > 0 {
		statusCode = status[0]
	}
	return c.Status(statusCode).Render(view, data, layout)
}
