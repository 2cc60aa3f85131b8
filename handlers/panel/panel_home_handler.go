package handlers // handlers/panel paketi

import (
	"kartvizit.link/configs/configslog"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler panel ana sayfası için handler.
type PanelHomeHandler struct {
	cardService services.ICardService
}

// NewPanelHomeHandler yeni bir PanelHomeHandler örneği oluşturur.
func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{cardService: services.NewCardService()}
}

// PanelHomeHandler panel ana sayfasını kart sayısı özetiyle gösterir.
func (h *PanelHomeHandler) PanelHomeHandler(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var cardCount int64
	if userID != 0 {
		count, err := h.cardService.GetCardCountForUser(c.UserContext(), userID)
		if err != nil {
			configslog.Log.Warn("Panel home: kart sayısı alınamadı", zap.Uint("userID", userID), zap.Error(err))
		} else {
			cardCount = count
		}
	}

	return renderer.Render(c, "panel/home", "layouts/panel_layout", fiber.Map{
		"Title":     "Panel",
		"CardCount": cardCount,
	})
}
