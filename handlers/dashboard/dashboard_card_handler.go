package handlers // handlers/dashboard paketi

import (
	"net/http"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/pkg/queryparams"
	"kartvizit.link/pkg/renderer"
	"kartvizit.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardCardHandler sistem kullanıcısının tüm kartvizitleri görmesi için handler.
type DashboardCardHandler struct {
	service services.ICardService
}

// NewDashboardCardHandler yeni bir DashboardCardHandler örneği oluşturur.
func NewDashboardCardHandler() *DashboardCardHandler {
	return &DashboardCardHandler{service: services.NewCardService()}
}

// ListCards tüm kartvizitleri sayfalayarak listeler.
func (h *DashboardCardHandler) ListCards(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Dashboard ListCards: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	paginatedResult, err := h.service.GetAllCardsPaginated(c.UserContext(), params)

	renderData := fiber.Map{
		"Title":  "Tüm Kartvizitler",
		"Result": paginatedResult,
		"Params": params,
	}
	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Kartvizitler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{Data: []models.Card{}, Meta: queryparams.PaginationMeta{}}
		configslog.Log.Error("Dashboard - ListCards Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/cards/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}
