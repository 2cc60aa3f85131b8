package handlers // handlers/dashboard paketi

import (
	"kartvizit.link/pkg/renderer"

	"github.com/gofiber/fiber/v2"
)

// DashboardHomeHandler dashboard ana sayfası için handler.
type DashboardHomeHandler struct{}

// NewDashboardHomeHandler yeni bir DashboardHomeHandler örneği oluşturur.
func NewDashboardHomeHandler() *DashboardHomeHandler {
	return &DashboardHomeHandler{}
}

// DashboardHomeHandler dashboard ana sayfasını gösterir.
func (h *DashboardHomeHandler) DashboardHomeHandler(c *fiber.Ctx) error {
	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", fiber.Map{
		"Title": "Yönetim",
	})
}
