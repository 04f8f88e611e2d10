package handlers

import (
	"net/http"

	"dugun.link/configs/configslog"
	"dugun.link/pkg/flashmessages"
	"dugun.link/pkg/renderer"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HomeHandler admin ana sayfasını (özet görünüm) yönetir.
type HomeHandler struct {
	dashboardService services.IDashboardService
}

// NewHomeHandler yeni bir HomeHandler örneği oluşturur.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{dashboardService: services.NewDashboardService()}
}

// ShowHome (GET /dashboard/home) sayaçları ve son hareketleri gösterir.
func (h *HomeHandler) ShowHome(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	ctx := c.UserContext()

	renderData := fiber.Map{
		"Title": "Özet",
	}
	renderer.SetFlashMessages(renderData, flashData)

	stats, err := h.dashboardService.GetStats(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - ShowHome: istatistikler alınamadı", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "İstatistikler alınırken bir hata oluştu."
		return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData, http.StatusOK)
	}
	renderData["Stats"] = stats

	activity, err := h.dashboardService.GetRecentActivity(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - ShowHome: son hareketler alınamadı", zap.Error(err))
	} else {
		renderData["RecentRSVPs"] = activity.RecentRSVPs
		renderData["RecentWishes"] = activity.RecentWishes
	}

	return renderer.Render(c, "dashboard/home", "layouts/dashboard_layout", renderData, http.StatusOK)
}
