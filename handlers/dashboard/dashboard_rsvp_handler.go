package handlers

import (
	"errors"
	"net/http"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/pkg/flashmessages"
	"dugun.link/pkg/renderer"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler RSVP yönetimi için handler (Dashboard).
type RSVPHandler struct {
	service services.IRSVPService
}

// NewRSVPHandler yeni bir RSVPHandler örneği oluşturur.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{service: services.NewRSVPService()}
}

// ListRSVPs (GET /dashboard/rsvps?filter=all|attending|declined) yanıtları listeler.
// RSVP bekleyen davetliler de aynı ekranda gösterilir.
func (h *RSVPHandler) ListRSVPs(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	ctx := c.UserContext()
	filter := c.Query("filter", "all")

	renderData := fiber.Map{
		"Title":  "RSVP Yanıtları",
		"Filter": filter,
	}
	renderer.SetFlashMessages(renderData, flashData)

	rsvps, err := h.service.GetRSVPsFiltered(ctx, filter)
	if err != nil {
		configslog.Log.Error("Dashboard - ListRSVPs Error", zap.String("filter", filter), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "RSVP'ler listelenirken bir hata oluştu."
		return renderer.Render(c, "dashboard/rsvps/list", "layouts/dashboard_layout", renderData, http.StatusOK)
	}
	renderData["RSVPs"] = rsvps

	pending, err := h.service.GetPendingGuests(ctx)
	if err != nil {
		configslog.Log.Error("Dashboard - ListRSVPs: bekleyenler alınamadı", zap.Error(err))
	} else {
		renderData["PendingGuests"] = pending
	}

	return renderer.Render(c, "dashboard/rsvps/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ExportRSVPs (GET /dashboard/rsvps/export) tüm yanıtları CSV indirir.
func (h *RSVPHandler) ExportRSVPs(c *fiber.Ctx) error {
	data, err := h.service.ExportRSVPsCSV(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ExportRSVPs Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "CSV dışa aktarımı başarısız oldu.")
		return c.Redirect("/dashboard/rsvps", fiber.StatusSeeOther)
	}

	filename := "rsvps-" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// DeleteRSVP (POST /dashboard/rsvps/delete/:id) bir yanıtı siler.
func (h *RSVPHandler) DeleteRSVP(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/rsvps")
	}

	if err := h.service.DeleteRSVP(c.UserContext(), uint(id)); err != nil {
		errMsg := "RSVP silinemedi."
		if errors.Is(err, services.ErrRSVPNotFound) {
			errMsg = "RSVP kaydı bulunamadı."
		} else {
			configslog.Log.Error("Dashboard - DeleteRSVP Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "RSVP silindi.")
	}
	return c.Redirect("/dashboard/rsvps", fiber.StatusSeeOther)
}
