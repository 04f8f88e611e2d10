package handlers

import (
	"errors"
	"net/http"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/flashmessages"
	"dugun.link/pkg/renderer"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ContentHandler düğün içeriği formu için handler (Dashboard).
type ContentHandler struct {
	service services.IWeddingInfoService
}

// NewContentHandler yeni bir ContentHandler örneği oluşturur.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{service: services.NewWeddingInfoService()}
}

// ShowContent (GET /dashboard/content) içerik formunu mevcut değerlerle gösterir.
func (h *ContentHandler) ShowContent(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	renderData := fiber.Map{"Title": "Düğün İçeriği"}
	renderer.SetFlashMessages(renderData, flashData)

	info, err := h.service.GetWeddingInfo(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ShowContent Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "İçerik alınırken bir hata oluştu."
	} else {
		renderData["Info"] = info // İlk kayıttan önce nil olabilir; form boş açılır.
	}

	return renderer.Render(c, "dashboard/content/form", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// UpdateContent (POST /dashboard/content) içeriği kaydeder.
// İlk kayıtta satır oluşturulur; sonrasında hep aynı tekil satır güncellenir.
func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	weddingDate, err := time.Parse("2006-01-02", c.FormValue("wedding_date"))
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz düğün tarihi (YYYY-AA-GG bekleniyor).")
		return c.Redirect("/dashboard/content", fiber.StatusSeeOther)
	}

	info := &models.WeddingInfo{
		GroomName:         c.FormValue("groom_name"),
		BrideName:         c.FormValue("bride_name"),
		WeddingDate:       weddingDate,
		WeddingTime:       c.FormValue("wedding_time"),
		VenueName:         c.FormValue("venue_name"),
		VenueAddress:      c.FormValue("venue_address"),
		VenueMapURL:       c.FormValue("venue_map_url"),
		HeroImageURL:      c.FormValue("hero_image_url"),
		StoryText:         c.FormValue("story_text"),
		BankName:          c.FormValue("bank_name"),
		BankAccountNumber: c.FormValue("bank_account_number"),
		BankAccountName:   c.FormValue("bank_account_name"),
		BankQRImageURL:    c.FormValue("bank_qr_image_url"),
	}

	if err := h.service.SaveWeddingInfo(c.UserContext(), info); err != nil {
		errMsg := "İçerik kaydedilemedi."
		switch {
		case errors.Is(err, services.ErrWeddingInfoNamesRequired):
			errMsg = "Gelin ve damat adı zorunludur."
		case errors.Is(err, services.ErrWeddingInfoDateRequired):
			errMsg = "Düğün tarihi zorunludur."
		default:
			configslog.Log.Error("Dashboard - UpdateContent Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/content", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "İçerik kaydedildi.")
	return c.Redirect("/dashboard/content", fiber.StatusSeeOther)
}
