package handlers

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationHandler public davetiye sayfasını yönetir.
type InvitationHandler struct {
	guestService       services.IGuestService
	weddingInfoService services.IWeddingInfoService
	albumService       services.IAlbumService
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler() *InvitationHandler {
	return &InvitationHandler{
		guestService:       services.NewGuestService(),
		weddingInfoService: services.NewWeddingInfoService(),
		albumService:       services.NewAlbumService(),
	}
}

// ShowInvitation (GET /invitation?guest={slug}) davetiye sayfasını render eder.
// Düğün içeriği istek başına BİR kez çekilir ve tüm bölümlere aynı referans
// verilir; sayfa içi ayrı ayrı fetch yoktur.
// Slug çözümlenirse sayfa davetliye göre kişiselleştirilir; çözümlenemezse
// sayfa anonim olarak açılır (RSVP formu isimle doldurulabilir).
func (h *InvitationHandler) ShowInvitation(c *fiber.Ctx) error {
	ctx := c.UserContext()

	info, err := h.weddingInfoService.GetWeddingInfo(ctx)
	if err != nil {
		configslog.Log.Error("ShowInvitation: düğün içeriği alınamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
			"Title": "Bir Sorun Oluştu",
		}, "layouts/public_layout")
	}

	var guest *models.Guest
	if slug := c.Query("guest"); slug != "" {
		guest, err = h.guestService.GetGuestBySlug(ctx, slug)
		if err != nil && !errors.Is(err, services.ErrGuestNotFound) {
			configslog.Log.Error("ShowInvitation: slug çözümlenirken hata", zap.String("slug", slug), zap.Error(err))
		}
		// Bilinmeyen slug sayfayı engellemez; kişiselleştirme atlanır.
	}

	images, err := h.albumService.GetAlbumImages(ctx)
	if err != nil {
		configslog.Log.Error("ShowInvitation: galeri alınamadı", zap.Error(err))
		images = nil // Galeri olmadan da sayfa açılır.
	}

	return c.Render("public/invitation", fiber.Map{
		"Title":  "Davetiye",
		"Info":   info,
		"Guest":  guest,
		"Images": images,
	}, "layouts/public_layout")
}
