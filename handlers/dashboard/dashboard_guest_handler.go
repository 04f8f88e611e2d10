package handlers

import (
	"errors"
	"net/http"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/pkg/flashmessages"
	"dugun.link/pkg/queryparams"
	"dugun.link/pkg/renderer"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestHandler davetli yönetimi için handler (Dashboard).
type GuestHandler struct {
	service services.IGuestService
}

// NewGuestHandler yeni bir GuestHandler örneği oluşturur.
func NewGuestHandler() *GuestHandler {
	return &GuestHandler{service: services.NewGuestService()}
}

// ListGuests (GET /dashboard/guests) davetlileri sayfalayarak listeler.
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":   "Davetliler",
		"Params":  params,
		"BaseURL": configs.GetAppConfig().BaseURL, // Davetiye linki üretimi için
	}
	renderer.SetFlashMessages(renderData, flashData)

	result, err := h.service.GetGuestsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListGuests Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Davetliler listelenirken bir hata oluştu."
		renderData["Result"] = &queryparams.PaginatedResult{}
	} else {
		renderData["Result"] = result
	}

	return renderer.Render(c, "dashboard/guests/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ShowCreateGuest (GET /dashboard/guests/create) yeni davetli formunu gösterir.
func (h *GuestHandler) ShowCreateGuest(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{"Title": "Yeni Davetli"}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/guests/create", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// CreateGuest (POST /dashboard/guests/create) yeni davetli oluşturur.
func (h *GuestHandler) CreateGuest(c *fiber.Ctx) error {
	var input services.GuestCreateInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/dashboard/guests/create", fiber.StatusSeeOther)
	}

	guest, err := h.service.CreateGuest(c.UserContext(), input)
	if err != nil {
		errMsg := "Davetli oluşturulamadı."
		switch {
		case errors.Is(err, services.ErrGuestNameRequired):
			errMsg = "Davetli adı zorunludur."
		case errors.Is(err, services.ErrGuestDuplicateName):
			errMsg = "Bu isimde bir davetli zaten var. Lütfen benzersiz bir isim kullanın."
		default:
			configslog.Log.Error("Dashboard - CreateGuest Error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/guests/create", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Davetli oluşturuldu: "+guest.Name)
	return c.Redirect("/dashboard/guests", fiber.StatusSeeOther)
}

// ShowUpdateGuest (GET /dashboard/guests/update/:id) düzenleme formunu gösterir.
func (h *GuestHandler) ShowUpdateGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/guests")
	}

	guest, err := h.service.GetGuestByID(c.UserContext(), uint(id))
	if err != nil {
		errMsg := "Davetli bulunamadı."
		if !errors.Is(err, services.ErrGuestNotFound) {
			errMsg = "Davetli bilgileri alınırken hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateGuest Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/guests")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	renderData := fiber.Map{
		"Title":   "Davetliyi Düzenle",
		"Guest":   guest,
		"BaseURL": configs.GetAppConfig().BaseURL,
	}
	renderer.SetFlashMessages(renderData, flashData)
	return renderer.Render(c, "dashboard/guests/update", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// UpdateGuest (POST /dashboard/guests/update/:id) davetliyi günceller.
func (h *GuestHandler) UpdateGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/guests")
	}

	var input services.GuestUpdateInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect("/dashboard/guests", fiber.StatusSeeOther)
	}
	input.InvitationSent = c.FormValue("invitation_sent") == "on" || c.FormValue("invitation_sent") == "true"

	if err := h.service.UpdateGuest(c.UserContext(), uint(id), input); err != nil {
		errMsg := "Davetli güncellenemedi."
		switch {
		case errors.Is(err, services.ErrGuestNotFound):
			errMsg = "Davetli bulunamadı."
		case errors.Is(err, services.ErrGuestNameRequired):
			errMsg = "Davetli adı zorunludur."
		case errors.Is(err, services.ErrGuestDuplicateName):
			errMsg = "Bu isim veya slug başka bir davetlide kullanılıyor."
		default:
			configslog.Log.Error("Dashboard - UpdateGuest Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/dashboard/guests", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Davetli güncellendi.")
	return c.Redirect("/dashboard/guests", fiber.StatusSeeOther)
}

// DeleteGuest (POST /dashboard/guests/delete/:id) davetliyi siler.
func (h *GuestHandler) DeleteGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/guests")
	}

	if err := h.service.DeleteGuest(c.UserContext(), uint(id)); err != nil {
		errMsg := "Davetli silinemedi."
		if errors.Is(err, services.ErrGuestNotFound) {
			errMsg = "Davetli bulunamadı."
		} else {
			configslog.Log.Error("Dashboard - DeleteGuest Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Davetli silindi.")
	}
	return c.Redirect("/dashboard/guests", fiber.StatusSeeOther)
}
