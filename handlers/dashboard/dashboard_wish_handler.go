package handlers

import (
	"context"
	"errors"
	"net/http"

	"dugun.link/configs/configslog"
	"dugun.link/pkg/flashmessages"
	"dugun.link/pkg/renderer"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WishHandler dilek moderasyonu için handler (Dashboard).
type WishHandler struct {
	service services.IWishService
}

// NewWishHandler yeni bir WishHandler örneği oluşturur.
func NewWishHandler() *WishHandler {
	return &WishHandler{service: services.NewWishService()}
}

// ListWishes (GET /dashboard/wishes?filter=all|pending|approved) dilekleri listeler.
func (h *WishHandler) ListWishes(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	filter := c.Query("filter", "all")

	renderData := fiber.Map{
		"Title":  "Dilekler",
		"Filter": filter,
	}
	renderer.SetFlashMessages(renderData, flashData)

	wishes, err := h.service.GetWishesFiltered(c.UserContext(), filter)
	if err != nil {
		configslog.Log.Error("Dashboard - ListWishes Error", zap.String("filter", filter), zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Dilekler listelenirken bir hata oluştu."
	} else {
		renderData["Wishes"] = wishes
	}

	return renderer.Render(c, "dashboard/wishes/list", "layouts/dashboard_layout", renderData, http.StatusOK)
}

// ApproveWish (POST /dashboard/wishes/approve/:id) dileği onaylar.
// Zaten onaylı bir dilek için no-op'tur.
func (h *WishHandler) ApproveWish(c *fiber.Ctx) error {
	return h.moderate(c, h.service.ApproveWish, "Dilek onaylandı.")
}

// UnapproveWish (POST /dashboard/wishes/unapprove/:id) onayı kaldırır.
func (h *WishHandler) UnapproveWish(c *fiber.Ctx) error {
	return h.moderate(c, h.service.UnapproveWish, "Dileğin onayı kaldırıldı.")
}

// DeleteWish (POST /dashboard/wishes/delete/:id) dileği siler.
func (h *WishHandler) DeleteWish(c *fiber.Ctx) error {
	return h.moderate(c, h.service.DeleteWish, "Dilek silindi.")
}

// UpdateWish (POST /dashboard/wishes/update/:id) dileğin mesajını düzenler.
func (h *WishHandler) UpdateWish(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/wishes")
	}

	message := c.FormValue("message")
	if err := h.service.UpdateWishMessage(c.UserContext(), uint(id), message); err != nil {
		errMsg := "Dilek güncellenemedi."
		switch {
		case errors.Is(err, services.ErrWishNotFound):
			errMsg = "Dilek bulunamadı."
		case errors.Is(err, services.ErrWishFieldsRequired):
			errMsg = "Mesaj boş olamaz."
		default:
			configslog.Log.Error("Dashboard - UpdateWish Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Dilek güncellendi.")
	}
	return c.Redirect("/dashboard/wishes", fiber.StatusSeeOther)
}

// moderate approve/unapprove/delete için ortak akış.
func (h *WishHandler) moderate(c *fiber.Ctx, action func(ctx context.Context, id uint) error, successMsg string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return c.Redirect("/dashboard/wishes")
	}

	if err := action(c.UserContext(), uint(id)); err != nil {
		errMsg := "İşlem başarısız oldu."
		if errors.Is(err, services.ErrWishNotFound) {
			errMsg = "Dilek bulunamadı."
		} else {
			configslog.Log.Error("Dashboard - Wish moderation Error", zap.Int("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, successMsg)
	}
	return c.Redirect("/dashboard/wishes", fiber.StatusSeeOther)
}
