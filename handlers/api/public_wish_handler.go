package handlers

import (
	"errors"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	msgWishFieldsRequired = "Name and message are required"
	msgWishFailed         = "Failed to submit wish"
)

// wishRequest POST /api/wishes gövdesi.
type wishRequest struct {
	GuestName string `json:"guest_name"`
	Message   string `json:"message"`
}

// wishResponse public akışa dönen dilek gösterimi.
type wishResponse struct {
	ID         uint      `json:"id"`
	GuestName  string    `json:"guest_name"`
	Message    string    `json:"message"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func toWishResponse(w models.Wish) wishResponse {
	return wishResponse{
		ID:         w.ID,
		GuestName:  w.GuestName,
		Message:    w.Message,
		IsApproved: w.IsApproved,
		CreatedAt:  w.CreatedAt,
	}
}

// PublicWishHandler public dilek duvarı isteklerini yönetir.
type PublicWishHandler struct {
	wishService services.IWishService
}

// NewPublicWishHandler yeni bir PublicWishHandler örneği oluşturur.
func NewPublicWishHandler() *PublicWishHandler {
	return &PublicWishHandler{wishService: services.NewWishService()}
}

// ListWishes (GET /api/wishes) onaylı dilekleri en yeniden eskiye döndürür.
// Hata durumunda istemciye boş liste döner, detay sunucu tarafında loglanır;
// public sayfa periyodik poll yaptığı için geçici bir hata görünür olmamalıdır.
func (h *PublicWishHandler) ListWishes(c *fiber.Ctx) error {
	wishes, err := h.wishService.GetApprovedWishes(c.UserContext())
	if err != nil {
		configslog.Log.Error("ListWishes: dilekler alınamadı", zap.Error(err))
		return c.JSON([]wishResponse{})
	}

	out := make([]wishResponse, 0, len(wishes))
	for _, w := range wishes {
		out = append(out, toWishResponse(w))
	}
	return c.JSON(out)
}

// SubmitWish (POST /api/wishes) yeni bir dilek kaydeder.
func (h *PublicWishHandler) SubmitWish(c *fiber.Ctx) error {
	var req wishRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("SubmitWish: gövde parse edilemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgWishFieldsRequired})
	}

	wish, err := h.wishService.SubmitWish(c.UserContext(), req.GuestName, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrWishFieldsRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgWishFieldsRequired})
		}
		configslog.Log.Error("SubmitWish: kayıt hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgWishFailed})
	}

	return c.Status(fiber.StatusCreated).JSON(toWishResponse(*wish))
}
