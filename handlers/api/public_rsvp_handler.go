package handlers

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Public API'nin dışarı sızdırdığı mesajlar; iç hata detayı asla dönülmez.
const (
	msgGuestNotFound = "Guest name not found on the list. Please use the exact name on your invitation or contact the couple."
	msgRSVPFailed    = "Failed to save RSVP."
)

// rsvpRequest POST /api/rsvp gövdesi.
// attending ve guests alanları istemciye göre bool/sayı veya string gelebilir.
type rsvpRequest struct {
	Name      string      `json:"name"`
	Attending interface{} `json:"attending"`
	Guests    interface{} `json:"guests"`
	Message   string      `json:"message"`
	Slug      string      `json:"slug"`
}

// PublicRSVPHandler public RSVP gönderimlerini yönetir.
type PublicRSVPHandler struct {
	rsvpService services.IRSVPService
}

// NewPublicRSVPHandler yeni bir PublicRSVPHandler örneği oluşturur.
func NewPublicRSVPHandler() *PublicRSVPHandler {
	return &PublicRSVPHandler{rsvpService: services.NewRSVPService()}
}

// SubmitRSVP (POST /api/rsvp) gönderimi davetliye bağlar ve yanıtı kaydeder.
// Davetli çözümlenemezse gönderim reddedilir; sessiz bir fallback yoktur.
func (h *PublicRSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var req rsvpRequest
	if err := c.BodyParser(&req); err != nil {
		configslog.Log.Warn("SubmitRSVP: gövde parse edilemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body."})
	}

	guest, err := h.rsvpService.SubmitRSVP(c.UserContext(), services.RSVPSubmission{
		Name:      req.Name,
		Slug:      req.Slug,
		Attending: req.Attending,
		Guests:    req.Guests,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrRSVPGuestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgGuestNotFound})
		}
		configslog.Log.Error("SubmitRSVP: kayıt hatası", zap.String("slug", req.Slug), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgRSVPFailed})
	}

	return c.JSON(fiber.Map{"success": true, "guest": guest.Name})
}
