package renderer

import (
	"dugun.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// View tarafında flash mesajların okunduğu anahtarlar.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash verilerini render map'ine kopyalar.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render ortak layout ile view render eder.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if len(status) > 0 {
		c.Status(status[0])
	}
	return c.Render(view, data, layout)
}
