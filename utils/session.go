package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ErrSessionStoreMissing session store locals'a konmadan SessionStart çağrıldığında döner.
var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// SessionStart istek için session'ı açar.
// Store, router kurulumunda c.Locals("session_store") içine konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki admin kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	v, ok := sess.Get("user_id").(uint)
	if !ok || v == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return v, nil
}
