package middlewares

import (
	"dugun.link/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware dashboard rotalarını oturum açmış admin ile sınırlar.
// Oturum yoksa login sayfasına yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	userID, err := utils.GetUserIDFromSession(sess)
	if err != nil || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	c.Locals("userID", userID)
	return c.Next()
}

// GuestMiddleware login sayfasını zaten oturum açmış kullanıcıya kapatır.
func GuestMiddleware(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil && userID != 0 {
			return c.Redirect("/dashboard/home", fiber.StatusFound)
		}
	}
	return c.Next()
}
