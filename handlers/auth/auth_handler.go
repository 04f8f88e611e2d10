package handlers

import (
	"dugun.link/configs/configslog"
	"dugun.link/pkg/flashmessages"
	"dugun.link/services"
	"dugun.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler admin giriş/çıkış işlemlerini yönetir.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// ShowLogin (GET /auth/login) giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	flashData, _ := flashmessages.GetFlashMessages(c)
	return c.Render("auth/login", fiber.Map{
		"Title": "Giriş",
		"Error": flashData.Error,
	}, "layouts/auth_layout")
}

// Login (POST /auth/login) kimlik doğrular ve oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "E-posta veya şifre hatalı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session açılamadı", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Giriş yapılamadı, lütfen tekrar deneyin.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	sess.Set("user_id", user.ID)
	sess.Set("user_name", user.Name)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Login: session kaydedilemedi", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return c.Redirect("/dashboard/home", fiber.StatusFound)
}

// Logout (GET|POST /auth/logout) oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			configslog.Log.Error("Logout: session sonlandırılamadı", zap.Error(destroyErr))
		}
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}
