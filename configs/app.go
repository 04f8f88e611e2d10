package configs

import (
	"os"
	"strings"
)

// AppConfig uygulama genelindeki ayarları tutar (.env üzerinden beslenir).
type AppConfig struct {
	Port    string
	BaseURL string

	// WishAutoApprove true ise public form üzerinden gelen dilekler
	// moderasyon beklemeden onaylı olarak kaydedilir.
	WishAutoApprove bool
}

// GetAppConfig ortam değişkenlerinden uygulama ayarlarını okur.
func GetAppConfig() AppConfig {
	return AppConfig{
		Port:            getEnvDefault("APP_PORT", "3000"),
		BaseURL:         getEnvDefault("APP_BASE_URL", "http://localhost:3000"),
		WishAutoApprove: getEnvBool("WISH_AUTO_APPROVE", true),
	}
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1" || v == "on" || v == "yes"
}
