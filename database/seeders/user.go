package seeders

import (
	"errors"
	"os"
	"strings"

	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser ADMIN_EMAIL/ADMIN_PASSWORD ortam değişkenlerinden yönetici
// hesabını oluşturur. Kullanıcı zaten varsa şifresi güncellenmez; sadece
// hesabın aktif olduğu garanti edilir.
func SeedAdminUser(db *gorm.DB) error {
	email := strings.TrimSpace(strings.ToLower(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Yönetici"
	}

	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL veya ADMIN_PASSWORD tanımlı değil, yönetici seed adımı atlanıyor.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		if !existing.IsActive {
			if err := db.Model(&existing).Update("is_active", true).Error; err != nil {
				configslog.Log.Error("Yönetici hesabı aktifleştirilemedi", zap.String("email", email), zap.Error(err))
				return err
			}
			configslog.SLog.Infof("Yönetici hesabı '%s' yeniden aktifleştirildi.", email)
		} else {
			configslog.SLog.Debugf("Yönetici hesabı '%s' zaten mevcut, oluşturma atlanıyor.", email)
		}
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Yönetici hesabı kontrol edilirken veritabanı hatası", zap.String("email", email), zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici şifresi hash'lenemedi", zap.Error(err))
		return err
	}

	admin := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Yönetici hesabı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Yönetici hesabı '%s' başarıyla oluşturuldu (ID: %d).", email, admin.ID)
	return nil
}
