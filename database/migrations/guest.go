package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateGuestsTable Guest modeli için tabloyu oluşturur/günceller.
func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guests table...")
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		configslog.Log.Error("Failed to migrate guests table", zap.Error(err))
		return err
	}

	// İsim benzersizliği büyük/küçük harf duyarsız olmalı; GORM tag'leri bunu
	// ifade edemediği için index manuel oluşturulur. Soft-delete edilmiş satırlar
	// kısıtın dışında tutulur.
	sql := `CREATE UNIQUE INDEX IF NOT EXISTS idx_guests_lower_name_unique
			ON guests (LOWER(name))
			WHERE deleted_at IS NULL;`
	if err := db.Exec(sql).Error; err != nil {
		configslog.Log.Error("Failed to create unique lower(name) index on guests", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Guests table migrated successfully")
	return nil
}
