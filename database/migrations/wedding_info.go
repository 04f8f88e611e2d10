package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateWeddingInfoTable WeddingInfo modeli için tabloyu oluşturur/günceller.
// Guard sütunu üzerindeki unique index tabloyu tek satırla sınırlar.
func MigrateWeddingInfoTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating wedding_infos table...")
	if err := db.AutoMigrate(&models.WeddingInfo{}); err != nil {
		configslog.Log.Error("Failed to migrate wedding_infos table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Wedding_infos table migrated successfully")
	return nil
}
