package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateWishesTable Wish modeli için tabloyu oluşturur/günceller.
func MigrateWishesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating wishes table...")
	if err := db.AutoMigrate(&models.Wish{}); err != nil {
		configslog.Log.Error("Failed to migrate wishes table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Wishes table migrated successfully")
	return nil
}
