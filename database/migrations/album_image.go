package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateAlbumImagesTable AlbumImage modeli için tabloyu oluşturur/günceller.
func MigrateAlbumImagesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating album_images table...")
	if err := db.AutoMigrate(&models.AlbumImage{}); err != nil {
		configslog.Log.Error("Failed to migrate album_images table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Album_images table migrated successfully")
	return nil
}
