package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable RSVP modeli için tabloyu oluşturur/günceller.
// Guests tablosu zaten var olmalı (FK için). guest_id üzerindeki unique
// index her davetliyi tek yanıtla sınırlar.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps table...")
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvps table migrated successfully")
	return nil
}
