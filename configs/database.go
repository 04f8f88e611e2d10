package configs

import (
	"dugun.link/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB repository katmanının kullandığı kısayol.
// Asıl bağlantı yönetimi configsdatabase paketindedir.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
