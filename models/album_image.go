package models

// AlbumImage public sayfadaki galeriye ait tek bir görseli temsil eder.
// Galeri bu uygulama üzerinden sadece okunur; içerik seeder veya doğrudan
// veritabanı üzerinden yönetilir.
type AlbumImage struct {
	BaseModel
	ImageURL     string `gorm:"type:varchar(500);not null"`
	Caption      string `gorm:"type:varchar(255)"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
}
