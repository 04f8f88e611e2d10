package models

import "time"

// WeddingInfoGuard wedding_infos tablosundaki tekil satırın sabit guard değeri.
const WeddingInfoGuard = 1

// WeddingInfo düğün içeriğini tutan tekil (singleton) kayıttır.
// Guard sütunu her zaman 1'dir ve üzerindeki unique index sayesinde
// eşzamanlı iki admin oturumu bile ikinci bir satır oluşturamaz.
type WeddingInfo struct {
	BaseModel
	Guard int `gorm:"not null;default:1;uniqueIndex"`

	GroomName   string    `gorm:"type:varchar(150);not null"`
	BrideName   string    `gorm:"type:varchar(150);not null"`
	WeddingDate time.Time `gorm:"type:date;not null"`
	WeddingTime string    `gorm:"type:varchar(20)"`

	VenueName    string `gorm:"type:varchar(255)"`
	VenueAddress string `gorm:"type:varchar(500)"`
	VenueMapURL  string `gorm:"type:varchar(500)"`

	HeroImageURL string `gorm:"type:varchar(500)"`
	StoryText    string `gorm:"type:text"`

	BankName          string `gorm:"type:varchar(150)"`
	BankAccountNumber string `gorm:"type:varchar(100)"`
	BankAccountName   string `gorm:"type:varchar(150)"`
	BankQRImageURL    string `gorm:"type:varchar(500)"`
}
