package models

// Wish public sayfadaki dilek duvarına bırakılan bir mesajı temsil eder.
// GuestName serbest metindir, Guest tablosuna bağlı değildir.
// IsApproved public akışta görünürlüğü belirler (moderasyon bayrağı).
type Wish struct {
	BaseModel
	GuestName  string `gorm:"type:varchar(150);not null"`
	Message    string `gorm:"type:text;not null"`
	IsApproved bool   `gorm:"not null;default:false;index"`
}
