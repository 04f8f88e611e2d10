package models

// RSVP bir davetlinin katılım yanıtını temsil eder.
// guest_id üzerindeki unique index "davetli başına tek RSVP" kuralını
// veritabanı seviyesinde garanti eder; servis katmanındaki upsert bu kurala yaslanır.
type RSVP struct {
	BaseModel
	GuestID             uint   `gorm:"uniqueIndex;not null"`
	Guest               Guest  `gorm:"foreignKey:GuestID"`
	Attending           bool   `gorm:"not null;index"`
	NumberOfGuests      int    `gorm:"not null;default:1"`
	DietaryRestrictions string `gorm:"type:varchar(255)"`
	Message             string `gorm:"type:text"`
}
