package models

// Guest davet listesindeki tek bir davetliyi temsil eder.
// Slug, davetliye özel link (/invitation?guest={slug}) için kullanılır ve
// veritabanı seviyesinde benzersizdir. İsim benzersizliği uygulama katmanındaki
// ön kontrole ek olarak lower(name) üzerindeki unique index ile garanti edilir
// (bkz. migrations.MigrateGuestsTable).
type Guest struct {
	BaseModel
	Name           string `gorm:"type:varchar(150);not null;index"`
	Slug           string `gorm:"type:varchar(191);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(150)"`
	Phone          string `gorm:"type:varchar(30)"`
	GroupName      string `gorm:"type:varchar(100);index"`
	InvitationSent bool   `gorm:"default:false"`

	// İlişki: davetli başına en fazla bir RSVP (rsvps.guest_id unique).
	RSVP *RSVP `gorm:"foreignKey:GuestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
