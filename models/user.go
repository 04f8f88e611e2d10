package models

// User admin paneline giriş yapabilen kullanıcıyı temsil eder.
// Tek etkinlik için tek admin yeterlidir; kayıt seeder ile oluşturulur.
type User struct {
	BaseModel
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"default:true"`
}
