package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolarda ortak olan alanları içerir.
// deleted_at soft delete içindir; benzersiz index taşıyan tablolar
// (guests, rsvps) Unscoped ile kalıcı silinir, aksi halde silinen satır
// index'i meşgul etmeye devam ederdi.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
