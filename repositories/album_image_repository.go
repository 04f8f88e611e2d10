package repositories

import (
	"context"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAlbumImageRepository galeri görselleri için arayüz (salt okunur).
type IAlbumImageRepository interface {
	FindAllOrdered(ctx context.Context) ([]models.AlbumImage, error)
}

// AlbumImageRepository IAlbumImageRepository arayüzünü uygular.
type AlbumImageRepository struct {
	db *gorm.DB
}

// NewAlbumImageRepository yeni bir AlbumImageRepository örneği oluşturur.
func NewAlbumImageRepository() IAlbumImageRepository {
	return &AlbumImageRepository{db: configs.GetDB()}
}

// Context ile çalışan DB örneği
func (r *AlbumImageRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindAllOrdered galeri görsellerini gösterim sırasına göre döndürür.
func (r *AlbumImageRepository) FindAllOrdered(ctx context.Context) ([]models.AlbumImage, error) {
	var images []models.AlbumImage
	err := r.getDB(ctx).Order("display_order ASC, id ASC").Find(&images).Error
	if err != nil {
		configslog.Log.Error("AlbumImageRepository.FindAllOrdered: DB error", zap.Error(err))
		return nil, err
	}
	return images, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAlbumImageRepository = (*AlbumImageRepository)(nil)
