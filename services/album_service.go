package services

import (
	"context"

	"dugun.link/models"
	"dugun.link/repositories"
)

// IAlbumService galeri işlemleri için arayüz (salt okunur).
type IAlbumService interface {
	GetAlbumImages(ctx context.Context) ([]models.AlbumImage, error)
}

// AlbumService IAlbumService arayüzünü uygular.
type AlbumService struct {
	repo repositories.IAlbumImageRepository
}

// NewAlbumService yeni bir AlbumService örneği oluşturur.
func NewAlbumService() IAlbumService {
	return &AlbumService{repo: repositories.NewAlbumImageRepository()}
}

// GetAlbumImages galeri görsellerini gösterim sırasına göre döndürür.
func (s *AlbumService) GetAlbumImages(ctx context.Context) ([]models.AlbumImage, error) {
	return s.repo.FindAllOrdered(ctx)
}

// Arayüz uyumluluğu kontrolü
var _ IAlbumService = (*AlbumService)(nil)
