package services

import (
	"context"
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// WeddingInfoServiceError özel servis hataları
type WeddingInfoServiceError string

func (e WeddingInfoServiceError) Error() string { return string(e) }

const (
	ErrWeddingInfoNamesRequired WeddingInfoServiceError = "gelin ve damat adı zorunludur"
	ErrWeddingInfoDateRequired  WeddingInfoServiceError = "düğün tarihi zorunludur"
	ErrWeddingInfoSaveFailed    WeddingInfoServiceError = "düğün içeriği kaydedilemedi"
)

// IWeddingInfoService düğün içeriği işlemleri için arayüz.
type IWeddingInfoService interface {
	// GetWeddingInfo tekil kaydı döndürür; henüz oluşturulmadıysa (nil, nil).
	GetWeddingInfo(ctx context.Context) (*models.WeddingInfo, error)
	SaveWeddingInfo(ctx context.Context, info *models.WeddingInfo) error
}

// WeddingInfoService IWeddingInfoService arayüzünü uygular.
type WeddingInfoService struct {
	repo repositories.IWeddingInfoRepository
}

// NewWeddingInfoService yeni bir WeddingInfoService örneği oluşturur.
func NewWeddingInfoService() IWeddingInfoService {
	return &WeddingInfoService{repo: repositories.NewWeddingInfoRepository()}
}

// GetWeddingInfo public sayfa ve admin formu için içeriği getirir.
// Kayıt yoksa hata değil nil döner; sayfa boş içerikle de render edilebilmelidir.
func (s *WeddingInfoService) GetWeddingInfo(ctx context.Context) (*models.WeddingInfo, error) {
	info, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// SaveWeddingInfo içeriği günceller; ilk kayıtta satırı oluşturur.
// Singleton garantisi guard sütunundaki unique index'tedir, burada sadece
// validasyon yapılır.
func (s *WeddingInfoService) SaveWeddingInfo(ctx context.Context, info *models.WeddingInfo) error {
	if info == nil || info.GroomName == "" || info.BrideName == "" {
		return ErrWeddingInfoNamesRequired
	}
	if info.WeddingDate.IsZero() {
		return ErrWeddingInfoDateRequired
	}

	if err := s.repo.Upsert(ctx, info); err != nil {
		configslog.Log.Error("SaveWeddingInfo: repository hatası", zap.Error(err))
		return ErrWeddingInfoSaveFailed
	}

	configslog.SLog.Info("Düğün içeriği kaydedildi.")
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ IWeddingInfoService = (*WeddingInfoService)(nil)
