package services

import (
	"context"
	"errors"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// WishServiceError özel servis hataları
type WishServiceError string

func (e WishServiceError) Error() string { return string(e) }

const (
	ErrWishNotFound       WishServiceError = "dilek bulunamadı"
	ErrWishFieldsRequired WishServiceError = "isim ve mesaj zorunludur"
	ErrWishSaveFailed     WishServiceError = "dilek kaydedilemedi"
	ErrWishUpdateFailed   WishServiceError = "dilek güncellenemedi"
	ErrWishDeletionFailed WishServiceError = "dilek silinemedi"
)

// IWishService dilek duvarı işlemleri için arayüz.
type IWishService interface {
	SubmitWish(ctx context.Context, guestName, message string) (*models.Wish, error)
	GetApprovedWishes(ctx context.Context) ([]models.Wish, error)
	GetWishesFiltered(ctx context.Context, filter string) ([]models.Wish, error)
	ApproveWish(ctx context.Context, id uint) error
	UnapproveWish(ctx context.Context, id uint) error
	UpdateWishMessage(ctx context.Context, id uint, message string) error
	DeleteWish(ctx context.Context, id uint) error
}

// WishService IWishService arayüzünü uygular.
type WishService struct {
	repo repositories.IWishRepository

	// autoApprove true ise public gönderimler moderasyon beklemeden onaylanır.
	// WISH_AUTO_APPROVE ile kontrol edilir; kapatıldığında admin onay kuyruğu
	// gerçekten devreye girer.
	autoApprove bool
}

// NewWishService yeni bir WishService örneği oluşturur.
func NewWishService() IWishService {
	return &WishService{
		repo:        repositories.NewWishRepository(),
		autoApprove: configs.GetAppConfig().WishAutoApprove,
	}
}

// SubmitWish public formdan gelen dileği kaydeder.
// İki alan da trim sonrası boş olamaz; boşsa hiçbir kayıt oluşturulmaz.
func (s *WishService) SubmitWish(ctx context.Context, guestName, message string) (*models.Wish, error) {
	guestName = strings.TrimSpace(guestName)
	message = strings.TrimSpace(message)
	if guestName == "" || message == "" {
		return nil, ErrWishFieldsRequired
	}

	wish := &models.Wish{
		GuestName:  guestName,
		Message:    message,
		IsApproved: s.autoApprove,
	}

	if err := s.repo.Create(ctx, wish); err != nil {
		configslog.Log.Error("SubmitWish: repository hatası", zap.Error(err))
		return nil, ErrWishSaveFailed
	}

	configslog.SLog.Infof("Dilek kaydedildi: ID %d, Gönderen: %s, Onaylı: %t", wish.ID, wish.GuestName, wish.IsApproved)
	return wish, nil
}

// GetApprovedWishes public sayfanın tükettiği onaylı dilek akışını döndürür.
func (s *WishService) GetApprovedWishes(ctx context.Context) ([]models.Wish, error) {
	return s.repo.FindApproved(ctx)
}

// GetWishesFiltered moderasyon ekranı için filtreli liste döndürür (all|pending|approved).
func (s *WishService) GetWishesFiltered(ctx context.Context, filter string) ([]models.Wish, error) {
	switch filter {
	case repositories.WishFilterPending, repositories.WishFilterApproved:
		// geçerli
	default:
		filter = repositories.WishFilterAll
	}
	return s.repo.FindAllFiltered(ctx, filter)
}

// ApproveWish dileği onaylar. Zaten onaylıysa no-op (idempotent).
func (s *WishService) ApproveWish(ctx context.Context, id uint) error {
	return s.setApproval(ctx, id, true)
}

// UnapproveWish dileğin onayını kaldırır. Zaten onaysızsa no-op (idempotent).
func (s *WishService) UnapproveWish(ctx context.Context, id uint) error {
	return s.setApproval(ctx, id, false)
}

func (s *WishService) setApproval(ctx context.Context, id uint, approved bool) error {
	if err := s.repo.Update(ctx, id, map[string]interface{}{"is_approved": approved}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWishNotFound
		}
		configslog.Log.Error("setApproval: repository hatası", zap.Uint("id", id), zap.Bool("approved", approved), zap.Error(err))
		return ErrWishUpdateFailed
	}
	return nil
}

// UpdateWishMessage dileğin mesajını düzenler (moderasyon).
func (s *WishService) UpdateWishMessage(ctx context.Context, id uint, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrWishFieldsRequired
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"message": message}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWishNotFound
		}
		configslog.Log.Error("UpdateWishMessage: repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrWishUpdateFailed
	}
	return nil
}

// DeleteWish dileği kalıcı olarak siler (moderasyon).
func (s *WishService) DeleteWish(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrWishNotFound
	}
	wish := &models.Wish{BaseModel: models.BaseModel{ID: id}}
	if err := s.repo.Delete(ctx, wish); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWishNotFound
		}
		configslog.Log.Error("DeleteWish: repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrWishDeletionFailed
	}
	configslog.SLog.Infof("Dilek silindi: ID %d", id)
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ IWishService = (*WishService)(nil)
