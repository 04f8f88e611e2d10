package repositories

import (
	"context"
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WishFilter admin moderasyon ekranındaki filtre değerleri.
const (
	WishFilterAll      = "all"
	WishFilterPending  = "pending"
	WishFilterApproved = "approved"
)

// IWishRepository dilek veritabanı işlemleri için arayüz.
type IWishRepository interface {
	Create(ctx context.Context, wish *models.Wish) error
	FindByID(ctx context.Context, id uint) (*models.Wish, error)
	FindApproved(ctx context.Context) ([]models.Wish, error)
	FindAllFiltered(ctx context.Context, filter string) ([]models.Wish, error)
	FindRecent(ctx context.Context, limit int) ([]models.Wish, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, wish *models.Wish) error
	CountAll(ctx context.Context) (int64, error)
}

// WishRepository IWishRepository arayüzünü uygular.
type WishRepository struct {
	db *gorm.DB
}

// NewWishRepository yeni bir WishRepository örneği oluşturur.
func NewWishRepository() IWishRepository {
	return &WishRepository{db: configs.GetDB()}
}

// NewWishRepositoryTx transaction içinde çalışan repository örneği oluşturur.
func NewWishRepositoryTx(tx *gorm.DB) IWishRepository {
	return &WishRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *WishRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir dilek kaydı oluşturur.
func (r *WishRepository) Create(ctx context.Context, wish *models.Wish) error {
	if wish == nil {
		return errors.New("oluşturulacak dilek nil olamaz")
	}
	return r.getDB(ctx).Create(wish).Error
}

// FindByID ID ile dileği bulur.
func (r *WishRepository) FindByID(ctx context.Context, id uint) (*models.Wish, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Wish ID")
	}
	var wish models.Wish
	err := r.getDB(ctx).First(&wish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WishRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &wish, nil
}

// FindApproved sadece onaylı dilekleri döndürür; en yeni başta.
// Public sayfanın tükettiği tek akış budur.
func (r *WishRepository) FindApproved(ctx context.Context) ([]models.Wish, error) {
	var wishes []models.Wish
	err := r.getDB(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&wishes).Error
	if err != nil {
		configslog.Log.Error("WishRepository.FindApproved: DB error", zap.Error(err))
		return nil, err
	}
	return wishes, nil
}

// FindAllFiltered moderasyon ekranı için filtreli liste döndürür.
func (r *WishRepository) FindAllFiltered(ctx context.Context, filter string) ([]models.Wish, error) {
	var wishes []models.Wish
	query := r.getDB(ctx).Order("created_at DESC")

	switch filter {
	case WishFilterPending:
		query = query.Where("is_approved = ?", false)
	case WishFilterApproved:
		query = query.Where("is_approved = ?", true)
	}

	if err := query.Find(&wishes).Error; err != nil {
		configslog.Log.Error("WishRepository.FindAllFiltered: DB error", zap.String("filter", filter), zap.Error(err))
		return nil, err
	}
	return wishes, nil
}

// FindRecent son eklenen dilekleri döndürür (dashboard aktivite akışı).
func (r *WishRepository) FindRecent(ctx context.Context, limit int) ([]models.Wish, error) {
	if limit <= 0 {
		limit = 5
	}
	var wishes []models.Wish
	err := r.getDB(ctx).Order("created_at DESC").Limit(limit).Find(&wishes).Error
	if err != nil {
		configslog.Log.Error("WishRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return wishes, nil
}

// Update dileği kısmi olarak günceller (onay bayrağı veya mesaj).
func (r *WishRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return errors.New("güncellenecek dilek ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	result := r.getDB(ctx).Model(&models.Wish{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		configslog.Log.Error("WishRepository.Update: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := r.getDB(ctx).Model(&models.Wish{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
		// Değer zaten aynıysa satır etkilenmez; bu bir hata değildir (idempotent moderasyon).
	}
	return nil
}

// Delete dileği kalıcı olarak siler.
func (r *WishRepository) Delete(ctx context.Context, wish *models.Wish) error {
	if wish == nil || wish.ID == 0 {
		return errors.New("silinecek dilek geçerli değil")
	}
	result := r.getDB(ctx).Unscoped().Delete(wish)
	if result.Error != nil {
		configslog.Log.Error("WishRepository.Delete: DB error", zap.Uint("id", wish.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll toplam dilek sayısını döndürür.
func (r *WishRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Wish{}).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IWishRepository = (*WishRepository)(nil)
