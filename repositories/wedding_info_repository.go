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

// IWeddingInfoRepository düğün içeriği (singleton kayıt) için arayüz.
type IWeddingInfoRepository interface {
	Find(ctx context.Context) (*models.WeddingInfo, error)
	Upsert(ctx context.Context, info *models.WeddingInfo) error
}

// WeddingInfoRepository IWeddingInfoRepository arayüzünü uygular.
type WeddingInfoRepository struct {
	db *gorm.DB
}

// NewWeddingInfoRepository yeni bir WeddingInfoRepository örneği oluşturur.
func NewWeddingInfoRepository() IWeddingInfoRepository {
	return &WeddingInfoRepository{db: configs.GetDB()}
}

// NewWeddingInfoRepositoryTx transaction içinde çalışan repository örneği oluşturur.
func NewWeddingInfoRepositoryTx(tx *gorm.DB) IWeddingInfoRepository {
	return &WeddingInfoRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *WeddingInfoRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Find tekil düğün içeriği kaydını döndürür. Henüz oluşturulmadıysa ErrNotFound.
func (r *WeddingInfoRepository) Find(ctx context.Context) (*models.WeddingInfo, error) {
	var info models.WeddingInfo
	err := r.getDB(ctx).Where("guard = ?", models.WeddingInfoGuard).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingInfoRepository.Find: DB error", zap.Error(err))
		return nil, err
	}
	return &info, nil
}

// Upsert tekil kaydı günceller, yoksa oluşturur.
// Guard sütunundaki unique index eşzamanlı ilk yazımlarda bile
// ikinci bir satır oluşmasını engeller.
func (r *WeddingInfoRepository) Upsert(ctx context.Context, info *models.WeddingInfo) error {
	if info == nil {
		return errors.New("kaydedilecek düğün içeriği nil olamaz")
	}
	info.Guard = models.WeddingInfoGuard
	return r.getDB(ctx).
		Where(models.WeddingInfo{Guard: models.WeddingInfoGuard}).
		Assign(map[string]interface{}{
			"groom_name":          info.GroomName,
			"bride_name":          info.BrideName,
			"wedding_date":        info.WeddingDate,
			"wedding_time":        info.WeddingTime,
			"venue_name":          info.VenueName,
			"venue_address":       info.VenueAddress,
			"venue_map_url":       info.VenueMapURL,
			"hero_image_url":      info.HeroImageURL,
			"story_text":          info.StoryText,
			"bank_name":           info.BankName,
			"bank_account_number": info.BankAccountNumber,
			"bank_account_name":   info.BankAccountName,
			"bank_qr_image_url":   info.BankQRImageURL,
		}).
		FirstOrCreate(info).Error
}

// Arayüz uyumluluğu kontrolü
var _ IWeddingInfoRepository = (*WeddingInfoRepository)(nil)
