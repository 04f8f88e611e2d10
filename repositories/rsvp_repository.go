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

// RSVPFilter admin listesindeki filtre değerleri.
const (
	RSVPFilterAll       = "all"
	RSVPFilterAttending = "attending"
	RSVPFilterDeclined  = "declined"
)

// IRSVPRepository RSVP veritabanı işlemleri için arayüz.
type IRSVPRepository interface {
	Upsert(ctx context.Context, rsvp *models.RSVP) error
	FindByGuestID(ctx context.Context, guestID uint) (*models.RSVP, error)
	FindAllFiltered(ctx context.Context, filter string) ([]models.RSVP, error)
	FindRecent(ctx context.Context, limit int) ([]models.RSVP, error)
	FindGuestIDsWithRSVP(ctx context.Context) ([]uint, error)
	Delete(ctx context.Context, rsvp *models.RSVP) error
	CountAll(ctx context.Context) (int64, error)
	CountByAttending(ctx context.Context, attending bool) (int64, error)
}

// RSVPRepository IRSVPRepository arayüzünü uygular.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository() IRSVPRepository {
	return &RSVPRepository{db: configs.GetDB()}
}

// NewRSVPRepositoryTx transaction içinde çalışan repository örneği oluşturur.
func NewRSVPRepositoryTx(tx *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: tx}
}

// Context ile çalışan DB örneği
func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Upsert davetlinin RSVP kaydını bulur ve tamamen üzerine yazar, yoksa oluşturur.
// guest_id unique index'i sayesinde eşzamanlı iki gönderim bile ikinci satır üretemez.
func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil || rsvp.GuestID == 0 {
		return errors.New("geçersiz RSVP verisi (GuestID eksik)")
	}
	return r.getDB(ctx).
		Where(models.RSVP{GuestID: rsvp.GuestID}).
		Assign(map[string]interface{}{
			"attending":            rsvp.Attending,
			"number_of_guests":     rsvp.NumberOfGuests,
			"dietary_restrictions": rsvp.DietaryRestrictions,
			"message":              rsvp.Message,
		}).
		FirstOrCreate(rsvp).Error
}

// FindByGuestID davetliye ait RSVP'yi döndürür.
func (r *RSVPRepository) FindByGuestID(ctx context.Context, guestID uint) (*models.RSVP, error) {
	if guestID == 0 {
		return nil, errors.New("geçersiz Guest ID")
	}
	var rsvp models.RSVP
	err := r.getDB(ctx).Where("guest_id = ?", guestID).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindByGuestID: DB error", zap.Uint("guestID", guestID), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindAllFiltered RSVP'leri filtreleyerek listeler; en son güncellenen başta.
// Davetli bilgisi (isim, e-posta, telefon) preload edilir.
func (r *RSVPRepository) FindAllFiltered(ctx context.Context, filter string) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	query := r.getDB(ctx).Preload("Guest").Order("updated_at DESC")

	switch filter {
	case RSVPFilterAttending:
		query = query.Where("attending = ?", true)
	case RSVPFilterDeclined:
		query = query.Where("attending = ?", false)
	}

	if err := query.Find(&rsvps).Error; err != nil {
		configslog.Log.Error("RSVPRepository.FindAllFiltered: DB error", zap.String("filter", filter), zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindRecent son güncellenen RSVP'leri döndürür (dashboard aktivite akışı).
func (r *RSVPRepository) FindRecent(ctx context.Context, limit int) ([]models.RSVP, error) {
	if limit <= 0 {
		limit = 5
	}
	var rsvps []models.RSVP
	err := r.getDB(ctx).Preload("Guest").Order("updated_at DESC").Limit(limit).Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindGuestIDsWithRSVP yanıt vermiş davetlilerin ID listesini döndürür.
// RSVP bekleyenler, tüm davetlilerden bu kümenin farkıdır.
func (r *RSVPRepository) FindGuestIDsWithRSVP(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.getDB(ctx).Model(&models.RSVP{}).Pluck("guest_id", &ids).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindGuestIDsWithRSVP: DB error", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// Delete RSVP kaydını siler (admin).
func (r *RSVPRepository) Delete(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil || rsvp.ID == 0 {
		return errors.New("silinecek RSVP geçerli değil")
	}
	result := r.getDB(ctx).Unscoped().Delete(rsvp)
	if result.Error != nil {
		configslog.Log.Error("RSVPRepository.Delete: DB error", zap.Uint("id", rsvp.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll toplam RSVP sayısını döndürür.
func (r *RSVPRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.RSVP{}).Count(&count).Error
	return count, err
}

// CountByAttending katılan/katılmayan sayısını döndürür.
func (r *RSVPRepository) CountByAttending(ctx context.Context, attending bool) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.RSVP{}).Where("attending = ?", attending).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IRSVPRepository = (*RSVPRepository)(nil)
