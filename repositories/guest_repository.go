package repositories

import (
	"context"
	"errors"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestRepository davetli veritabanı işlemleri için arayüz.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindBySlug(ctx context.Context, slug string) (*models.Guest, error)
	FindByName(ctx context.Context, name string) (*models.Guest, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Guest, int64, error)
	FindAll(ctx context.Context) ([]models.Guest, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Delete(ctx context.Context, guest *models.Guest) error
	CountAll(ctx context.Context) (int64, error)
}

// GuestRepository IGuestRepository arayüzünü uygular.
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository yeni bir GuestRepository örneği oluşturur.
func NewGuestRepository() IGuestRepository {
	return &GuestRepository{db: configs.GetDB()}
}

// NewGuestRepositoryTx transaction içinde çalışan repository örneği oluşturur.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	return &GuestRepository{db: tx}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *GuestRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir davetli kaydı oluşturur.
// İsim benzersizliği lower(name) unique index'i ile garanti edilir;
// çakışma gorm.ErrDuplicatedKey olarak döner.
func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil || strings.TrimSpace(guest.Name) == "" {
		return errors.New("oluşturulacak davetli geçerli değil")
	}
	return r.getDB(ctx).Create(guest).Error
}

// FindByID ID ile davetliyi bulur.
func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Guest ID")
	}
	var guest models.Guest
	err := r.getDB(ctx).First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// FindBySlug benzersiz slug ile davetliyi bulur (birebir eşleşme).
func (r *GuestRepository) FindBySlug(ctx context.Context, slug string) (*models.Guest, error) {
	if slug == "" {
		return nil, errors.New("aranacak slug boş olamaz")
	}
	var guest models.Guest
	err := r.getDB(ctx).Where("slug = ?", slug).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// FindByName isme göre büyük/küçük harf duyarsız arar.
// Birden fazla eşleşme olursa en eski kayıt döner (deterministik tie-break).
func (r *GuestRepository) FindByName(ctx context.Context, name string) (*models.Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("aranacak isim boş olamaz")
	}
	var guest models.Guest
	err := r.getDB(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC, id ASC").
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByName: DB error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

// ExistsByName aynı isimde (harf duyarsız) davetli var mı kontrol eder.
func (r *GuestRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.New("kontrol edilecek isim boş olamaz")
	}
	var count int64
	err := r.getDB(ctx).Model(&models.Guest{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.ExistsByName: DB error", zap.String("name", name), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// FindAllPaginated davetlileri sayfalayarak listeler (admin listesi).
func (r *GuestRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Guest, int64, error) {
	var guests []models.Guest
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Guest{})
	if params.Name != "" {
		query = query.Where("name ILIKE ?", "%"+strings.TrimSpace(params.Name)+"%")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("GuestRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return guests, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "id",
		"name":       "name",
		"group_name": "group_name",
		"created_at": "created_at",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "created_at"
	}

	err := query.
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return guests, totalCount, nil
}

// FindAll tüm davetlileri döndürür (RSVP bekleyenler listesi için).
func (r *GuestRepository) FindAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.getDB(ctx).Order("name ASC").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// Update davetliyi kısmi olarak günceller (map ile).
func (r *GuestRepository) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if id == 0 {
		return errors.New("güncellenecek davetli ID'si geçersiz")
	}
	if len(data) == 0 {
		return errors.New("güncellenecek veri boş olamaz")
	}
	result := r.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.Update: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := r.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).Count(&exists).Error; err == nil && exists == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Delete davetliyi kalıcı olarak siler; ilişkili RSVP kaydı FK cascade ile düşer.
func (r *GuestRepository) Delete(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.ID == 0 {
		return errors.New("silinecek davetli geçerli değil")
	}
	result := r.getDB(ctx).Unscoped().Delete(guest)
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.Delete: DB error", zap.Uint("id", guest.ID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll toplam davetli sayısını döndürür.
func (r *GuestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Guest{}).Count(&count).Error
	return count, err
}

// Arayüz uyumluluğu kontrolü
var _ IGuestRepository = (*GuestRepository)(nil)
