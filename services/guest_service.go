package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/pkg/slugify"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GuestServiceError özel servis hataları
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNotFound       GuestServiceError = "davetli bulunamadı"
	ErrGuestNameRequired   GuestServiceError = "davetli adı zorunludur"
	ErrGuestDuplicateName  GuestServiceError = "bu isimde bir davetli zaten var"
	ErrGuestCreationFailed GuestServiceError = "davetli oluşturulamadı"
	ErrGuestUpdateFailed   GuestServiceError = "davetli güncellenemedi"
	ErrGuestDeletionFailed GuestServiceError = "davetli silinemedi"
	ErrGuestInvalidInput   GuestServiceError = "geçersiz davetli verisi"
)

// GuestCreateInput admin formundan gelen davetli oluşturma verisi.
type GuestCreateInput struct {
	Name      string `form:"name"`
	Slug      string `form:"slug"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	GroupName string `form:"group"`
}

// GuestUpdateInput admin formundan gelen davetli güncelleme verisi.
// Slug sadece boş olmayan bir değer geldiğinde değiştirilir.
type GuestUpdateInput struct {
	Name           string `form:"name"`
	Slug           string `form:"slug"`
	Email          string `form:"email"`
	Phone          string `form:"phone"`
	GroupName      string `form:"group"`
	InvitationSent bool   `form:"invitation_sent"`
}

// IGuestService davetli işlemleri için arayüz.
type IGuestService interface {
	CreateGuest(ctx context.Context, input GuestCreateInput) (*models.Guest, error)
	GetGuestByID(ctx context.Context, id uint) (*models.Guest, error)
	GetGuestBySlug(ctx context.Context, slug string) (*models.Guest, error)
	GetGuestsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateGuest(ctx context.Context, id uint, input GuestUpdateInput) error
	DeleteGuest(ctx context.Context, id uint) error
}

// GuestService IGuestService arayüzünü uygular.
type GuestService struct {
	repo repositories.IGuestRepository
}

// NewGuestService yeni bir GuestService örneği oluşturur.
func NewGuestService() IGuestService {
	return &GuestService{repo: repositories.NewGuestRepository()}
}

// CreateGuest yeni bir davetli oluşturur.
// İsim çakışması önce uygulama katmanında kontrol edilir (hızlı ve anlaşılır
// hata mesajı için); asıl garanti lower(name) unique index'indedir ve yarış
// durumunda ErrDuplicatedKey aynı hataya çevrilir.
func (s *GuestService) CreateGuest(ctx context.Context, input GuestCreateInput) (*models.Guest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGuestNameRequired
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, ErrGuestCreationFailed
	}
	if exists {
		return nil, ErrGuestDuplicateName
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = slugify.MakeUnique(name)
	}

	guest := &models.Guest{
		Name:      name,
		Slug:      slug,
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		GroupName: strings.TrimSpace(input.GroupName),
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGuestDuplicateName
		}
		configslog.Log.Error("CreateGuest: repository hatası", zap.String("name", name), zap.Error(err))
		return nil, ErrGuestCreationFailed
	}

	configslog.SLog.Infof("Davetli oluşturuldu: ID %d, İsim: %s, Slug: %s", guest.ID, guest.Name, guest.Slug)
	return guest, nil
}

// GetGuestByID ID ile davetliyi getirir.
func (s *GuestService) GetGuestByID(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

// GetGuestBySlug davetiye linkindeki slug ile davetliyi getirir.
func (s *GuestService) GetGuestBySlug(ctx context.Context, slug string) (*models.Guest, error) {
	guest, err := s.repo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

// GetGuestsPaginated davetlileri sayfalayarak getirir (admin listesi).
func (s *GuestService) GetGuestsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	guests, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: guests,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdateGuest davetliyi kısmi olarak günceller.
// Slug sadece boş olmayan bir değer geldiğinde üzerine yazılır.
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, input GuestUpdateInput) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGuestInvalidInput)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ErrGuestNameRequired
	}

	data := map[string]interface{}{
		"name":            name,
		"email":           strings.TrimSpace(input.Email),
		"phone":           strings.TrimSpace(input.Phone),
		"group_name":      strings.TrimSpace(input.GroupName),
		"invitation_sent": input.InvitationSent,
	}
	if slug := strings.TrimSpace(input.Slug); slug != "" {
		data["slug"] = slug
	}

	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrGuestDuplicateName
		}
		configslog.Log.Error("UpdateGuest: repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrGuestUpdateFailed
	}

	configslog.SLog.Infof("Davetli güncellendi: ID %d", id)
	return nil
}

// DeleteGuest davetliyi kalıcı olarak siler; RSVP kaydı cascade ile düşer.
func (s *GuestService) DeleteGuest(ctx context.Context, id uint) error {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, guest); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		configslog.Log.Error("DeleteGuest: repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrGuestDeletionFailed
	}

	configslog.SLog.Infof("Davetli silindi: ID %d, İsim: %s", guest.ID, guest.Name)
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ IGuestService = (*GuestService)(nil)
