package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPGuestNotFound  RSVPServiceError = "rsvp için davetli bulunamadı"
	ErrRSVPSaveFailed     RSVPServiceError = "rsvp kaydedilemedi"
	ErrRSVPNotFound       RSVPServiceError = "rsvp kaydı bulunamadı"
	ErrRSVPDeletionFailed RSVPServiceError = "rsvp silinemedi"
	ErrRSVPExportFailed   RSVPServiceError = "rsvp dışa aktarımı başarısız"
)

// RSVPSubmission public formdan gelen ham gönderim.
// Attending ve Guests alanları JSON'da bool/sayı ya da string gelebilir;
// yorumlama ParseAttending / NormalizeGuestCount ile yapılır.
type RSVPSubmission struct {
	Name      string
	Slug      string
	Attending interface{}
	Guests    interface{}
	Message   string
}

// IRSVPService RSVP işlemleri için arayüz.
type IRSVPService interface {
	ResolveGuest(ctx context.Context, slug, name string) (*models.Guest, error)
	SubmitRSVP(ctx context.Context, submission RSVPSubmission) (*models.Guest, error)
	GetRSVPsFiltered(ctx context.Context, filter string) ([]models.RSVP, error)
	GetPendingGuests(ctx context.Context) ([]models.Guest, error)
	ExportRSVPsCSV(ctx context.Context) ([]byte, error)
	DeleteRSVP(ctx context.Context, id uint) error
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	rsvpRepo  repositories.IRSVPRepository
	guestRepo repositories.IGuestRepository
}

// NewRSVPService yeni bir RSVPService örneği oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		rsvpRepo:  repositories.NewRSVPRepository(),
		guestRepo: repositories.NewGuestRepository(),
	}
}

// ParseAttending gönderilen katılım değerini yorumlar.
// bool true ile "yes"/"true" (harf duyarsız) katılım sayılır;
// diğer her şey katılmama olarak işlenir.
func ParseAttending(v interface{}) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		s := strings.ToLower(strings.TrimSpace(value))
		return s == "yes" || s == "true"
	default:
		return false
	}
}

// NormalizeGuestCount gönderilen kişi sayısını pozitif tamsayıya çevirir.
// Sayı değilse, 0 veya negatifse 1 kabul edilir.
func NormalizeGuestCount(v interface{}) int {
	var n int
	switch value := v.(type) {
	case float64: // JSON sayıları float64 gelir
		n = int(value)
	case int:
		n = value
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 1
		}
		n = parsed
	default:
		return 1
	}
	if n < 1 {
		return 1
	}
	return n
}

// ResolveGuest gönderimi tam olarak bir davetliye bağlar.
// Öncelik sırası katıdır: slug varsa ve eşleşirse isim hiç kullanılmaz
// (davetliye özel link, elle yazılan isimden daha güçlü bir kimlik işaretidir);
// slug yoksa veya eşleşmezse isimle harf duyarsız arama yapılır.
// Hiçbiri eşleşmezse gönderim reddedilir; bilinmeyen davetli için kayıt
// OLUŞTURULMAZ (bilinçli politika: spam ve veritabanı kirliliğine karşı).
func (s *RSVPService) ResolveGuest(ctx context.Context, slug, name string) (*models.Guest, error) {
	if slug = strings.TrimSpace(slug); slug != "" {
		guest, err := s.guestRepo.FindBySlug(ctx, slug)
		if err == nil {
			return guest, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		// Slug eşleşmedi; isim ile devam edilir.
	}

	if name = strings.TrimSpace(name); name != "" {
		guest, err := s.guestRepo.FindByName(ctx, name)
		if err == nil {
			return guest, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	return nil, ErrRSVPGuestNotFound
}

// SubmitRSVP gönderimi çözümler ve davetlinin RSVP kaydını oluşturur/üzerine yazar.
// Aynı davetlinin yeni gönderimi önceki yanıtı tamamen değiştirir (merge yok).
func (s *RSVPService) SubmitRSVP(ctx context.Context, submission RSVPSubmission) (*models.Guest, error) {
	guest, err := s.ResolveGuest(ctx, submission.Slug, submission.Name)
	if err != nil {
		if errors.Is(err, ErrRSVPGuestNotFound) {
			return nil, err
		}
		configslog.Log.Error("SubmitRSVP: davetli çözümlenirken hata", zap.Error(err))
		return nil, ErrRSVPSaveFailed
	}

	rsvp := &models.RSVP{
		GuestID:        guest.ID,
		Attending:      ParseAttending(submission.Attending),
		NumberOfGuests: NormalizeGuestCount(submission.Guests),
		Message:        strings.TrimSpace(submission.Message),
	}

	if err := s.rsvpRepo.Upsert(ctx, rsvp); err != nil {
		configslog.Log.Error("SubmitRSVP: upsert hatası", zap.Uint("guestID", guest.ID), zap.Error(err))
		return nil, ErrRSVPSaveFailed
	}

	configslog.SLog.Infof("RSVP kaydedildi: Davetli %s (ID %d), Katılım: %t, Kişi: %d",
		guest.Name, guest.ID, rsvp.Attending, rsvp.NumberOfGuests)
	return guest, nil
}

// GetRSVPsFiltered admin listesi için RSVP'leri getirir (all|attending|declined).
func (s *RSVPService) GetRSVPsFiltered(ctx context.Context, filter string) ([]models.RSVP, error) {
	switch filter {
	case repositories.RSVPFilterAttending, repositories.RSVPFilterDeclined:
		// geçerli
	default:
		filter = repositories.RSVPFilterAll
	}
	return s.rsvpRepo.FindAllFiltered(ctx, filter)
}

// GetPendingGuests henüz yanıt vermemiş davetlileri döndürür.
func (s *RSVPService) GetPendingGuests(ctx context.Context) ([]models.Guest, error) {
	guests, err := s.guestRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	respondedIDs, err := s.rsvpRepo.FindGuestIDsWithRSVP(ctx)
	if err != nil {
		return nil, err
	}

	responded := make(map[uint]struct{}, len(respondedIDs))
	for _, id := range respondedIDs {
		responded[id] = struct{}{}
	}

	pending := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if _, ok := responded[g.ID]; !ok {
			pending = append(pending, g)
		}
	}
	return pending, nil
}

// ExportRSVPsCSV tüm RSVP'leri CSV olarak dışa aktarır.
func (s *RSVPService) ExportRSVPsCSV(ctx context.Context) ([]byte, error) {
	rsvps, err := s.rsvpRepo.FindAllFiltered(ctx, repositories.RSVPFilterAll)
	if err != nil {
		return nil, ErrRSVPExportFailed
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Guest Name", "Email", "Phone", "Attending", "Number of Guests", "Dietary Restrictions", "Message", "RSVP Date"}
	if err := w.Write(header); err != nil {
		return nil, ErrRSVPExportFailed
	}

	for _, r := range rsvps {
		attending := "No"
		if r.Attending {
			attending = "Yes"
		}
		row := []string{
			r.Guest.Name,
			r.Guest.Email,
			r.Guest.Phone,
			attending,
			strconv.Itoa(r.NumberOfGuests),
			r.DietaryRestrictions,
			r.Message,
			r.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, ErrRSVPExportFailed
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		configslog.Log.Error("ExportRSVPsCSV: yazma hatası", zap.Error(err))
		return nil, ErrRSVPExportFailed
	}
	return buf.Bytes(), nil
}

// DeleteRSVP bir RSVP kaydını siler (admin).
func (s *RSVPService) DeleteRSVP(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrRSVPNotFound
	}
	rsvp := &models.RSVP{BaseModel: models.BaseModel{ID: id}}
	if err := s.rsvpRepo.Delete(ctx, rsvp); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRSVPNotFound
		}
		configslog.Log.Error("DeleteRSVP: repository hatası", zap.Uint("id", id), zap.Error(err))
		return ErrRSVPDeletionFailed
	}
	configslog.SLog.Infof("RSVP silindi: ID %d", id)
	return nil
}

// Arayüz uyumluluğu kontrolü
var _ IRSVPService = (*RSVPService)(nil)
