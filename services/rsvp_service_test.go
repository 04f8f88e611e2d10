package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"
)

// fakeGuestRepo IGuestRepository'nin bellek içi sahtesi.
// Hem RSVP hem davetli servis testlerinde kullanılır.
type fakeGuestRepo struct {
	guests    []models.Guest
	createErr error

	findBySlugCalls int
	findByNameCalls int
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *models.Guest) error {
	if f.createErr != nil {
		return f.createErr
	}
	guest.ID = uint(len(f.guests) + 1)
	f.guests = append(f.guests, *guest)
	return nil
}

func (f *fakeGuestRepo) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	for i := range f.guests {
		if f.guests[i].ID == id {
			return &f.guests[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeGuestRepo) FindBySlug(ctx context.Context, slug string) (*models.Guest, error) {
	f.findBySlugCalls++
	for i := range f.guests {
		if f.guests[i].Slug == slug {
			return &f.guests[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeGuestRepo) FindByName(ctx context.Context, name string) (*models.Guest, error) {
	f.findByNameCalls++
	for i := range f.guests {
		if strings.EqualFold(f.guests[i].Name, name) {
			return &f.guests[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeGuestRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for i := range f.guests {
		if strings.EqualFold(f.guests[i].Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGuestRepo) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Guest, int64, error) {
	return f.guests, int64(len(f.guests)), nil
}

func (f *fakeGuestRepo) FindAll(ctx context.Context) ([]models.Guest, error) {
	return f.guests, nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, guest *models.Guest) error { return nil }

func (f *fakeGuestRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.guests)), nil
}

// fakeRSVPRepo IRSVPRepository'nin bellek içi sahtesi.
type fakeRSVPRepo struct {
	rsvps     []models.RSVP
	upserted  *models.RSVP
	upsertErr error
	deleteErr error
}

func (f *fakeRSVPRepo) Upsert(ctx context.Context, rsvp *models.RSVP) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = rsvp
	return nil
}

func (f *fakeRSVPRepo) FindByGuestID(ctx context.Context, guestID uint) (*models.RSVP, error) {
	for i := range f.rsvps {
		if f.rsvps[i].GuestID == guestID {
			return &f.rsvps[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRSVPRepo) FindAllFiltered(ctx context.Context, filter string) ([]models.RSVP, error) {
	return f.rsvps, nil
}

func (f *fakeRSVPRepo) FindRecent(ctx context.Context, limit int) ([]models.RSVP, error) {
	if limit > 0 && len(f.rsvps) > limit {
		return f.rsvps[:limit], nil
	}
	return f.rsvps, nil
}

func (f *fakeRSVPRepo) FindGuestIDsWithRSVP(ctx context.Context) ([]uint, error) {
	ids := make([]uint, 0, len(f.rsvps))
	for _, r := range f.rsvps {
		ids = append(ids, r.GuestID)
	}
	return ids, nil
}

func (f *fakeRSVPRepo) Delete(ctx context.Context, rsvp *models.RSVP) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

func (f *fakeRSVPRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.rsvps)), nil
}

func (f *fakeRSVPRepo) CountByAttending(ctx context.Context, attending bool) (int64, error) {
	var n int64
	for _, r := range f.rsvps {
		if r.Attending == attending {
			n++
		}
	}
	return n, nil
}

func newTestRSVPService(guestRepo *fakeGuestRepo, rsvpRepo *fakeRSVPRepo) *RSVPService {
	return &RSVPService{rsvpRepo: rsvpRepo, guestRepo: guestRepo}
}

func TestParseAttending(t *testing.T) {
	cases := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{"yes", true},
		{"Yes", true},
		{"TRUE", true},
		{" yes ", true},
		{"no", false},
		{"hayır", false},
		{"", false},
		{nil, false},
		{float64(1), false},
	}
	for _, c := range cases {
		if got := ParseAttending(c.in); got != c.want {
			t.Errorf("ParseAttending(%v) = %t, beklenen %t", c.in, got, c.want)
		}
	}
}

func TestNormalizeGuestCount(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int
	}{
		{float64(3), 3},
		{float64(0), 1},
		{float64(-2), 1},
		{5, 5},
		{"4", 4},
		{" 2 ", 2},
		{"abc", 1},
		{"", 1},
		{nil, 1},
		{true, 1},
	}
	for _, c := range cases {
		if got := NormalizeGuestCount(c.in); got != c.want {
			t.Errorf("NormalizeGuestCount(%v) = %d, beklenen %d", c.in, got, c.want)
		}
	}
}

func TestResolveGuestSlugPrecedence(t *testing.T) {
	guestRepo := &fakeGuestRepo{guests: []models.Guest{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Ali Veli", Slug: "ali-veli-abc"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Ayşe Kaya", Slug: "ayse-kaya-def"},
	}}
	svc := newTestRSVPService(guestRepo, &fakeRSVPRepo{})

	// Slug eşleşirse isim hiç kullanılmaz; yanlış isim bile sonucu değiştirmez.
	guest, err := svc.ResolveGuest(context.Background(), "ayse-kaya-def", "Ali Veli")
	if err != nil {
		t.Fatalf("ResolveGuest hata döndü: %v", err)
	}
	if guest.ID != 2 {
		t.Errorf("slug önceliği ihlal edildi: gelen ID %d, beklenen 2", guest.ID)
	}
	if guestRepo.findByNameCalls != 0 {
		t.Errorf("slug eşleşmesine rağmen isimle arama yapıldı (%d kez)", guestRepo.findByNameCalls)
	}
}

func TestResolveGuestNameFallback(t *testing.T) {
	guestRepo := &fakeGuestRepo{guests: []models.Guest{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Ali Veli", Slug: "ali-veli-abc"},
	}}
	svc := newTestRSVPService(guestRepo, &fakeRSVPRepo{})

	// Slug eşleşmezse isimle (harf duyarsız) devam edilir.
	guest, err := svc.ResolveGuest(context.Background(), "bilinmeyen-slug", "ali veli")
	if err != nil {
		t.Fatalf("ResolveGuest hata döndü: %v", err)
	}
	if guest.ID != 1 {
		t.Errorf("gelen ID %d, beklenen 1", guest.ID)
	}
	if guestRepo.findBySlugCalls != 1 || guestRepo.findByNameCalls != 1 {
		t.Errorf("arama sırası hatalı: slug=%d, name=%d", guestRepo.findBySlugCalls, guestRepo.findByNameCalls)
	}
}

func TestResolveGuestRejectsUnknown(t *testing.T) {
	svc := newTestRSVPService(&fakeGuestRepo{}, &fakeRSVPRepo{})

	_, err := svc.ResolveGuest(context.Background(), "", "Tanımsız Kişi")
	if !errors.Is(err, ErrRSVPGuestNotFound) {
		t.Fatalf("beklenen ErrRSVPGuestNotFound, gelen: %v", err)
	}
}

func TestSubmitRSVPBuildsRecord(t *testing.T) {
	guestRepo := &fakeGuestRepo{guests: []models.Guest{
		{BaseModel: models.BaseModel{ID: 7}, Name: "Ali Veli", Slug: "ali-veli-abc"},
	}}
	rsvpRepo := &fakeRSVPRepo{}
	svc := newTestRSVPService(guestRepo, rsvpRepo)

	guest, err := svc.SubmitRSVP(context.Background(), RSVPSubmission{
		Name:      "Ali Veli",
		Attending: "yes",
		Guests:    float64(0),
		Message:   "  Görüşmek üzere!  ",
	})
	if err != nil {
		t.Fatalf("SubmitRSVP hata döndü: %v", err)
	}
	if guest.ID != 7 {
		t.Errorf("dönen davetli ID %d, beklenen 7", guest.ID)
	}

	r := rsvpRepo.upserted
	if r == nil {
		t.Fatal("Upsert hiç çağrılmadı")
	}
	if r.GuestID != 7 {
		t.Errorf("GuestID = %d, beklenen 7", r.GuestID)
	}
	if !r.Attending {
		t.Error("Attending = false, beklenen true")
	}
	if r.NumberOfGuests != 1 {
		t.Errorf("NumberOfGuests = %d, beklenen 1 (geçersiz sayı normalize edilmeli)", r.NumberOfGuests)
	}
	if r.Message != "Görüşmek üzere!" {
		t.Errorf("Message = %q, trim edilmemiş", r.Message)
	}
}

func TestSubmitRSVPUnknownGuest(t *testing.T) {
	svc := newTestRSVPService(&fakeGuestRepo{}, &fakeRSVPRepo{})

	_, err := svc.SubmitRSVP(context.Background(), RSVPSubmission{Name: "Yok Böyle Biri"})
	if !errors.Is(err, ErrRSVPGuestNotFound) {
		t.Fatalf("beklenen ErrRSVPGuestNotFound, gelen: %v", err)
	}
}

func TestSubmitRSVPUpsertFailure(t *testing.T) {
	guestRepo := &fakeGuestRepo{guests: []models.Guest{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Ali Veli", Slug: "ali-veli-abc"},
	}}
	rsvpRepo := &fakeRSVPRepo{upsertErr: errors.New("db down")}
	svc := newTestRSVPService(guestRepo, rsvpRepo)

	_, err := svc.SubmitRSVP(context.Background(), RSVPSubmission{Name: "Ali Veli"})
	if !errors.Is(err, ErrRSVPSaveFailed) {
		t.Fatalf("beklenen ErrRSVPSaveFailed, gelen: %v", err)
	}
}

func TestGetPendingGuests(t *testing.T) {
	guestRepo := &fakeGuestRepo{guests: []models.Guest{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Ali"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Ayşe"},
		{BaseModel: models.BaseModel{ID: 3}, Name: "Mehmet"},
	}}
	rsvpRepo := &fakeRSVPRepo{rsvps: []models.RSVP{{GuestID: 2}}}
	svc := newTestRSVPService(guestRepo, rsvpRepo)

	pending, err := svc.GetPendingGuests(context.Background())
	if err != nil {
		t.Fatalf("GetPendingGuests hata döndü: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("bekleyen sayısı %d, beklenen 2", len(pending))
	}
	for _, g := range pending {
		if g.ID == 2 {
			t.Error("yanıt vermiş davetli bekleyenler listesinde")
		}
	}
}

func TestExportRSVPsCSV(t *testing.T) {
	rsvpRepo := &fakeRSVPRepo{rsvps: []models.RSVP{
		{
			GuestID:        1,
			Guest:          models.Guest{BaseModel: models.BaseModel{ID: 1}, Name: "Ali Veli", Email: "ali@example.com"},
			Attending:      true,
			NumberOfGuests: 2,
			Message:        "Geliyoruz",
		},
	}}
	svc := newTestRSVPService(&fakeGuestRepo{}, rsvpRepo)

	data, err := svc.ExportRSVPsCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportRSVPsCSV hata döndü: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("satır sayısı %d, beklenen 2 (başlık + 1 kayıt)", len(lines))
	}
	wantHeader := "Guest Name,Email,Phone,Attending,Number of Guests,Dietary Restrictions,Message,RSVP Date"
	if lines[0] != wantHeader {
		t.Errorf("başlık satırı hatalı:\n  gelen:    %q\n  beklenen: %q", lines[0], wantHeader)
	}
	if !strings.Contains(lines[1], "Ali Veli") || !strings.Contains(lines[1], "Yes") {
		t.Errorf("kayıt satırı eksik: %q", lines[1])
	}
}

func TestDeleteRSVPNotFound(t *testing.T) {
	rsvpRepo := &fakeRSVPRepo{deleteErr: repositories.ErrNotFound}
	svc := newTestRSVPService(&fakeGuestRepo{}, rsvpRepo)

	if err := svc.DeleteRSVP(context.Background(), 99); !errors.Is(err, ErrRSVPNotFound) {
		t.Fatalf("beklenen ErrRSVPNotFound, gelen: %v", err)
	}
	if err := svc.DeleteRSVP(context.Background(), 0); !errors.Is(err, ErrRSVPNotFound) {
		t.Fatalf("id=0 için beklenen ErrRSVPNotFound, gelen: %v", err)
	}
}
