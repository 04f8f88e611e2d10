package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
)

// fakeRSVPService IRSVPService'in test sahtesi.
type fakeRSVPService struct {
	guest      *models.Guest
	submitErr  error
	submission services.RSVPSubmission
}

func (f *fakeRSVPService) ResolveGuest(ctx context.Context, slug, name string) (*models.Guest, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.guest, nil
}

func (f *fakeRSVPService) SubmitRSVP(ctx context.Context, submission services.RSVPSubmission) (*models.Guest, error) {
	f.submission = submission
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.guest, nil
}

func (f *fakeRSVPService) GetRSVPsFiltered(ctx context.Context, filter string) ([]models.RSVP, error) {
	return nil, nil
}

func (f *fakeRSVPService) GetPendingGuests(ctx context.Context) ([]models.Guest, error) {
	return nil, nil
}

func (f *fakeRSVPService) ExportRSVPsCSV(ctx context.Context) ([]byte, error) { return nil, nil }

func (f *fakeRSVPService) DeleteRSVP(ctx context.Context, id uint) error { return nil }

func newRSVPTestApp(svc services.IRSVPService) *fiber.App {
	app := fiber.New()
	h := &PublicRSVPHandler{rsvpService: svc}
	app.Post("/api/rsvp", h.SubmitRSVP)
	return app
}

func TestSubmitRSVPSuccess(t *testing.T) {
	fake := &fakeRSVPService{guest: &models.Guest{BaseModel: models.BaseModel{ID: 1}, Name: "Ali Veli"}}
	app := newRSVPTestApp(fake)

	body := `{"name":"Ali Veli","attending":"yes","guests":2,"message":"Geliyoruz","slug":"ali-veli-abc"}`
	req := httptest.NewRequest("POST", "/api/rsvp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("durum kodu %d, beklenen %d", resp.StatusCode, fiber.StatusOK)
	}

	var got map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("yanıt çözümlenemedi: %v", err)
	}
	if got["success"] != true {
		t.Errorf("success = %v, beklenen true", got["success"])
	}
	if got["guest"] != "Ali Veli" {
		t.Errorf("guest = %v, beklenen %q", got["guest"], "Ali Veli")
	}

	// Gövde alanları servise olduğu gibi taşınmalı.
	if fake.submission.Slug != "ali-veli-abc" || fake.submission.Name != "Ali Veli" {
		t.Errorf("gönderim alanları eksik taşındı: %+v", fake.submission)
	}
}

func TestSubmitRSVPGuestNotFound(t *testing.T) {
	fake := &fakeRSVPService{submitErr: services.ErrRSVPGuestNotFound}
	app := newRSVPTestApp(fake)

	req := httptest.NewRequest("POST", "/api/rsvp", strings.NewReader(`{"name":"Tanımsız"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("durum kodu %d, beklenen %d", resp.StatusCode, fiber.StatusNotFound)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), msgGuestNotFound) {
		t.Errorf("hata mesajı beklenen metni içermiyor: %s", raw)
	}
}

func TestSubmitRSVPSaveFailure(t *testing.T) {
	fake := &fakeRSVPService{submitErr: services.ErrRSVPSaveFailed}
	app := newRSVPTestApp(fake)

	req := httptest.NewRequest("POST", "/api/rsvp", strings.NewReader(`{"name":"Ali Veli"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("durum kodu %d, beklenen %d", resp.StatusCode, fiber.StatusInternalServerError)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), msgRSVPFailed) {
		t.Errorf("hata mesajı beklenen metni içermiyor: %s", raw)
	}
}

func TestSubmitRSVPInvalidBody(t *testing.T) {
	app := newRSVPTestApp(&fakeRSVPService{})

	req := httptest.NewRequest("POST", "/api/rsvp", strings.NewReader(`{geçersiz json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("istek başarısız: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("durum kodu %d, beklenen %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
