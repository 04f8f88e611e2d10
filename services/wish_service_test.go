package services

import (
	"context"
	"errors"
	"testing"

	"dugun.link/models"
	"dugun.link/repositories"
)

// fakeWishRepo IWishRepository'nin bellek içi sahtesi.
type fakeWishRepo struct {
	wishes    []models.Wish
	created   *models.Wish
	updates   map[string]interface{}
	updateErr error
	createErr error
}

func (f *fakeWishRepo) Create(ctx context.Context, wish *models.Wish) error {
	if f.createErr != nil {
		return f.createErr
	}
	wish.ID = uint(len(f.wishes) + 1)
	f.created = wish
	f.wishes = append(f.wishes, *wish)
	return nil
}

func (f *fakeWishRepo) FindByID(ctx context.Context, id uint) (*models.Wish, error) {
	for i := range f.wishes {
		if f.wishes[i].ID == id {
			return &f.wishes[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeWishRepo) FindApproved(ctx context.Context) ([]models.Wish, error) {
	var approved []models.Wish
	for _, w := range f.wishes {
		if w.IsApproved {
			approved = append(approved, w)
		}
	}
	return approved, nil
}

func (f *fakeWishRepo) FindAllFiltered(ctx context.Context, filter string) ([]models.Wish, error) {
	switch filter {
	case repositories.WishFilterPending:
		var pending []models.Wish
		for _, w := range f.wishes {
			if !w.IsApproved {
				pending = append(pending, w)
			}
		}
		return pending, nil
	case repositories.WishFilterApproved:
		return f.FindApproved(ctx)
	default:
		return f.wishes, nil
	}
}

func (f *fakeWishRepo) FindRecent(ctx context.Context, limit int) ([]models.Wish, error) {
	if len(f.wishes) > limit {
		return f.wishes[:limit], nil
	}
	return f.wishes, nil
}

func (f *fakeWishRepo) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = data
	return nil
}

func (f *fakeWishRepo) Delete(ctx context.Context, wish *models.Wish) error {
	for _, w := range f.wishes {
		if w.ID == wish.ID {
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeWishRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.wishes)), nil
}

func TestSubmitWishAutoApprove(t *testing.T) {
	repo := &fakeWishRepo{}
	svc := &WishService{repo: repo, autoApprove: true}

	wish, err := svc.SubmitWish(context.Background(), "  Ali Veli  ", "  Mutluluklar dileriz!  ")
	if err != nil {
		t.Fatalf("SubmitWish hata döndü: %v", err)
	}
	if wish.GuestName != "Ali Veli" || wish.Message != "Mutluluklar dileriz!" {
		t.Errorf("alanlar trim edilmemiş: %q / %q", wish.GuestName, wish.Message)
	}
	if !wish.IsApproved {
		t.Error("autoApprove açıkken dilek onaysız kaydedildi")
	}
}

func TestSubmitWishModerationQueue(t *testing.T) {
	repo := &fakeWishRepo{}
	svc := &WishService{repo: repo, autoApprove: false}

	wish, err := svc.SubmitWish(context.Background(), "Ayşe", "Nice yıllara")
	if err != nil {
		t.Fatalf("SubmitWish hata döndü: %v", err)
	}
	if wish.IsApproved {
		t.Error("autoApprove kapalıyken dilek onaylı kaydedildi")
	}
}

func TestSubmitWishFieldsRequired(t *testing.T) {
	svc := &WishService{repo: &fakeWishRepo{}, autoApprove: true}

	cases := []struct{ name, message string }{
		{"", "mesaj var"},
		{"isim var", ""},
		{"   ", "   "},
	}
	for _, c := range cases {
		if _, err := svc.SubmitWish(context.Background(), c.name, c.message); !errors.Is(err, ErrWishFieldsRequired) {
			t.Errorf("SubmitWish(%q, %q): beklenen ErrWishFieldsRequired, gelen: %v", c.name, c.message, err)
		}
	}
}

func TestGetApprovedWishesFiltersPending(t *testing.T) {
	repo := &fakeWishRepo{wishes: []models.Wish{
		{BaseModel: models.BaseModel{ID: 1}, GuestName: "Ali", Message: "a", IsApproved: true},
		{BaseModel: models.BaseModel{ID: 2}, GuestName: "Ayşe", Message: "b", IsApproved: false},
	}}
	svc := &WishService{repo: repo, autoApprove: true}

	wishes, err := svc.GetApprovedWishes(context.Background())
	if err != nil {
		t.Fatalf("GetApprovedWishes hata döndü: %v", err)
	}
	if len(wishes) != 1 || wishes[0].ID != 1 {
		t.Errorf("sadece onaylı dilekler dönmeliydi, gelen: %+v", wishes)
	}
}

func TestApproveWishSetsFlag(t *testing.T) {
	repo := &fakeWishRepo{wishes: []models.Wish{
		{BaseModel: models.BaseModel{ID: 1}, GuestName: "Ali", Message: "a"},
	}}
	svc := &WishService{repo: repo, autoApprove: false}

	if err := svc.ApproveWish(context.Background(), 1); err != nil {
		t.Fatalf("ApproveWish hata döndü: %v", err)
	}
	if approved, ok := repo.updates["is_approved"].(bool); !ok || !approved {
		t.Errorf("is_approved=true güncellemesi yapılmadı: %+v", repo.updates)
	}

	if err := svc.UnapproveWish(context.Background(), 1); err != nil {
		t.Fatalf("UnapproveWish hata döndü: %v", err)
	}
	if approved, ok := repo.updates["is_approved"].(bool); !ok || approved {
		t.Errorf("is_approved=false güncellemesi yapılmadı: %+v", repo.updates)
	}
}

func TestApproveWishNotFound(t *testing.T) {
	repo := &fakeWishRepo{updateErr: repositories.ErrNotFound}
	svc := &WishService{repo: repo, autoApprove: false}

	if err := svc.ApproveWish(context.Background(), 99); !errors.Is(err, ErrWishNotFound) {
		t.Fatalf("beklenen ErrWishNotFound, gelen: %v", err)
	}
}

func TestUpdateWishMessage(t *testing.T) {
	repo := &fakeWishRepo{wishes: []models.Wish{
		{BaseModel: models.BaseModel{ID: 1}, GuestName: "Ali", Message: "eski"},
	}}
	svc := &WishService{repo: repo, autoApprove: false}

	if err := svc.UpdateWishMessage(context.Background(), 1, "  yeni mesaj  "); err != nil {
		t.Fatalf("UpdateWishMessage hata döndü: %v", err)
	}
	if msg, _ := repo.updates["message"].(string); msg != "yeni mesaj" {
		t.Errorf("message = %q, beklenen %q", msg, "yeni mesaj")
	}

	if err := svc.UpdateWishMessage(context.Background(), 1, "   "); !errors.Is(err, ErrWishFieldsRequired) {
		t.Fatalf("boş mesaj için beklenen ErrWishFieldsRequired, gelen: %v", err)
	}
}

func TestDeleteWishNotFound(t *testing.T) {
	svc := &WishService{repo: &fakeWishRepo{}, autoApprove: false}

	if err := svc.DeleteWish(context.Background(), 42); !errors.Is(err, ErrWishNotFound) {
		t.Fatalf("beklenen ErrWishNotFound, gelen: %v", err)
	}
	if err := svc.DeleteWish(context.Background(), 0); !errors.Is(err, ErrWishNotFound) {
		t.Fatalf("id=0 için beklenen ErrWishNotFound, gelen: %v", err)
	}
}
