package services

import (
	"context"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
)

// DashboardStats admin ana sayfasındaki sayaçlar.
type DashboardStats struct {
	TotalGuests    int64
	TotalRSVPs     int64
	TotalWishes    int64
	AttendingCount int64
	DeclinedCount  int64
}

// RecentActivity admin ana sayfasındaki son hareketler.
type RecentActivity struct {
	RecentRSVPs  []models.RSVP
	RecentWishes []models.Wish
}

// IDashboardService admin özet görünümleri için arayüz.
type IDashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetRecentActivity(ctx context.Context) (*RecentActivity, error)
}

// DashboardService IDashboardService arayüzünü uygular.
type DashboardService struct {
	guestRepo repositories.IGuestRepository
	rsvpRepo  repositories.IRSVPRepository
	wishRepo  repositories.IWishRepository
}

// NewDashboardService yeni bir DashboardService örneği oluşturur.
func NewDashboardService() IDashboardService {
	return &DashboardService{
		guestRepo: repositories.NewGuestRepository(),
		rsvpRepo:  repositories.NewRSVPRepository(),
		wishRepo:  repositories.NewWishRepository(),
	}
}

// GetStats davetli/RSVP/dilek sayaçlarını toplar.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalGuests, err = s.guestRepo.CountAll(ctx); err != nil {
		configslog.Log.Error("GetStats: davetli sayısı alınamadı", zap.Error(err))
		return nil, err
	}
	if stats.TotalRSVPs, err = s.rsvpRepo.CountAll(ctx); err != nil {
		configslog.Log.Error("GetStats: rsvp sayısı alınamadı", zap.Error(err))
		return nil, err
	}
	if stats.TotalWishes, err = s.wishRepo.CountAll(ctx); err != nil {
		configslog.Log.Error("GetStats: dilek sayısı alınamadı", zap.Error(err))
		return nil, err
	}
	if stats.AttendingCount, err = s.rsvpRepo.CountByAttending(ctx, true); err != nil {
		configslog.Log.Error("GetStats: katılan sayısı alınamadı", zap.Error(err))
		return nil, err
	}
	if stats.DeclinedCount, err = s.rsvpRepo.CountByAttending(ctx, false); err != nil {
		configslog.Log.Error("GetStats: katılmayan sayısı alınamadı", zap.Error(err))
		return nil, err
	}

	return stats, nil
}

// GetRecentActivity son 5 RSVP ve son 5 dileği getirir.
func (s *DashboardService) GetRecentActivity(ctx context.Context) (*RecentActivity, error) {
	rsvps, err := s.rsvpRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	wishes, err := s.wishRepo.FindRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &RecentActivity{RecentRSVPs: rsvps, RecentWishes: wishes}, nil
}

// Arayüz uyumluluğu kontrolü
var _ IDashboardService = (*DashboardService)(nil)
