package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	billRepo "roomify/database/repository/bill"
	bookingRepo "roomify/database/repository/booking"
	roomRepo "roomify/database/repository/room"
	"roomify/utils"
)

const (
	summaryCacheKey = "report:summary"
	summaryCacheTTL = 60 * time.Second
)

// Summary is the admin dashboard snapshot.
type Summary struct {
	TotalRooms         int64            `json:"totalRooms"`
	OccupiedRooms      int64            `json:"occupiedRooms"`
	OccupancyPercent   float64          `json:"occupancyPercent"`
	ActiveBookings     int64            `json:"activeBookings"`
	BookingsByRoomType map[string]int64 `json:"bookingsByRoomType"`
	BookingsByMonth    map[string]int64 `json:"bookingsByMonth"`
	Revenue            float64          `json:"revenue"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}

// ReportService produces aggregate occupancy and revenue figures.
type ReportService interface {
	GetSummary(ctx context.Context) (*Summary, error)
}

// DefaultReportService computes summaries from the stores, with a short
// Redis cache in front since the dashboard polls.
type DefaultReportService struct {
	Rooms    roomRepo.RoomRepository
	Bookings bookingRepo.BookingRepository
	Bills    billRepo.BillRepository
	Cache    *redis.Client
}

func (s *DefaultReportService) GetSummary(ctx context.Context) (*Summary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	totalRooms, err := s.Rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := s.Rooms.CountOccupied(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.Bookings.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.Bookings.CountByRoomType(ctx)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.Bookings.CountByMonth(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Bills.SumPaidAmount(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalRooms:         totalRooms,
		OccupiedRooms:      occupied,
		OccupancyPercent:   Occupancy(totalRooms, occupied),
		ActiveBookings:     active,
		BookingsByRoomType: byType,
		BookingsByMonth:    byMonth,
		Revenue:            revenue,
		GeneratedAt:        time.Now(),
	}
	s.toCache(ctx, summary)
	return summary, nil
}

// Occupancy computes the occupied percentage, rounded to two decimals.
func Occupancy(total, occupied int64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(occupied) / float64(total) * 100
	return float64(int(pct*100+0.5)) / 100
}

func (s *DefaultReportService) fromCache(ctx context.Context) *Summary {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, summaryCacheKey).Result()
	if err != nil {
		return nil
	}
	var summary Summary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *DefaultReportService) toCache(ctx context.Context, summary *Summary) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, summaryCacheKey, data, summaryCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache report summary", zap.Error(err))
	}
}
