package booking

import (
	"context"

	bookingRepo "roomify/database/repository/booking"
	historyRepo "roomify/database/repository/history"
	"roomify/models"
	"roomify/services/notification"
)

// LifecycleService coordinates the booking store, the history ledger and the
// room availability flag so every creation and cancellation is reflected in
// all three.
type LifecycleService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error)

	ListHistory(ctx context.Context) ([]models.BookingHistory, error)
	RecordHistory(ctx context.Context, entry models.BookingHistory) (*models.BookingHistory, error)
	ClearHistory(ctx context.Context) (int64, error)
	GetHistoryByBookingID(ctx context.Context, bookingID string) (*models.BookingHistory, error)
}

// DefaultLifecycleService is the production implementation.
type DefaultLifecycleService struct {
	Repo     bookingRepo.BookingRepository
	History  historyRepo.HistoryRepository
	Notifier notification.Notifier
}
