package booking

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
	"roomify/utils"
)

// ListHistory returns the full ledger, newest booking first.
func (s *DefaultLifecycleService) ListHistory(ctx context.Context) ([]models.BookingHistory, error) {
	entries, err := s.History.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.BookingHistory{}
	}
	return entries, nil
}

// RecordHistory inserts a manual ledger entry outside the booking flow.
func (s *DefaultLifecycleService) RecordHistory(ctx context.Context, entry models.BookingHistory) (*models.BookingHistory, error) {
	if entry.RoomNumber == "" || entry.NIC == "" {
		return nil, utils.NewValidationError("roomNumber and nic are required")
	}
	if entry.Status == "" {
		entry.Status = models.HistoryStatusBooked
	}
	if entry.BookedDate.IsZero() {
		entry.BookedDate = time.Now()
	}

	id, err := s.History.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

// ClearHistory wipes the entire ledger. Destructive and irreversible; the
// route gate is the only confirmation.
func (s *DefaultLifecycleService) ClearHistory(ctx context.Context) (int64, error) {
	return s.History.DeleteAll(ctx)
}

// GetHistoryByBookingID fetches the ledger entry mirroring a booking.
func (s *DefaultLifecycleService) GetHistoryByBookingID(ctx context.Context, bookingID string) (*models.BookingHistory, error) {
	entry, err := s.History.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("history for booking " + bookingID + " not found")
		}
		return nil, err
	}
	return entry, nil
}
