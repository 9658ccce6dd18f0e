package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
	"roomify/utils"
)

// CreateBooking persists a booking and its mirrored history entry and
// occupies the room, as a single atomic write. The guest is notified
// asynchronously; a queue failure does not fail the booking.
func (s *DefaultLifecycleService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:           uuid.New().String(),
		RoomNumber:   req.RoomNumber,
		RoomType:     req.RoomType,
		Price:        req.Price,
		Image:        req.Image,
		CustomerName: req.CustomerName,
		NIC:          req.NIC,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Status:       models.BookingStatusBooked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	history := mirrorToHistory(booking, now)

	if err := s.Repo.CreateWithHistory(ctx, booking, history); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrOverlap):
			return nil, utils.NewConflictError("room " + req.RoomNumber + " is already booked for the requested dates")
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, utils.NewNotFoundError("room " + req.RoomNumber + " not found")
		default:
			return nil, err
		}
	}

	if s.Notifier != nil {
		if err := s.Notifier.BookingConfirmed(ctx, *booking); err != nil {
			utils.GetLogger().Warn("failed to queue booking confirmation email",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}

// CancelBooking removes the booking, flips its history entry to "Cancelled"
// and frees the room atomically.
func (s *DefaultLifecycleService) CancelBooking(ctx context.Context, id string) error {
	deleted, err := s.Repo.DeleteWithHistory(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("booking " + id + " not found")
		}
		return err
	}

	if s.Notifier != nil {
		if err := s.Notifier.BookingCancelled(ctx, *deleted); err != nil {
			utils.GetLogger().Warn("failed to queue booking cancellation email",
				zap.String("bookingId", id), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultLifecycleService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *DefaultLifecycleService) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("booking " + id + " not found")
		}
		return nil, err
	}
	return booking, nil
}

// UpdateBooking applies a generic admin edit to the guest fields.
func (s *DefaultLifecycleService) UpdateBooking(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error) {
	if err := validateDates(req.CheckInDate, req.CheckOutDate); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Update(ctx, id, models.Booking{
		CustomerName: req.CustomerName,
		NIC:          req.NIC,
		Email:        req.Email,
		Phone:        req.Phone,
		Gender:       req.Gender,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("booking " + id + " not found")
		}
		return nil, err
	}
	return updated, nil
}

func mirrorToHistory(b *models.Booking, bookedDate time.Time) *models.BookingHistory {
	return &models.BookingHistory{
		ID:           uuid.New().String(),
		BookingID:    b.ID,
		RoomNumber:   b.RoomNumber,
		RoomType:     b.RoomType,
		Price:        b.Price,
		CustomerName: b.CustomerName,
		NIC:          b.NIC,
		Email:        b.Email,
		Phone:        b.Phone,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Status:       models.HistoryStatusBooked,
		BookedDate:   bookedDate,
	}
}

func validateRequest(req models.BookingRequest) error {
	if req.RoomNumber == "" {
		return utils.NewValidationError("roomNumber is required")
	}
	if req.CustomerName == "" {
		return utils.NewValidationError("customerName is required")
	}
	if req.NIC == "" {
		return utils.NewValidationError("nic is required")
	}
	if req.Email == "" {
		return utils.NewValidationError("email is required")
	}
	return validateDates(req.CheckInDate, req.CheckOutDate)
}

func validateDates(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return utils.NewValidationError("checkInDate and checkOutDate are required")
	}
	if !checkOut.After(checkIn) {
		return utils.NewValidationError("checkOutDate must be after checkInDate")
	}
	return nil
}
