package bookingRepo

import (
	"context"
	"time"

	"roomify/database"
	"roomify/models"
	"roomify/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository covers booking reads plus the coordinated multi-document
// writes of the lifecycle: creating a booking always mirrors it into the
// history ledger and occupies the room, cancelling reverses both, all inside
// a single MongoDB transaction.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, booking models.Booking) (*models.Booking, error)
	SetStatus(ctx context.Context, id string, status string) (*models.Booking, error)
	HasActiveOverlap(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error)
	CreateWithHistory(ctx context.Context, booking *models.Booking, history *models.BookingHistory) error
	DeleteWithHistory(ctx context.Context, id string) (*models.Booking, error)
	CountByRoomType(ctx context.Context) (map[string]int64, error)
	CountByMonth(ctx context.Context) (map[string]int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type mongoBookingRepo struct {
	bookingColl *mongo.Collection
	historyColl *mongo.Collection
	roomColl    *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &mongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		historyColl: db.Collection("booking_history"),
		roomColl:    db.Collection("rooms"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("booking repo: %v", err)
	}
	return repo
}
