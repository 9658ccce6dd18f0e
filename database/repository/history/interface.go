package historyRepo

import (
	"context"

	"roomify/database"
	"roomify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type HistoryRepository interface {
	Create(ctx context.Context, entry models.BookingHistory) (string, error)
	GetAll(ctx context.Context) ([]models.BookingHistory, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.BookingHistory, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type mongoHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoHistoryRepo constructs a new MongoDB HistoryRepository.
func NewMongoHistoryRepo() HistoryRepository {
	return &mongoHistoryRepo{
		coll: database.DB().Collection("booking_history"),
	}
}
