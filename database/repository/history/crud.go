package historyRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomify/models"
)

// Create inserts a history ledger entry and returns its ID.
func (r *mongoHistoryRepo) Create(ctx context.Context, entry models.BookingHistory) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Status == "" {
		entry.Status = models.HistoryStatusBooked
	}
	if entry.BookedDate.IsZero() {
		entry.BookedDate = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetAll returns every ledger entry, newest booking first.
func (r *mongoHistoryRepo) GetAll(ctx context.Context) ([]models.BookingHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "bookedDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.BookingHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoHistoryRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.BookingHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.BookingHistory
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteAll wipes the ledger and returns how many entries were removed.
func (r *mongoHistoryRepo) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
