// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roomify/models"
)

// ensureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index backs the overlap check: at most one active
// booking per room per check-in date even if two writers race.
func (r *mongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "roomNumber", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("room_status_idx"),
		},
		{
			Keys: bson.D{{Key: "roomNumber", Value: 1}, {Key: "checkInDate", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_room_checkin").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{models.BookingStatusBooked, models.BookingStatusCheckedIn}},
				}),
		},
	}

	if _, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	historyModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetName("booking_id_idx"),
		},
		{
			Keys:    bson.D{{Key: "bookedDate", Value: -1}},
			Options: options.Index().SetName("booked_date_idx"),
		},
	}
	if _, err := r.historyColl.Indexes().CreateMany(ctx, historyModels); err != nil {
		return fmt.Errorf("failed to create booking history indexes: %w", err)
	}
	return nil
}
