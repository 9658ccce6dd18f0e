// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
)

// ErrOverlap is returned when an active booking already occupies the room
// for an overlapping date range.
var ErrOverlap = errors.New("room already booked for an overlapping date range")

// CreateWithHistory inserts the booking, mirrors it into the history ledger
// and occupies the room, all in one transaction. A failure at any step
// aborts the whole write, so no orphaned booking or history row can remain.
func (r *mongoBookingRepo) CreateWithHistory(ctx context.Context, booking *models.Booking, history *models.BookingHistory) error {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.bookingColl.CountDocuments(sc, overlapFilter(booking.RoomNumber, booking.CheckInDate, booking.CheckOutDate))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}

		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if _, err := r.historyColl.InsertOne(sc, history); err != nil {
			return fmt.Errorf("insert booking history failed: %w", err)
		}

		update := bson.M{"$set": bson.M{"availability": false, "updatedAt": time.Now()}}
		res, err := r.roomColl.UpdateOne(sc, bson.M{"roomNumber": booking.RoomNumber}, update)
		if err != nil {
			return fmt.Errorf("occupy room failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	}

	return runInTransaction(ctx, sess, txnFn)
}

// DeleteWithHistory removes the booking, marks its mirrored history row
// "Cancelled" (matched by the booking's own ID) and frees the room, in one
// transaction. The deleted booking is returned for the caller's use.
func (r *mongoBookingRepo) DeleteWithHistory(ctx context.Context, id string) (*models.Booking, error) {
	client := r.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var deleted models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		if err := r.bookingColl.FindOneAndDelete(sc, bson.M{"id": id}).Decode(&deleted); err != nil {
			return err
		}

		histUpdate := bson.M{"$set": bson.M{"status": models.HistoryStatusCancelled}}
		if _, err := r.historyColl.UpdateOne(sc, bson.M{"bookingId": id}, histUpdate); err != nil {
			return fmt.Errorf("cancel booking history failed: %w", err)
		}

		// The room may have been removed independently of the booking flow,
		// so a miss here is not an error.
		roomUpdate := bson.M{"$set": bson.M{"availability": true, "updatedAt": time.Now()}}
		if _, err := r.roomColl.UpdateOne(sc, bson.M{"roomNumber": deleted.RoomNumber}, roomUpdate); err != nil {
			return fmt.Errorf("free room failed: %w", err)
		}
		return nil
	}

	if err := runInTransaction(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func runInTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
