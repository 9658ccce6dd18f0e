package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"roomify/config"
	"roomify/models"

	"github.com/hibiken/asynq"
)

// Task types handled by the email worker.
const (
	TypeBookingConfirmed = "email:booking_confirmed"
	TypeBookingCancelled = "email:booking_cancelled"
)

// AsynqNotifier queues booking emails onto the Redis-backed task queue.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier creates a notifier backed by the configured Redis queue.
func NewAsynqNotifier() *AsynqNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) BookingConfirmed(ctx context.Context, booking models.Booking) error {
	payload := models.EmailPayload{
		To:         booking.Email,
		Subject:    fmt.Sprintf("Booking confirmed for room %s", booking.RoomNumber),
		Body:       fmt.Sprintf("Dear %s, your booking for room %s from %s to %s is confirmed.", booking.CustomerName, booking.RoomNumber, booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02")),
		BookingID:  booking.ID,
		RoomNumber: booking.RoomNumber,
	}
	return n.enqueue(ctx, TypeBookingConfirmed, payload)
}

func (n *AsynqNotifier) BookingCancelled(ctx context.Context, booking models.Booking) error {
	payload := models.EmailPayload{
		To:         booking.Email,
		Subject:    fmt.Sprintf("Booking cancelled for room %s", booking.RoomNumber),
		Body:       fmt.Sprintf("Dear %s, your booking for room %s has been cancelled.", booking.CustomerName, booking.RoomNumber),
		BookingID:  booking.ID,
		RoomNumber: booking.RoomNumber,
	}
	return n.enqueue(ctx, TypeBookingCancelled, payload)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, taskType string, payload models.EmailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}
	if _, err := n.client.EnqueueContext(ctx, asynq.NewTask(taskType, data)); err != nil {
		return fmt.Errorf("enqueue %s task: %w", taskType, err)
	}
	return nil
}

// Close releases the underlying queue client.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}
