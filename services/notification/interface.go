package notification

import (
	"context"

	"roomify/models"
)

// Notifier dispatches guest-facing booking notifications. Delivery is
// asynchronous; a returned error means the message could not be queued.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking models.Booking) error
	BookingCancelled(ctx context.Context, booking models.Booking) error
}

// EmailSender delivers a single email. The SMTP gateway is an external
// collaborator; the default implementation only logs the message.
type EmailSender interface {
	Send(ctx context.Context, payload models.EmailPayload) error
}
