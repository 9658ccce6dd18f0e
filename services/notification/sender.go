package notification

import (
	"context"

	"roomify/models"
	"roomify/utils"

	"go.uber.org/zap"
)

// LogEmailSender writes outgoing emails to the log instead of an SMTP
// gateway. Used until a real mail provider is wired in deployment.
type LogEmailSender struct{}

func (LogEmailSender) Send(ctx context.Context, payload models.EmailPayload) error {
	utils.GetLogger().Info("sending email",
		zap.String("to", payload.To),
		zap.String("subject", payload.Subject),
		zap.String("bookingId", payload.BookingID),
	)
	return nil
}
