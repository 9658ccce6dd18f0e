package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roomify/config"
	billRepo "roomify/database/repository/bill"
	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
	"roomify/utils"
)

// PaymentService initiates payment for a booking and settles the bill.
type PaymentService interface {
	InitiatePayment(ctx context.Context, bookingID string) (*models.Bill, string, error)
	ConfirmPayment(ctx context.Context, billID string) (*models.Bill, error)
	GetBills(ctx context.Context) ([]models.Bill, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Bills    billRepo.BillRepository
	Bookings bookingRepo.BookingRepository
}

// InitiatePayment creates a Stripe PaymentIntent covering the stay and
// stores a pending bill. The client secret is returned for the frontend to
// complete the payment.
func (s *DefaultPaymentService) InitiatePayment(ctx context.Context, bookingID string) (*models.Bill, string, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", utils.NewNotFoundError("booking " + bookingID + " not found")
		}
		return nil, "", err
	}

	nights := booking.Nights()
	amount := float64(nights) * booking.Price
	currency := config.AppConfig.Currency

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", booking.ID)
	params.AddMetadata("roomNumber", booking.RoomNumber)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, "", err
	}

	bill := models.Bill{
		BookingID:       booking.ID,
		CustomerName:    booking.CustomerName,
		Email:           booking.Email,
		RoomNumber:      booking.RoomNumber,
		Nights:          nights,
		Amount:          amount,
		Currency:        currency,
		PaymentIntentID: intent.ID,
		Status:          models.BillStatusPending,
	}
	id, err := s.Bills.Create(ctx, bill)
	if err != nil {
		return nil, "", err
	}
	bill.ID = id

	utils.GetLogger().Info("payment initiated",
		zap.String("billId", bill.ID),
		zap.String("bookingId", booking.ID),
		zap.Float64("amount", amount),
	)
	return &bill, intent.ClientSecret, nil
}

// ConfirmPayment settles the bill and moves the booking to Completed. The
// booking row is kept so history and reporting stay consistent.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.Bills.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("bill " + billID + " not found")
		}
		return nil, err
	}
	if bill.Status == models.BillStatusPaid {
		return bill, nil
	}

	paid, err := s.Bills.SetStatus(ctx, billID, models.BillStatusPaid)
	if err != nil {
		return nil, err
	}

	if _, err := s.Bookings.SetStatus(ctx, bill.BookingID, models.BookingStatusCompleted); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	return paid, nil
}

func (s *DefaultPaymentService) GetBills(ctx context.Context) ([]models.Bill, error) {
	bills, err := s.Bills.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	return bills, nil
}
