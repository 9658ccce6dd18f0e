package models

import "time"

// Bill statuses.
const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
)

// Bill is generated when payment is initiated for a booking.
type Bill struct {
	ID              string    `bson:"id" json:"id"`
	BookingID       string    `bson:"bookingId" json:"bookingId"`
	CustomerName    string    `bson:"customerName" json:"customerName"`
	Email           string    `bson:"email" json:"email"`
	RoomNumber      string    `bson:"roomNumber" json:"roomNumber"`
	Nights          int       `bson:"nights" json:"nights"`
	Amount          float64   `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	Status          string    `bson:"status" json:"status"`
	IssuedAt        time.Time `bson:"issuedAt" json:"issuedAt"`
}
