package models

import "time"

// History statuses. Status is free-text; these are the values the
// lifecycle writes.
const (
	HistoryStatusBooked    = "Booked"
	HistoryStatusCancelled = "Cancelled"
)

// BookingHistory is a durable ledger entry mirroring a booking's data plus
// its terminal status. It is retained after the booking itself is removed.
// BookingID carries the mirrored booking's generated ID so cancellation can
// match the exact row even when a guest rebooks the same room.
type BookingHistory struct {
	ID           string    `bson:"id" json:"id"`
	BookingID    string    `bson:"bookingId" json:"bookingId"`
	RoomNumber   string    `bson:"roomNumber" json:"roomNumber"`
	RoomType     string    `bson:"roomType" json:"roomType"`
	Price        float64   `bson:"price" json:"price"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	NIC          string    `bson:"nic" json:"nic"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	CheckInDate  time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate" json:"checkOutDate"`
	Status       string    `bson:"status" json:"status"`
	BookedDate   time.Time `bson:"bookedDate" json:"bookedDate"`
}
