package models

import "time"

// Booking statuses.
const (
	BookingStatusBooked    = "Booked"
	BookingStatusCheckedIn = "Checked-in"
	BookingStatusCompleted = "Completed"
)

// Booking represents an active guest reservation for a room and date range.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	RoomNumber   string    `bson:"roomNumber" json:"roomNumber"`
	RoomType     string    `bson:"roomType" json:"roomType"`
	Price        float64   `bson:"price" json:"price"`
	Image        string    `bson:"image" json:"image"`
	CustomerName string    `bson:"customerName" json:"customerName"`
	NIC          string    `bson:"nic" json:"nic"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Gender       string    `bson:"gender" json:"gender"`
	CheckInDate  time.Time `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time `bson:"checkOutDate" json:"checkOutDate"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Nights returns the stay length in whole nights.
func (b Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// BookingRequest is the guest-facing input for creating or editing a booking.
type BookingRequest struct {
	RoomNumber   string    `json:"roomNumber" binding:"required"`
	RoomType     string    `json:"roomType"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	CustomerName string    `json:"customerName" binding:"required"`
	NIC          string    `json:"nic" binding:"required"`
	Email        string    `json:"email" binding:"required"`
	Phone        string    `json:"phone"`
	Gender       string    `json:"gender"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required"`
}
