package models

// EmailPayload is the task payload carried through the notification queue.
type EmailPayload struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	BookingID  string `json:"bookingId"`
	RoomNumber string `json:"roomNumber"`
}
