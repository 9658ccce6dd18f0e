package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Room    *RoomHandler
	Staff   *StaffHandler
	Report  *ReportHandler
	Payment *PaymentHandler
	Storage *StorageHandler
}
