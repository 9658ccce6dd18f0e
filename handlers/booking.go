package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/services/booking"
	"roomify/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc    booking.LifecycleService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.LifecycleService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetBookings lists all bookings.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	bookings, err := h.Svc.GetAllBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, bookings)
}

// CreateBooking creates a booking and its mirrored history entry.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("booking created",
		zap.String("bookingId", created.ID),
		zap.String("roomNumber", created.RoomNumber),
	)
	utils.JSONData(c, http.StatusCreated, created)
}

// GetBooking fetches a single booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, b)
}

// UpdateBooking applies a generic admin edit.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	updated, err := h.Svc.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, updated)
}

// DeleteBooking cancels a booking: the booking row is removed, the history
// entry is marked Cancelled and the room is freed.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.CancelBooking(c.Request.Context(), id); err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("booking cancelled", zap.String("bookingId", id))
	utils.JSONMessage(c, http.StatusOK, "booking cancelled")
}

// GetHistory lists the booking ledger, newest first.
func (h *BookingHandler) GetHistory(c *gin.Context) {
	entries, err := h.Svc.ListHistory(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, entries)
}

// GetHistoryEntry fetches the ledger entry mirroring one booking.
func (h *BookingHandler) GetHistoryEntry(c *gin.Context) {
	entry, err := h.Svc.GetHistoryByBookingID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, entry)
}

// CreateHistory inserts a manual ledger entry.
func (h *BookingHandler) CreateHistory(c *gin.Context) {
	var entry models.BookingHistory
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	created, err := h.Svc.RecordHistory(c.Request.Context(), entry)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusCreated, created)
}

// ClearHistory wipes the entire ledger.
func (h *BookingHandler) ClearHistory(c *gin.Context) {
	count, err := h.Svc.ClearHistory(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Warn("booking history wiped", zap.Int64("deleted", count))
	utils.JSONMessage(c, http.StatusOK, "booking history cleared")
}
