package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/services/payment"
	"roomify/utils"
)

// PaymentHandler exposes billing and payment initiation.
type PaymentHandler struct {
	Svc    payment.PaymentService
	Logger *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// InitiatePayment creates a payment intent and a pending bill for a booking.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	bill, clientSecret, err := h.Svc.InitiatePayment(c.Request.Context(), req.BookingID)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	utils.JSONData(c, http.StatusCreated, gin.H{
		"bill":         bill,
		"clientSecret": clientSecret,
	})
}

// ConfirmPayment settles a bill and completes its booking.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	bill, err := h.Svc.ConfirmPayment(c.Request.Context(), c.Param("billId"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("payment confirmed", zap.String("billId", bill.ID), zap.String("bookingId", bill.BookingID))
	utils.JSONData(c, http.StatusOK, bill)
}

// GetBills lists all bills, newest first.
func (h *PaymentHandler) GetBills(c *gin.Context) {
	bills, err := h.Svc.GetBills(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, bills)
}
