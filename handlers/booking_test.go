package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/utils"
)

type fakeLifecycleService struct {
	bookings map[string]models.Booking
}

func newFakeLifecycleService() *fakeLifecycleService {
	return &fakeLifecycleService{bookings: make(map[string]models.Booking)}
}

func (f *fakeLifecycleService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	b := models.Booking{
		ID:           "b-1",
		RoomNumber:   req.RoomNumber,
		CustomerName: req.CustomerName,
		Status:       models.BookingStatusBooked,
	}
	f.bookings[b.ID] = b
	return &b, nil
}

func (f *fakeLifecycleService) CancelBooking(ctx context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return utils.NewNotFoundError("booking " + id + " not found")
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeLifecycleService) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeLifecycleService) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("booking " + id + " not found")
	}
	return &b, nil
}

func (f *fakeLifecycleService) UpdateBooking(ctx context.Context, id string, req models.BookingRequest) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, utils.NewNotFoundError("booking " + id + " not found")
	}
	b.CustomerName = req.CustomerName
	f.bookings[id] = b
	return &b, nil
}

func (f *fakeLifecycleService) ListHistory(ctx context.Context) ([]models.BookingHistory, error) {
	return []models.BookingHistory{}, nil
}

func (f *fakeLifecycleService) RecordHistory(ctx context.Context, entry models.BookingHistory) (*models.BookingHistory, error) {
	return &entry, nil
}

func (f *fakeLifecycleService) ClearHistory(ctx context.Context) (int64, error) {
	return 0, nil
}

func (f *fakeLifecycleService) GetHistoryByBookingID(ctx context.Context, bookingID string) (*models.BookingHistory, error) {
	return nil, utils.NewNotFoundError("history for booking " + bookingID + " not found")
}

func newBookingTestRouter(svc *fakeLifecycleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.GET("/api/bookings", h.GetBookings)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

func TestGetBookingsEmptyList(t *testing.T) {
	router := newBookingTestRouter(newFakeLifecycleService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool             `json:"success"`
		Data    []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data, "empty list must serialize as [], not null")
	assert.Empty(t, body.Data)
}

func TestCreateBookingReturns201(t *testing.T) {
	svc := newFakeLifecycleService()
	router := newBookingTestRouter(svc)

	payload := `{
		"roomNumber": "101",
		"customerName": "Nimal Perera",
		"nic": "915470231V",
		"email": "nimal@example.com",
		"checkInDate": "2026-09-10T00:00:00Z",
		"checkOutDate": "2026-09-13T00:00:00Z"
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Success bool           `json:"success"`
		Data    models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "101", body.Data.RoomNumber)
	assert.Equal(t, models.BookingStatusBooked, body.Data.Status)
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	router := newBookingTestRouter(newFakeLifecycleService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{"roomNumber":"101"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body, "error")
}

func TestGetBookingNotFoundEnvelope(t *testing.T) {
	router := newBookingTestRouter(newFakeLifecycleService())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body, "message", "not-found responses use the message key")
}

func TestDeleteBookingReturnsMessage(t *testing.T) {
	svc := newFakeLifecycleService()
	router := newBookingTestRouter(svc)

	_, err := svc.CreateBooking(context.Background(), models.BookingRequest{RoomNumber: "101"})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b-1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "booking cancelled", body["message"])
	assert.Empty(t, svc.bookings)
}
