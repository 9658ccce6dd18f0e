package booking

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "roomify/database/repository/booking"
	"roomify/models"
	"roomify/utils"
)

// fakeBookingRepo mimics the transactional repository in memory: creating a
// booking stores the mirrored history entry and occupies the room, deleting
// flips the entry to Cancelled and frees the room.
type fakeBookingRepo struct {
	bookings  map[string]models.Booking
	histories map[string]*models.BookingHistory
	rooms     map[string]bool // roomNumber -> available
	overlap   bool
}

func newFakeBookingRepo(roomNumbers ...string) *fakeBookingRepo {
	rooms := make(map[string]bool)
	for _, rn := range roomNumbers {
		rooms[rn] = true
	}
	return &fakeBookingRepo{
		bookings:  make(map[string]models.Booking),
		histories: make(map[string]*models.BookingHistory),
		rooms:     rooms,
	}
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id string, booking models.Booking) (*models.Booking, error) {
	existing, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	existing.CustomerName = booking.CustomerName
	existing.CheckInDate = booking.CheckInDate
	existing.CheckOutDate = booking.CheckOutDate
	f.bookings[id] = existing
	return &existing, nil
}

func (f *fakeBookingRepo) SetStatus(ctx context.Context, id string, status string) (*models.Booking, error) {
	existing, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	existing.Status = status
	f.bookings[id] = existing
	return &existing, nil
}

func (f *fakeBookingRepo) HasActiveOverlap(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	return f.overlap, nil
}

func (f *fakeBookingRepo) CreateWithHistory(ctx context.Context, booking *models.Booking, history *models.BookingHistory) error {
	if f.overlap {
		return bookingRepo.ErrOverlap
	}
	if _, ok := f.rooms[booking.RoomNumber]; !ok {
		return mongo.ErrNoDocuments
	}
	f.bookings[booking.ID] = *booking
	f.histories[history.BookingID] = history
	f.rooms[booking.RoomNumber] = false
	return nil
}

func (f *fakeBookingRepo) DeleteWithHistory(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.bookings, id)
	if h, ok := f.histories[id]; ok {
		h.Status = models.HistoryStatusCancelled
	}
	f.rooms[b.RoomNumber] = true
	return &b, nil
}

func (f *fakeBookingRepo) CountByRoomType(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, b := range f.bookings {
		out[b.RoomType]++
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByMonth(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, b := range f.bookings {
		out[b.CreatedAt.Format("2006-01")]++
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

type fakeNotifier struct {
	confirmed []string
	cancelled []string
}

func (f *fakeNotifier) BookingConfirmed(ctx context.Context, b models.Booking) error {
	f.confirmed = append(f.confirmed, b.ID)
	return nil
}

func (f *fakeNotifier) BookingCancelled(ctx context.Context, b models.Booking) error {
	f.cancelled = append(f.cancelled, b.ID)
	return nil
}

func validRequest() models.BookingRequest {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return models.BookingRequest{
		RoomNumber:   "101",
		RoomType:     "Deluxe",
		Price:        12000,
		CustomerName: "Nimal Perera",
		NIC:          "915470231V",
		Email:        "nimal@example.com",
		Phone:        "0771234567",
		Gender:       "Male",
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 3),
	}
}

func TestCreateBookingMirrorsHistoryAndOccupiesRoom(t *testing.T) {
	repo := newFakeBookingRepo("101")
	notifier := &fakeNotifier{}
	svc := &DefaultLifecycleService{Repo: repo, Notifier: notifier}

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusBooked, created.Status)

	entry, ok := repo.histories[created.ID]
	require.True(t, ok, "history entry should be keyed by the booking id")
	assert.Equal(t, created.ID, entry.BookingID)
	assert.Equal(t, models.HistoryStatusBooked, entry.Status)
	assert.Equal(t, created.RoomNumber, entry.RoomNumber)
	assert.False(t, entry.BookedDate.IsZero())

	assert.False(t, repo.rooms["101"], "room should be occupied after booking")
	assert.Equal(t, []string{created.ID}, notifier.confirmed)
}

func TestCreateBookingOverlapIsConflict(t *testing.T) {
	repo := newFakeBookingRepo("101")
	repo.overlap = true
	svc := &DefaultLifecycleService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, utils.HTTPStatus(err))
	assert.Empty(t, repo.bookings)
	assert.Empty(t, repo.histories)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	svc := &DefaultLifecycleService{Repo: newFakeBookingRepo("202")}

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}

func TestCreateBookingValidation(t *testing.T) {
	svc := &DefaultLifecycleService{Repo: newFakeBookingRepo("101")}

	cases := []struct {
		name   string
		mutate func(r *models.BookingRequest)
	}{
		{"missing room number", func(r *models.BookingRequest) { r.RoomNumber = "" }},
		{"missing customer name", func(r *models.BookingRequest) { r.CustomerName = "" }},
		{"missing nic", func(r *models.BookingRequest) { r.NIC = "" }},
		{"missing email", func(r *models.BookingRequest) { r.Email = "" }},
		{"zero dates", func(r *models.BookingRequest) { r.CheckInDate, r.CheckOutDate = time.Time{}, time.Time{} }},
		{"check-out before check-in", func(r *models.BookingRequest) {
			r.CheckOutDate = r.CheckInDate.AddDate(0, 0, -1)
		}},
		{"check-out equals check-in", func(r *models.BookingRequest) { r.CheckOutDate = r.CheckInDate }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.CreateBooking(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))
		})
	}
}

func TestCancelBookingFlipsHistoryAndFreesRoom(t *testing.T) {
	repo := newFakeBookingRepo("101")
	notifier := &fakeNotifier{}
	svc := &DefaultLifecycleService{Repo: repo, Notifier: notifier}

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), created.ID))

	assert.Empty(t, repo.bookings, "booking row should be removed")
	assert.Equal(t, models.HistoryStatusCancelled, repo.histories[created.ID].Status)
	assert.True(t, repo.rooms["101"], "room should be freed after cancellation")
	assert.Equal(t, []string{created.ID}, notifier.cancelled)
}

func TestCancelMissingBookingLeavesHistoryUntouched(t *testing.T) {
	repo := newFakeBookingRepo("101")
	svc := &DefaultLifecycleService{Repo: repo}

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.CancelBooking(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
	assert.Equal(t, models.HistoryStatusBooked, repo.histories[created.ID].Status)
	assert.Len(t, repo.bookings, 1)
}

func TestGetAllBookingsReturnsEmptySlice(t *testing.T) {
	svc := &DefaultLifecycleService{Repo: newFakeBookingRepo()}

	bookings, err := svc.GetAllBookings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	svc := &DefaultLifecycleService{Repo: newFakeBookingRepo()}

	_, err := svc.GetBookingByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}

func TestUpdateBookingRejectsBadDates(t *testing.T) {
	repo := newFakeBookingRepo("101")
	svc := &DefaultLifecycleService{Repo: repo}

	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CheckOutDate = req.CheckInDate
	_, err = svc.UpdateBooking(context.Background(), created.ID, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, utils.HTTPStatus(err))
}
