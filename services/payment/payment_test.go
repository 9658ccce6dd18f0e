package payment

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
	"roomify/utils"
)

type fakeBillRepo struct {
	bills map[string]models.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[string]models.Bill)}
}

func (f *fakeBillRepo) Create(ctx context.Context, bill models.Bill) (string, error) {
	bill.ID = "bill-1"
	f.bills[bill.ID] = bill
	return bill.ID, nil
}

func (f *fakeBillRepo) GetByID(ctx context.Context, id string) (*models.Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &b, nil
}

func (f *fakeBillRepo) GetAll(ctx context.Context) ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range f.bills {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBillRepo) SetStatus(ctx context.Context, id string, status string) (*models.Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	b.Status = status
	f.bills[id] = b
	return &b, nil
}

func (f *fakeBillRepo) SumPaidAmount(ctx context.Context) (float64, error) {
	var sum float64
	for _, b := range f.bills {
		if b.Status == models.BillStatusPaid {
			sum += b.Amount
		}
	}
	return sum, nil
}

type fakeBookingStatusRepo struct {
	statuses map[string]string
}

func (f *fakeBookingStatusRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStatusRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingStatusRepo) Update(ctx context.Context, id string, booking models.Booking) (*models.Booking, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingStatusRepo) SetStatus(ctx context.Context, id string, status string) (*models.Booking, error) {
	if _, ok := f.statuses[id]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	f.statuses[id] = status
	return &models.Booking{ID: id, Status: status}, nil
}

func (f *fakeBookingStatusRepo) HasActiveOverlap(ctx context.Context, roomNumber string, checkIn, checkOut time.Time) (bool, error) {
	return false, nil
}

func (f *fakeBookingStatusRepo) CreateWithHistory(ctx context.Context, booking *models.Booking, history *models.BookingHistory) error {
	return nil
}

func (f *fakeBookingStatusRepo) DeleteWithHistory(ctx context.Context, id string) (*models.Booking, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBookingStatusRepo) CountByRoomType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeBookingStatusRepo) CountByMonth(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeBookingStatusRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

func TestConfirmPaymentSettlesBillAndCompletesBooking(t *testing.T) {
	bills := newFakeBillRepo()
	bookings := &fakeBookingStatusRepo{statuses: map[string]string{"b-1": models.BookingStatusBooked}}
	svc := &DefaultPaymentService{Bills: bills, Bookings: bookings}

	_, err := bills.Create(context.Background(), models.Bill{BookingID: "b-1", Amount: 36000, Status: models.BillStatusPending})
	require.NoError(t, err)

	paid, err := svc.ConfirmPayment(context.Background(), "bill-1")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, paid.Status)
	assert.Equal(t, models.BookingStatusCompleted, bookings.statuses["b-1"])
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	bills := newFakeBillRepo()
	bookings := &fakeBookingStatusRepo{statuses: map[string]string{"b-1": models.BookingStatusBooked}}
	svc := &DefaultPaymentService{Bills: bills, Bookings: bookings}

	_, err := bills.Create(context.Background(), models.Bill{BookingID: "b-1", Amount: 36000, Status: models.BillStatusPending})
	require.NoError(t, err)

	first, err := svc.ConfirmPayment(context.Background(), "bill-1")
	require.NoError(t, err)

	second, err := svc.ConfirmPayment(context.Background(), "bill-1")
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
}

func TestConfirmPaymentUnknownBill(t *testing.T) {
	svc := &DefaultPaymentService{Bills: newFakeBillRepo(), Bookings: &fakeBookingStatusRepo{}}

	_, err := svc.ConfirmPayment(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}

func TestInitiatePaymentUnknownBooking(t *testing.T) {
	svc := &DefaultPaymentService{Bills: newFakeBillRepo(), Bookings: &fakeBookingStatusRepo{}}

	_, _, err := svc.InitiatePayment(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}
