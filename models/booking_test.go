package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b := Booking{CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 3)}
	assert.Equal(t, 3, b.Nights())

	// A stay shorter than a day still bills one night.
	b = Booking{CheckInDate: checkIn, CheckOutDate: checkIn.Add(6 * time.Hour)}
	assert.Equal(t, 1, b.Nights())
}
