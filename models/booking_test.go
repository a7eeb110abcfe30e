package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBooking_NumberOfNights(t *testing.T) {
	b := Booking{
		CheckInDate:  day("2025-12-01"),
		CheckOutDate: day("2025-12-05"),
	}
	assert.Equal(t, 4, b.NumberOfNights())
}

func TestBooking_Confirm(t *testing.T) {
	b := Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}

	err := b.Confirm(200, "Card")

	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, "Card", b.PaymentMethod)
	require.NotNil(t, b.PaidAmount)
	assert.Equal(t, 200.0, *b.PaidAmount)
}

func TestBooking_Confirm_OnlyFromPending(t *testing.T) {
	for _, status := range []string{BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCheckedOut} {
		t.Run(status, func(t *testing.T) {
			b := Booking{Status: status}

			err := b.Confirm(200, "Card")

			assert.ErrorIs(t, err, ErrBookingNotPending)
			assert.Equal(t, status, b.Status, "status must not change on rejection")
			assert.Nil(t, b.PaidAmount)
		})
	}
}

func TestBooking_CheckIn(t *testing.T) {
	today := day("2025-12-01")

	tests := []struct {
		name        string
		status      string
		checkInDate time.Time
		wantErr     error
		wantStatus  string
	}{
		{
			name:        "confirmed booking on check-in day",
			status:      BookingStatusConfirmed,
			checkInDate: day("2025-12-01"),
			wantStatus:  BookingStatusCheckedIn,
		},
		{
			name:        "confirmed booking past check-in day",
			status:      BookingStatusConfirmed,
			checkInDate: day("2025-11-28"),
			wantStatus:  BookingStatusCheckedIn,
		},
		{
			name:        "future check-in date rejected",
			status:      BookingStatusConfirmed,
			checkInDate: day("2099-01-01"),
			wantErr:     ErrCheckInTooEarly,
			wantStatus:  BookingStatusConfirmed,
		},
		{
			name:        "pending booking rejected",
			status:      BookingStatusPending,
			checkInDate: day("2025-12-01"),
			wantErr:     ErrBookingNotConfirmed,
			wantStatus:  BookingStatusPending,
		},
		{
			name:        "already checked in rejected",
			status:      BookingStatusCheckedIn,
			checkInDate: day("2025-12-01"),
			wantErr:     ErrBookingNotConfirmed,
			wantStatus:  BookingStatusCheckedIn,
		},
		{
			name:        "checked out rejected",
			status:      BookingStatusCheckedOut,
			checkInDate: day("2025-11-28"),
			wantErr:     ErrBookingNotConfirmed,
			wantStatus:  BookingStatusCheckedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.status, CheckInDate: tt.checkInDate}

			err := b.CheckIn(today)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, b.Status)
		})
	}
}

func TestBooking_CheckIn_IgnoresTimeOfDay(t *testing.T) {
	// A late-evening "now" still counts as the check-in day.
	b := Booking{Status: BookingStatusConfirmed, CheckInDate: day("2025-12-01")}

	err := b.CheckIn(time.Date(2025, 12, 1, 23, 45, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedIn, b.Status)
}

func TestBooking_CheckIn_UsesCalendarDates(t *testing.T) {
	east := time.FixedZone("UTC+13", 13*60*60)
	west := time.FixedZone("UTC-5", -5*60*60)

	// Local calendar already reads Dec 1 even though UTC is still Nov 30.
	b := Booking{Status: BookingStatusConfirmed, CheckInDate: day("2025-12-01")}
	require.NoError(t, b.CheckIn(time.Date(2025, 12, 1, 0, 30, 0, 0, east)))

	// Local calendar still reads Nov 30 even though UTC already reads Dec 1.
	b = Booking{Status: BookingStatusConfirmed, CheckInDate: day("2025-12-01")}
	err := b.CheckIn(time.Date(2025, 11, 30, 23, 0, 0, 0, west))
	assert.ErrorIs(t, err, ErrCheckInTooEarly)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
}

func TestBooking_CheckOut(t *testing.T) {
	b := Booking{Status: BookingStatusCheckedIn}

	err := b.CheckOut()

	require.NoError(t, err)
	assert.Equal(t, BookingStatusCheckedOut, b.Status)
}

func TestBooking_CheckOut_OnlyFromCheckedIn(t *testing.T) {
	for _, status := range []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedOut} {
		t.Run(status, func(t *testing.T) {
			b := Booking{Status: status}

			err := b.CheckOut()

			assert.ErrorIs(t, err, ErrBookingNotCheckedIn)
			assert.Equal(t, status, b.Status, "status must not change on rejection")
		})
	}
}

func TestBooking_LifecycleIsMonotonic(t *testing.T) {
	// Full happy path, then verify no operation can run twice.
	b := Booking{Status: BookingStatusPending, CheckInDate: day("2025-12-01")}

	require.NoError(t, b.Confirm(320, "Card"))
	require.NoError(t, b.CheckIn(day("2025-12-01")))
	require.NoError(t, b.CheckOut())
	assert.Equal(t, BookingStatusCheckedOut, b.Status)

	assert.ErrorIs(t, b.Confirm(320, "Card"), ErrBookingNotPending)
	assert.ErrorIs(t, b.CheckIn(day("2025-12-01")), ErrBookingNotConfirmed)
	assert.ErrorIs(t, b.CheckOut(), ErrBookingNotCheckedIn)
}
