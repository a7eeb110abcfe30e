package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle statuses. Transitions only move forward:
// PENDING -> CONFIRMED -> CHECKED_IN -> CHECKED_OUT.
const (
	BookingStatusPending    = "PENDING"
	BookingStatusConfirmed  = "CONFIRMED"
	BookingStatusCheckedIn  = "CHECKED_IN"
	BookingStatusCheckedOut = "CHECKED_OUT"
)

// Payment statuses carried on a booking.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusPaid    = "PAID"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"column:user_id;index;not null" json:"userId"`
	RoomID uint `gorm:"column:room_id;index;not null" json:"roomId"`

	CheckInDate  time.Time `gorm:"column:check_in_date;not null" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;not null" json:"checkOutDate"`

	NumberOfGuests int     `gorm:"column:number_of_guests;not null" json:"numberOfGuests"`
	TotalPrice     float64 `gorm:"column:total_price;not null" json:"totalPrice"`

	Status string `gorm:"column:status;size:20;not null;default:PENDING" json:"status"`

	SpecialRequests    string `gorm:"column:special_requests;size:1000" json:"specialRequests,omitempty"`
	ConfirmationNumber string `gorm:"column:confirmation_number;uniqueIndex;size:50" json:"confirmationNumber"`

	PaymentStatus string   `gorm:"column:payment_status;size:20;default:PENDING" json:"paymentStatus"`
	PaymentMethod string   `gorm:"column:payment_method;size:50" json:"paymentMethod,omitempty"`
	PaidAmount    *float64 `gorm:"column:paid_amount" json:"paidAmount,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// NumberOfNights is derived from the stay dates, never stored.
func (b *Booking) NumberOfNights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Confirm captures payment and moves the booking from PENDING to CONFIRMED.
func (b *Booking) Confirm(paymentAmount float64, paymentMethod string) error {
	if b.Status != BookingStatusPending {
		return ErrBookingNotPending
	}
	b.Status = BookingStatusConfirmed
	b.PaymentStatus = PaymentStatusPaid
	b.PaymentMethod = paymentMethod
	b.PaidAmount = &paymentAmount
	return nil
}

// CheckIn moves a CONFIRMED booking to CHECKED_IN. The stay must have
// started: the check-in date has to be today or earlier. Both sides are
// compared as calendar dates so the caller's time zone cannot shift the
// boundary.
func (b *Booking) CheckIn(today time.Time) error {
	if b.Status != BookingStatusConfirmed {
		return ErrBookingNotConfirmed
	}
	if b.CheckInDate.Format(dateLayout) > today.Format(dateLayout) {
		return ErrCheckInTooEarly
	}
	b.Status = BookingStatusCheckedIn
	return nil
}

// CheckOut moves a CHECKED_IN booking to its terminal CHECKED_OUT state.
func (b *Booking) CheckOut() error {
	if b.Status != BookingStatusCheckedIn {
		return ErrBookingNotCheckedIn
	}
	b.Status = BookingStatusCheckedOut
	return nil
}

const dateLayout = "2006-01-02"
