package models

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrBookingNotPending   = errors.New("only pending bookings can be confirmed")
	ErrBookingNotConfirmed = errors.New("only confirmed bookings can be checked in")
	ErrCheckInTooEarly     = errors.New("cannot check in before the check-in date")
	ErrBookingNotCheckedIn = errors.New("only checked-in bookings can be checked out")
	ErrBookingCheckedOut   = errors.New("cannot update a checked-out booking")
)

var (
	ErrRoomUnavailable    = errors.New("room is not available for booking")
	ErrRoomAlreadyBooked  = errors.New("room is already booked for the selected dates")
	ErrTooManyGuests      = errors.New("number of guests exceeds room's maximum occupancy")
	ErrNoGuests           = errors.New("number of guests must be at least 1")
	ErrCheckInInPast      = errors.New("check-in date cannot be in the past")
	ErrCheckOutNotAfter   = errors.New("check-out date must be after check-in date")
	ErrStayTooLong        = errors.New("booking duration cannot exceed 30 nights")
	ErrRoomNumberTaken    = errors.New("room number already exists in this hotel")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("user account is disabled")
)
