package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hotel-booking/models"
)

// ErrInFlight is returned when the same lifecycle operation is submitted
// again before the previous request settled. Rapid double clicks used to
// fire duplicate requests; now the second submit is a no-op.
var ErrInFlight = errors.New("request already in flight")

// ErrCancelled is returned when the operator backs out of a confirmation
// prompt. Nothing was sent; there is no side effect to undo.
var ErrCancelled = errors.New("cancelled by operator")

// PaymentCollector gathers the payment amount and method for a confirm.
// Returning ok=false cancels the flow before anything is sent.
type PaymentCollector func() (amount float64, method string, ok bool)

// Acknowledger asks the operator for an explicit go-ahead ("Yes,
// confirm!", "Yes, check in!", ...). Returning false cancels the flow.
type Acknowledger func(prompt string) bool

// AlwaysAcknowledge is the non-interactive Acknowledger.
func AlwaysAcknowledge(string) bool { return true }

// Default rejection texts, used when a 400 carries no server message.
const (
	confirmRejectedMessage  = "Only PENDING bookings can be confirmed."
	checkInRejectedMessage  = "Only bookings with status 'CONFIRMED' and check-in date of today or earlier can be checked in."
	checkOutRejectedMessage = "Only bookings with status 'CHECKED_IN' can be checked out."
	createRejectedMessage   = "The booking could not be created."
	deleteFailedMessage     = "The booking could not be deleted."
)

type CreateBookingRequest struct {
	UserID          uint   `json:"userId"`
	RoomID          uint   `json:"roomId"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	PaymentMethod   string `json:"paymentMethod"`
	SpecialRequests string `json:"specialRequests"`
}

type confirmBookingRequest struct {
	PaymentAmount float64 `json:"paymentAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// acquire marks the operation busy; release undoes it. A second submit
// for the same key while busy fails with ErrInFlight.
func (c *Client) acquire(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return ErrInFlight
	}
	c.inFlight[key] = struct{}{}
	return nil
}

func (c *Client) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}

// CreateBooking submits a reservation request. Dates are validated here
// as a usability gate; the server remains the trust boundary and prices
// the stay itself.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (models.Booking, error) {
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		return models.Booking{}, &APIError{Outcome: OutcomeRejected, Message: "Both check-in and check-out dates are required."}
	}
	if req.CheckOutDate <= req.CheckInDate {
		return models.Booking{}, &APIError{Outcome: OutcomeRejected, Message: "Check-out date must be after check-in date."}
	}

	if err := c.acquire("create"); err != nil {
		return models.Booking{}, err
	}
	defer c.release("create")

	var booking models.Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings", req, &booking, createRejectedMessage)
	return booking, err
}

// ConfirmBooking captures payment on a PENDING booking. The flow is
// two-phase: collect payment details, then require an explicit
// acknowledgment. Backing out of either step sends nothing.
func (c *Client) ConfirmBooking(ctx context.Context, id uint, collect PaymentCollector, ack Acknowledger) (models.Booking, error) {
	amount, method, ok := collect()
	if !ok {
		return models.Booking{}, ErrCancelled
	}
	if amount <= 0 || method == "" {
		return models.Booking{}, &APIError{Outcome: OutcomeRejected, Message: "Payment amount and method are required."}
	}
	if !ack("Confirm this booking? After confirmation no details can be modified.") {
		return models.Booking{}, ErrCancelled
	}

	key := fmt.Sprintf("confirm:%d", id)
	if err := c.acquire(key); err != nil {
		return models.Booking{}, err
	}
	defer c.release(key)

	var booking models.Booking
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/confirm", id),
		confirmBookingRequest{PaymentAmount: amount, PaymentMethod: method}, &booking, confirmRejectedMessage)
	return booking, err
}

// CheckInBooking advances a CONFIRMED booking whose stay has started.
func (c *Client) CheckInBooking(ctx context.Context, id uint, ack Acknowledger) (models.Booking, error) {
	if !ack("Check in this booking?") {
		return models.Booking{}, ErrCancelled
	}

	key := fmt.Sprintf("check-in:%d", id)
	if err := c.acquire(key); err != nil {
		return models.Booking{}, err
	}
	defer c.release(key)

	var booking models.Booking
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/check-in", id), nil, &booking, checkInRejectedMessage)
	return booking, err
}

// CheckOutBooking completes a CHECKED_IN booking.
func (c *Client) CheckOutBooking(ctx context.Context, id uint, ack Acknowledger) (models.Booking, error) {
	if !ack("Check out this booking?") {
		return models.Booking{}, ErrCancelled
	}

	key := fmt.Sprintf("check-out:%d", id)
	if err := c.acquire(key); err != nil {
		return models.Booking{}, err
	}
	defer c.release(key)

	var booking models.Booking
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/bookings/%d/check-out", id), nil, &booking, checkOutRejectedMessage)
	return booking, err
}

// DeleteBooking removes a booking permanently, from any state. The
// acknowledgment is the only guard; there is no undo.
func (c *Client) DeleteBooking(ctx context.Context, id uint, ack Acknowledger) error {
	if !ack("Delete this booking? This cannot be undone.") {
		return ErrCancelled
	}

	key := fmt.Sprintf("delete:%d", id)
	if err := c.acquire(key); err != nil {
		return err
	}
	defer c.release(key)

	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil, nil, deleteFailedMessage)
}
