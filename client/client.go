// Package client is a headless consumer of the booking REST API. It
// drives the booking lifecycle (create, confirm, check-in, check-out,
// delete), browses hotels and rooms, and classifies every response into
// one of a fixed set of outcomes so callers can present them uniformly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"hotel-booking/models"
)

// Outcome classifies how a request ended.
type Outcome int

const (
	// OutcomeSuccess is a 2xx response.
	OutcomeSuccess Outcome = iota
	// OutcomeRejected is a business-rule rejection (HTTP 400): the
	// entity's current state does not satisfy the operation's
	// precondition. The server's message is passed through when present.
	OutcomeRejected
	// OutcomeNotFound is a stale or invalid identifier (HTTP 404).
	OutcomeNotFound
	// OutcomeServerError is any other non-2xx status.
	OutcomeServerError
	// OutcomeConnection is a transport failure; the server was never
	// reached or the response never arrived.
	OutcomeConnection
)

// APIError is the classified failure of a request.
type APIError struct {
	Outcome    Outcome
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Rejected reports whether err is a business-rule rejection.
func Rejected(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Outcome == OutcomeRejected
}

// NotFound reports whether err is a stale-identifier failure.
func NotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Outcome == OutcomeNotFound
}

// ConnectionFailed reports whether the server could not be reached.
func ConnectionFailed(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Outcome == OutcomeConnection
}

const connectionErrorMessage = "Cannot connect to server."

// Client talks to one deployment of the booking API. Safe for concurrent
// use; mutating booking operations are additionally serialized per
// booking so a double submit is a no-op (see booking.go).
type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New builds a client for the API at baseURL. The session supplies the
// bearer token for authenticated calls and may be shared across views.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		session:  session,
		inFlight: map[string]struct{}{},
	}
}

// Session returns the session context this client authenticates with.
func (c *Client) Session() *Session { return c.session }

// errorEnvelope matches the server's error body
// {"error": {"code": "...", "message": "..."}}.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues the request and maps the response onto the outcome taxonomy.
// defaultMessage is used for a 400 whose body carries no server message.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, defaultMessage string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Outcome: OutcomeConnection, Message: connectionErrorMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Outcome: OutcomeConnection, Message: connectionErrorMessage}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	}

	var envelope errorEnvelope
	_ = json.Unmarshal(raw, &envelope)
	message := strings.TrimSpace(envelope.Error.Message)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		if message == "" {
			message = defaultMessage
		}
		return &APIError{Outcome: OutcomeRejected, StatusCode: resp.StatusCode, Message: message}
	case http.StatusNotFound:
		if message == "" {
			message = "The requested record was not found."
		}
		return &APIError{Outcome: OutcomeNotFound, StatusCode: resp.StatusCode, Message: message}
	default:
		if message == "" {
			message = "Something went wrong. Please try again."
		}
		return &APIError{Outcome: OutcomeServerError, StatusCode: resp.StatusCode, Message: message}
	}
}

// ---------------------------
// Auth
// ---------------------------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// Login authenticates and installs the returned identity into the
// session, notifying subscribers.
func (c *Client) Login(ctx context.Context, email, password string) (Identity, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, &resp,
		"Invalid email or password.")
	if err != nil {
		return Identity{}, err
	}
	identity := Identity{
		ID:        resp.ID,
		Role:      resp.Role,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
	}
	c.session.Set(identity, resp.Token)
	return identity, nil
}

// Logout clears the session; subscribers are notified so every view
// re-evaluates what it may show.
func (c *Client) Logout() {
	c.session.Clear()
}

// ---------------------------
// Resource browsers (read-only)
// ---------------------------

func (c *Client) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := c.do(ctx, http.MethodGet, "/api/hotels", nil, &hotels, "")
	return hotels, err
}

func (c *Client) GetHotel(ctx context.Context, id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/hotels/%d", id), nil, &hotel, "")
	return hotel, err
}

func (c *Client) ListHotelRooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/hotels/%d/rooms", hotelID), nil, &rooms, "")
	return rooms, err
}

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &rooms, "")
	return rooms, err
}

func (c *Client) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/rooms/%d", id), nil, &room, "")
	return room, err
}

// ListBookings returns every booking for admins and falls back to the
// caller's own bookings otherwise, mirroring the role-based endpoint
// selection of the views.
func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	identity, ok := c.session.Current()
	if !ok {
		return nil, &APIError{Outcome: OutcomeRejected, Message: "You must be logged in to view bookings."}
	}
	path := "/api/bookings"
	if !identity.IsAdmin() {
		path = fmt.Sprintf("/api/bookings/user/%d", identity.ID)
	}
	var bookings []models.Booking
	err := c.do(ctx, http.MethodGet, path, nil, &bookings, "")
	return bookings, err
}

func (c *Client) GetBooking(ctx context.Context, id uint) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), nil, &booking, "")
	return booking, err
}
