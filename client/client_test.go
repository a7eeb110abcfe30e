package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/models"
)

func TestLogin_InstallsSession(t *testing.T) {
	srv := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body.Email)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":        7,
			"firstName": "Ana",
			"lastName":  "Pop",
			"role":      models.RoleCustomer,
			"token":     "issued-token",
		})
	})

	session := NewSession()
	notified := 0
	session.Subscribe(func(*Identity) { notified++ })

	srvHTTP := newHTTPServer(t, srv)
	c := New(srvHTTP.URL, session)

	identity, err := c.Login(context.Background(), "ana@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.ID)
	assert.Equal(t, "Ana Pop", identity.DisplayName())
	assert.False(t, identity.IsAdmin())
	assert.Equal(t, "issued-token", session.Token())
	assert.Equal(t, 1, notified)

	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, identity, current)
}

func TestLogin_BadCredentials(t *testing.T) {
	session := NewSession()
	srv := newHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusUnauthorized, "error.unauthorized", "invalid email or password")
	}))
	c := New(srv.URL, session)

	_, err := c.Login(context.Background(), "ana@example.com", "wrong")

	require.Error(t, err)
	_, loggedIn := session.Current()
	assert.False(t, loggedIn)
	assert.Empty(t, session.Token())
}

func TestLogout_ClearsSession(t *testing.T) {
	session := NewSession()
	session.Set(Identity{ID: 1, Role: models.RoleAdmin}, "tok")
	srv := newHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(srv.URL, session)

	c.Logout()

	_, loggedIn := session.Current()
	assert.False(t, loggedIn)
	assert.Empty(t, session.Token())
}

func TestListBookings_AdminSeesAll(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Booking{{ID: 1}, {ID: 2}})
	}))

	bookings, err := c.ListBookings(context.Background())

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestListBookings_CustomerSeesOwn(t *testing.T) {
	session := NewSession()
	session.Set(Identity{ID: 7, Role: models.RoleCustomer}, "tok")
	srv := newHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bookings/user/7", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Booking{{ID: 1}})
	}))
	c := New(srv.URL, session)

	bookings, err := c.ListBookings(context.Background())

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestListBookings_RequiresLogin(t *testing.T) {
	srv := newHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be sent")
	}))
	c := New(srv.URL, NewSession())

	_, err := c.ListBookings(context.Background())

	assert.True(t, Rejected(err))
}

func TestListHotels(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hotels", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Hotel{{ID: 1, Name: "Grand Plaza"}})
	}))

	hotels, err := c.ListHotels(context.Background())

	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, "Grand Plaza", hotels[0].Name)
}

func TestGetBooking_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "error.notFound", "booking not found")
	}))

	_, err := c.GetBooking(context.Background(), 99)

	assert.True(t, NotFound(err))
}
