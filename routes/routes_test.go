package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/controllers"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ac := controllers.NewAuthController(services.NewUserService(nil))
	hc := controllers.NewHotelController(services.NewHotelService(nil))
	rc := controllers.NewRoomController(services.NewRoomService(nil))
	bc := controllers.NewBookingController(services.NewBookingService(nil))
	return SetupRouter(ac, hc, rc, bc)
}

func bearerFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "data": {"status": "ok"}}`, w.Body.String())
}

func TestBookings_RequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/bookings/user/7", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserBookings_OtherUserForbidden(t *testing.T) {
	// A customer token only unlocks that customer's own booking lists;
	// the user id in the path is checked against the token claims.
	r := newTestRouter(t)
	customer := bearerFor(t, 7, models.RoleCustomer)

	w := doRequest(r, http.MethodGet, "/api/bookings/user/999", customer, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodGet, "/api/bookings/user/999/active", customer, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateBooking_ForOtherUserForbidden(t *testing.T) {
	r := newTestRouter(t)
	customer := bearerFor(t, 7, models.RoleCustomer)

	w := doRequest(r, http.MethodPost, "/api/bookings", customer,
		`{"userId": 999, "roomId": 1, "checkInDate": "2030-01-01", "checkOutDate": "2030-01-03", "numberOfGuests": 2}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAllBookings_AdminOnly(t *testing.T) {
	r := newTestRouter(t)
	customer := bearerFor(t, 7, models.RoleCustomer)

	w := doRequest(r, http.MethodGet, "/api/bookings", customer, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoomBookings_AdminOnly(t *testing.T) {
	r := newTestRouter(t)
	customer := bearerFor(t, 7, models.RoleCustomer)

	w := doRequest(r, http.MethodGet, "/api/bookings/room/1", customer, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}
