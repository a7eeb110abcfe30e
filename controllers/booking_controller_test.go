package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hotel-booking/middleware"
	"hotel-booking/models"
)

func authedContext(userID uint, role string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.ContextUserID, userID)
	c.Set(middleware.ContextRole, role)
	return c
}

func TestCanAccessUser(t *testing.T) {
	customer := authedContext(7, models.RoleCustomer)
	assert.True(t, canAccessUser(customer, 7))
	assert.False(t, canAccessUser(customer, 8))

	admin := authedContext(1, models.RoleAdmin)
	assert.True(t, canAccessUser(admin, 1))
	assert.True(t, canAccessUser(admin, 8))
}

func confirmRequest(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewBookingController(nil)
	r.POST("/bookings/:id/confirm", ctrl.ConfirmBooking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/10/confirm", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestConfirmBooking_RejectsNonPositiveAmount(t *testing.T) {
	// An explicit zero must not slip past the required check.
	w := confirmRequest(t, `{"paymentAmount": 0, "paymentMethod": "Card"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = confirmRequest(t, `{"paymentAmount": -50, "paymentMethod": "Card"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = confirmRequest(t, `{"paymentAmount": 200}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
