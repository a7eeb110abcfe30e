package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	UserID          uint   `json:"userId" binding:"required"`
	RoomID          uint   `json:"roomId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required"`
	PaymentMethod   string `json:"paymentMethod"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateBookingRequest struct {
	CheckInDate     *string `json:"checkInDate"`
	CheckOutDate    *string `json:"checkOutDate"`
	NumberOfGuests  *int    `json:"numberOfGuests"`
	SpecialRequests *string `json:"specialRequests"`
}

type ConfirmBookingRequest struct {
	PaymentAmount *float64 `json:"paymentAmount" binding:"required,gt=0"`
	PaymentMethod string   `json:"paymentMethod" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// canAccessUser is the authoritative ownership check: admins may act on
// any user's bookings, everyone else only on their own. The token claims
// stored by RequireAuth decide, never the request payload.
func canAccessUser(c *gin.Context, userID uint) bool {
	if c.GetString(middleware.ContextRole) == models.RoleAdmin {
		return true
	}
	return c.GetUint(middleware.ContextUserID) == userID
}

func respondForbidden(c *gin.Context) {
	utils.JSONError(c, http.StatusForbidden, "error.forbidden", "you can only access your own bookings")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// respondBookingError maps domain errors onto the wire: missing entities
// are 404, broken preconditions are 400 with the rule spelled out,
// anything else is a 500.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, models.ErrBookingNotPending),
		errors.Is(err, models.ErrBookingNotConfirmed),
		errors.Is(err, models.ErrCheckInTooEarly),
		errors.Is(err, models.ErrBookingNotCheckedIn),
		errors.Is(err, models.ErrBookingCheckedOut),
		errors.Is(err, models.ErrRoomUnavailable),
		errors.Is(err, models.ErrRoomAlreadyBooked),
		errors.Is(err, models.ErrTooManyGuests),
		errors.Is(err, models.ErrNoGuests),
		errors.Is(err, models.ErrCheckInInPast),
		errors.Is(err, models.ErrCheckOutNotAfter),
		errors.Is(err, models.ErrStayTooLong):
		utils.JSONError(c, http.StatusBadRequest, "error.businessRule", err.Error())
	case isForeignKeyError(err):
		utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", "referenced user or room does not exist")
	case strings.Contains(strings.ToLower(err.Error()), "invalid check"):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", err.Error())
	default:
		log.Printf("booking error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}

func isForeignKeyError(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	return false
}

// ---------------------------
// Reads
// ---------------------------

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetAll()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchBookings", "could not fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !canAccessUser(c, booking.UserID) {
		respondForbidden(c)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) GetBookingByConfirmationNumber(c *gin.Context) {
	booking, err := ctrl.BookingSvc.GetByConfirmationNumber(c.Param("confirmationNumber"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !canAccessUser(c, booking.UserID) {
		respondForbidden(c)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) GetUserBookings(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "userId must be a positive integer")
		return
	}
	if !canAccessUser(c, uint(userID)) {
		respondForbidden(c)
		return
	}
	bookings, svcErr := ctrl.BookingSvc.GetUserBookings(uint(userID))
	if svcErr != nil {
		respondBookingError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetUserActiveBookings(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "userId must be a positive integer")
		return
	}
	if !canAccessUser(c, uint(userID)) {
		respondForbidden(c)
		return
	}
	bookings, svcErr := ctrl.BookingSvc.GetUserActiveBookings(uint(userID))
	if svcErr != nil {
		respondBookingError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetRoomBookings(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "roomId must be a positive integer")
		return
	}
	bookings, svcErr := ctrl.BookingSvc.GetRoomBookings(uint(roomID))
	if svcErr != nil {
		respondBookingError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ---------------------------
// Lifecycle
// ---------------------------

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	if !canAccessUser(c, payload.UserID) {
		respondForbidden(c)
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.CreateBookingInput{
		UserID:          payload.UserID,
		RoomID:          payload.RoomID,
		CheckInDate:     payload.CheckInDate,
		CheckOutDate:    payload.CheckOutDate,
		NumberOfGuests:  payload.NumberOfGuests,
		PaymentMethod:   payload.PaymentMethod,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	existing, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !canAccessUser(c, existing.UserID) {
		respondForbidden(c)
		return
	}
	booking, err := ctrl.BookingSvc.Update(id, services.UpdateBookingInput{
		CheckInDate:     payload.CheckInDate,
		CheckOutDate:    payload.CheckOutDate,
		NumberOfGuests:  payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload ConfirmBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "a positive paymentAmount and a paymentMethod are required")
		return
	}
	booking, err := ctrl.BookingSvc.Confirm(id, *payload.PaymentAmount, payload.PaymentMethod)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckIn(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.CheckOut(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	if !canAccessUser(c, booking.UserID) {
		respondForbidden(c)
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
