package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func respondRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrRoomNotFound), errors.Is(err, models.ErrHotelNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, models.ErrRoomNumberTaken):
		utils.JSONError(c, http.StatusConflict, "error.roomNumberTaken", err.Error())
	case errors.Is(err, models.ErrCheckOutNotAfter), errors.Is(err, models.ErrCheckInInPast):
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDates", err.Error())
	default:
		log.Printf("room error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetAll()
	if err != nil {
		log.Printf("GetRooms error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchRooms", "could not fetch rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoomsByHotel serves /api/hotels/:id/rooms.
func (ctrl *RoomController) GetRoomsByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "hotel id must be a positive integer")
		return
	}
	rooms, svcErr := ctrl.RoomSvc.GetByHotel(uint(hotelID))
	if svcErr != nil {
		respondRoomError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// SearchAvailableRooms answers queries like
// /api/rooms/available?checkInDate=2025-12-01&checkOutDate=2025-12-05&hotelId=3
func (ctrl *RoomController) SearchAvailableRooms(c *gin.Context) {
	search := services.RoomSearch{
		CheckInDate:  c.Query("checkInDate"),
		CheckOutDate: c.Query("checkOutDate"),
		RoomType:     c.Query("roomType"),
	}
	if v := c.Query("hotelId"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			id := uint(n)
			search.HotelID = &id
		}
	}
	if v := c.Query("minOccupancy"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			search.MinOccupancy = &n
		}
	}
	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			search.MinPrice = &f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			search.MaxPrice = &f
		}
	}

	rooms, err := ctrl.RoomSvc.SearchAvailable(search)
	if err != nil {
		respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	if input.HotelID == 0 || input.RoomNumber == "" || input.RoomType == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "hotelId, roomNumber and roomType are required")
		return
	}
	room, err := ctrl.RoomSvc.Create(input)
	if err != nil {
		respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	room, err := ctrl.RoomSvc.Update(id, input)
	if err != nil {
		respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "status is required")
		return
	}
	room, err := ctrl.RoomSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		respondRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		respondRoomError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
