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

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

func (ctrl *HotelController) GetHotels(c *gin.Context) {
	var (
		hotels []models.Hotel
		err    error
	)
	if c.Query("all") == "true" {
		hotels, err = ctrl.HotelSvc.GetAll()
	} else {
		hotels, err = ctrl.HotelSvc.GetAllActive()
	}
	if err != nil {
		log.Printf("GetHotels error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.fetchHotels", "could not fetch hotels")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctrl *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	hotel, err := ctrl.HotelSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", err.Error())
			return
		}
		log.Printf("GetHotelByID error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctrl *HotelController) SearchHotels(c *gin.Context) {
	search := services.HotelSearch{
		City:       c.Query("city"),
		Country:    c.Query("country"),
		SearchTerm: c.Query("q"),
	}
	if v := c.Query("minStarRating"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			search.MinStarRating = &n
		}
	}
	search.OnlyWithAvailableRooms = c.Query("onlyWithAvailableRooms") == "true"

	hotels, err := ctrl.HotelSvc.Search(search)
	if err != nil {
		log.Printf("SearchHotels error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "name is required")
		return
	}
	hotel, err := ctrl.HotelSvc.Create(input)
	if err != nil {
		log.Printf("CreateHotel error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not create hotel")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input services.HotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	hotel, err := ctrl.HotelSvc.Update(id, input)
	if err != nil {
		if errors.Is(err, models.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", err.Error())
			return
		}
		log.Printf("UpdateHotel error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not update hotel")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.HotelSvc.Delete(id); err != nil {
		if errors.Is(err, models.ErrHotelNotFound) {
			utils.JSONError(c, http.StatusNotFound, "error.hotelNotFound", err.Error())
			return
		}
		log.Printf("DeleteHotel error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "could not delete hotel")
		return
	}
	c.Status(http.StatusNoContent)
}
