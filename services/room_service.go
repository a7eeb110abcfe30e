package services

import (
	"errors"
	"log"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	HotelID       uint     `json:"hotelId"`
	RoomNumber    string   `json:"roomNumber"`
	RoomType      string   `json:"roomType"`
	PricePerNight *float64 `json:"pricePerNight"`
	MaxOccupancy  *int     `json:"maxOccupancy"`
	Description   string   `json:"description"`
	Facilities    string   `json:"facilities"`
	FloorNumber   *int     `json:"floorNumber"`
	ImageURL      string   `json:"imageUrl"`
	Status        string   `json:"status"`
}

type RoomSearch struct {
	HotelID      *uint
	RoomType     string
	CheckInDate  string
	CheckOutDate string
	MinOccupancy *int
	MinPrice     *float64
	MaxPrice     *float64
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("Hotel").Order("hotel_id, room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Hotel").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, models.ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) GetByHotel(hotelID uint) ([]models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrHotelNotFound
		}
		return nil, err
	}
	var rooms []models.Room
	err := s.DB.Where("hotel_id = ?", hotelID).Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Create(input RoomInput) (models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, input.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, models.ErrHotelNotFound
		}
		return models.Room{}, err
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).
		Where("hotel_id = ? AND room_number = ?", input.HotelID, input.RoomNumber).
		Count(&count).Error; err != nil {
		return models.Room{}, err
	}
	if count > 0 {
		return models.Room{}, models.ErrRoomNumberTaken
	}

	room := models.Room{
		HotelID:     input.HotelID,
		RoomNumber:  input.RoomNumber,
		RoomType:    input.RoomType,
		Description: input.Description,
		Facilities:  input.Facilities,
		FloorNumber: input.FloorNumber,
		ImageURL:    input.ImageURL,
		Status:      models.RoomStatusAvailable,
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.MaxOccupancy != nil {
		room.MaxOccupancy = *input.MaxOccupancy
	}
	if input.Status != "" {
		room.Status = input.Status
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	log.Printf("room %d created: %s in hotel %d", room.ID, room.RoomNumber, room.HotelID)
	return s.GetByID(room.ID)
}

func (s *RoomService) Update(id uint, input RoomInput) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}
	if input.RoomNumber != "" && input.RoomNumber != room.RoomNumber {
		var count int64
		if err := s.DB.Model(&models.Room{}).
			Where("hotel_id = ? AND room_number = ? AND id <> ?", room.HotelID, input.RoomNumber, room.ID).
			Count(&count).Error; err != nil {
			return models.Room{}, err
		}
		if count > 0 {
			return models.Room{}, models.ErrRoomNumberTaken
		}
		room.RoomNumber = input.RoomNumber
	}
	if input.RoomType != "" {
		room.RoomType = input.RoomType
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.MaxOccupancy != nil {
		room.MaxOccupancy = *input.MaxOccupancy
	}
	if input.Description != "" {
		room.Description = input.Description
	}
	if input.Facilities != "" {
		room.Facilities = input.Facilities
	}
	if input.FloorNumber != nil {
		room.FloorNumber = input.FloorNumber
	}
	if input.ImageURL != "" {
		room.ImageURL = input.ImageURL
	}
	if input.Status != "" {
		room.Status = input.Status
	}
	if err := s.DB.Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) UpdateStatus(id uint, status string) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}
	room.Status = status
	if err := s.DB.Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	log.Printf("room %d status updated to %s", room.ID, status)
	return room, nil
}

func (s *RoomService) Delete(id uint) error {
	room, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&room).Error
}

// SearchAvailable lists AVAILABLE rooms with no overlapping live booking
// for the requested date range, optionally narrowed by hotel, type,
// occupancy and price.
func (s *RoomService) SearchAvailable(search RoomSearch) ([]models.Room, error) {
	checkIn, err := utils.ParseDate(search.CheckInDate)
	if err != nil {
		return nil, models.ErrCheckOutNotAfter
	}
	checkOut, err := utils.ParseDate(search.CheckOutDate)
	if err != nil {
		return nil, models.ErrCheckOutNotAfter
	}
	if !checkOut.After(checkIn) {
		return nil, models.ErrCheckOutNotAfter
	}
	if checkIn.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, models.ErrCheckInInPast
	}

	q := s.DB.Preload("Hotel").Where("status = ?", models.RoomStatusAvailable)
	if search.HotelID != nil {
		var hotel models.Hotel
		if err := s.DB.First(&hotel, *search.HotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrHotelNotFound
			}
			return nil, err
		}
		q = q.Where("hotel_id = ?", *search.HotelID)
	}
	if search.RoomType != "" {
		q = q.Where("room_type = ?", search.RoomType)
	}
	if search.MinOccupancy != nil {
		q = q.Where("max_occupancy >= ?", *search.MinOccupancy)
	}
	if search.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *search.MaxPrice)
	}
	q = q.Where(
		"id NOT IN (?)",
		s.DB.Model(&models.Booking{}).Select("room_id").
			Where("status <> ?", models.BookingStatusCheckedOut).
			Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn),
	)

	var rooms []models.Room
	err = q.Order("price_per_night ASC").Find(&rooms).Error
	return rooms, err
}
