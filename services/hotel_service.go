package services

import (
	"errors"
	"log"
	"strings"

	"hotel-booking/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type HotelInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Country     string         `json:"country"`
	PostalCode  string         `json:"postalCode"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	Website     string         `json:"website"`
	StarRating  *int           `json:"starRating"`
	Amenities   datatypes.JSON `json:"amenities"`
	ImageURL    string         `json:"imageUrl"`
	Active      *bool          `json:"active"`
}

type HotelSearch struct {
	City                   string
	Country                string
	MinStarRating          *int
	SearchTerm             string
	OnlyWithAvailableRooms bool
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("Rooms").Order("name ASC").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetAllActive() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("Rooms").Where("active = ?", true).Order("name ASC").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Preload("Rooms").First(&hotel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Hotel{}, models.ErrHotelNotFound
	}
	return hotel, err
}

func (s *HotelService) Create(input HotelInput) (models.Hotel, error) {
	hotel := models.Hotel{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		PostalCode:  input.PostalCode,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Website:     input.Website,
		StarRating:  input.StarRating,
		Amenities:   input.Amenities,
		ImageURL:    input.ImageURL,
		Active:      true,
	}
	if input.Active != nil {
		hotel.Active = *input.Active
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	log.Printf("hotel %d created: %s", hotel.ID, hotel.Name)
	return hotel, nil
}

func (s *HotelService) Update(id uint, input HotelInput) (models.Hotel, error) {
	hotel, err := s.GetByID(id)
	if err != nil {
		return models.Hotel{}, err
	}
	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.Description != "" {
		hotel.Description = input.Description
	}
	if input.Address != "" {
		hotel.Address = input.Address
	}
	if input.City != "" {
		hotel.City = input.City
	}
	if input.Country != "" {
		hotel.Country = input.Country
	}
	if input.PostalCode != "" {
		hotel.PostalCode = input.PostalCode
	}
	if input.PhoneNumber != "" {
		hotel.PhoneNumber = input.PhoneNumber
	}
	if input.Email != "" {
		hotel.Email = input.Email
	}
	if input.Website != "" {
		hotel.Website = input.Website
	}
	if input.StarRating != nil {
		hotel.StarRating = input.StarRating
	}
	if len(input.Amenities) > 0 {
		hotel.Amenities = input.Amenities
	}
	if input.ImageURL != "" {
		hotel.ImageURL = input.ImageURL
	}
	if input.Active != nil {
		hotel.Active = *input.Active
	}
	if err := s.DB.Save(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

// Delete removes the hotel and its rooms.
func (s *HotelService) Delete(id uint) error {
	hotel, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&hotel).Error; err != nil {
			return err
		}
		log.Printf("hotel %d deleted (cascade deleted %d rooms)", hotel.ID, len(hotel.Rooms))
		return nil
	})
}

func (s *HotelService) Search(search HotelSearch) ([]models.Hotel, error) {
	q := s.DB.Preload("Rooms").Where("active = ?", true)
	if search.City != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(search.City))
	}
	if search.Country != "" {
		q = q.Where("LOWER(country) = ?", strings.ToLower(search.Country))
	}
	if search.MinStarRating != nil {
		q = q.Where("star_rating >= ?", *search.MinStarRating)
	}
	if search.SearchTerm != "" {
		term := "%" + strings.ToLower(search.SearchTerm) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", term, term)
	}
	var hotels []models.Hotel
	if err := q.Order("name ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	if !search.OnlyWithAvailableRooms {
		return hotels, nil
	}
	filtered := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		for _, r := range h.Rooms {
			if r.Status == models.RoomStatusAvailable {
				filtered = append(filtered, h)
				break
			}
		}
	}
	return filtered, nil
}
