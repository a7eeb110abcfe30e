package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null;index" json:"name"`
	Description string `gorm:"size:2000" json:"description,omitempty"`

	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100;index" json:"city,omitempty"`
	Country    string `gorm:"size:100;index" json:"country,omitempty"`
	PostalCode string `gorm:"column:postal_code;size:20" json:"postalCode,omitempty"`

	PhoneNumber string `gorm:"column:phone_number;size:30" json:"phoneNumber,omitempty"`
	Email       string `gorm:"size:255" json:"email,omitempty"`
	Website     string `gorm:"size:255" json:"website,omitempty"`

	StarRating *int           `gorm:"column:star_rating" json:"starRating,omitempty"`
	Amenities  datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	ImageURL   string         `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`

	Active bool `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
