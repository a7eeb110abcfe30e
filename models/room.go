package models

import (
	"time"

	"gorm.io/gorm"
)

// Room types offered across the platform.
const (
	RoomTypeSingle       = "SINGLE"
	RoomTypeDouble       = "DOUBLE"
	RoomTypeTwin         = "TWIN"
	RoomTypeSuite        = "SUITE"
	RoomTypeDeluxe       = "DELUXE"
	RoomTypePresidential = "PRESIDENTIAL"
)

// Room statuses. Check-in flips a room to OCCUPIED, check-out back to
// AVAILABLE; the rest are set by staff.
const (
	RoomStatusAvailable    = "AVAILABLE"
	RoomStatusOccupied     = "OCCUPIED"
	RoomStatusMaintenance  = "MAINTENANCE"
	RoomStatusReserved     = "RESERVED"
	RoomStatusOutOfService = "OUT_OF_SERVICE"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HotelID uint `gorm:"column:hotel_id;index;not null;uniqueIndex:uk_room_number_hotel" json:"hotelId"`

	RoomNumber string `gorm:"column:room_number;size:10;not null;uniqueIndex:uk_room_number_hotel" json:"roomNumber"`
	RoomType   string `gorm:"column:room_type;size:30;not null" json:"roomType"`

	PricePerNight float64 `gorm:"column:price_per_night;not null" json:"pricePerNight"`
	MaxOccupancy  int     `gorm:"column:max_occupancy;not null" json:"maxOccupancy"`

	Description string `gorm:"size:1000" json:"description,omitempty"`
	Facilities  string `gorm:"size:500" json:"facilities,omitempty"`
	FloorNumber *int   `gorm:"column:floor_number" json:"floorNumber,omitempty"`
	ImageURL    string `gorm:"column:image_url;size:500" json:"imageUrl,omitempty"`

	Status string `gorm:"size:20;not null;default:AVAILABLE" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
