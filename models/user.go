package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. The role only selects which views and endpoints a client
// offers; every mutating route re-checks it server-side.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized

	FirstName   string `gorm:"column:first_name;size:100" json:"firstName"`
	LastName    string `gorm:"column:last_name;size:100" json:"lastName"`
	PhoneNumber string `gorm:"column:phone_number;size:30" json:"phoneNumber,omitempty"`

	Role          string `gorm:"size:20;not null;default:CUSTOMER" json:"role"`
	Enabled       bool   `gorm:"not null;default:true" json:"enabled"`
	EmailVerified bool   `gorm:"column:email_verified;not null;default:false" json:"emailVerified"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
