package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"gorm.io/gorm"
)

// BookingService drives a booking through its lifecycle against the
// database of record. Status transitions themselves live on the model;
// this layer adds lookups, availability checks and persistence.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	UserID          uint
	RoomID          uint
	CheckInDate     string
	CheckOutDate    string
	NumberOfGuests  int
	PaymentMethod   string
	SpecialRequests string
}

type UpdateBookingInput struct {
	CheckInDate     *string
	CheckOutDate    *string
	NumberOfGuests  *int
	SpecialRequests *string
}

const maxStayNights = 30

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("User").Preload("Room").Preload("Room.Hotel").
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("User").Preload("Room").Preload("Room.Hotel").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return booking, err
}

func (s *BookingService) GetByConfirmationNumber(confirmationNumber string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("User").Preload("Room").Preload("Room.Hotel").
		Where("confirmation_number = ?", confirmationNumber).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return booking, err
}

func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err := s.DB.Preload("Room").Preload("Room.Hotel").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// GetUserActiveBookings returns the user's bookings that have not reached
// the terminal CHECKED_OUT state.
func (s *BookingService) GetUserActiveBookings(userID uint) ([]models.Booking, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	var bookings []models.Booking
	err := s.DB.Preload("Room").Preload("Room.Hotel").
		Where("user_id = ? AND status <> ?", userID, models.BookingStatusCheckedOut).
		Order("check_in_date ASC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetRoomBookings(roomID uint) ([]models.Booking, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoomNotFound
		}
		return nil, err
	}
	var bookings []models.Booking
	err := s.DB.Preload("User").
		Where("room_id = ?", roomID).Order("check_in_date ASC").Find(&bookings).Error
	return bookings, err
}

// Create validates the request, prices the stay server-side and persists a
// new PENDING booking. The caller only supplies identifiers and dates; the
// total is always recomputed here.
func (s *BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	checkIn, checkOut, err := parseStayDates(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return models.Booking{}, err
	}
	if err := validateStayDates(checkIn, checkOut); err != nil {
		return models.Booking{}, err
	}

	var user models.User
	if err := s.DB.First(&user, input.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, models.ErrUserNotFound
		}
		return models.Booking{}, err
	}

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, models.ErrRoomNotFound
		}
		return models.Booking{}, err
	}

	if room.Status != models.RoomStatusAvailable {
		return models.Booking{}, models.ErrRoomUnavailable
	}
	available, err := s.isRoomFree(room.ID, checkIn, checkOut, 0)
	if err != nil {
		return models.Booking{}, err
	}
	if !available {
		return models.Booking{}, models.ErrRoomAlreadyBooked
	}
	if input.NumberOfGuests < 1 {
		return models.Booking{}, models.ErrNoGuests
	}
	if input.NumberOfGuests > room.MaxOccupancy {
		return models.Booking{}, models.ErrTooManyGuests
	}

	nights := utils.CalculateNights(checkIn, checkOut)
	booking := models.Booking{
		UserID:             user.ID,
		RoomID:             room.ID,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		NumberOfGuests:     input.NumberOfGuests,
		TotalPrice:         room.PricePerNight * float64(nights),
		Status:             models.BookingStatusPending,
		PaymentStatus:      models.PaymentStatusPending,
		PaymentMethod:      input.PaymentMethod,
		SpecialRequests:    input.SpecialRequests,
		ConfirmationNumber: utils.NewConfirmationNumber(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	log.Printf("booking %d created for user %d, room %d (%s)",
		booking.ID, user.ID, room.ID, booking.ConfirmationNumber)
	return s.GetByID(booking.ID)
}

// Update changes dates, guest count or special requests on a booking that
// has not checked out yet, revalidating availability and repricing.
func (s *BookingService) Update(id uint, input UpdateBookingInput) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.Status == models.BookingStatusCheckedOut {
		return models.Booking{}, models.ErrBookingCheckedOut
	}

	if input.CheckInDate != nil || input.CheckOutDate != nil {
		newIn := booking.CheckInDate
		newOut := booking.CheckOutDate
		if input.CheckInDate != nil {
			if newIn, err = utils.ParseDate(*input.CheckInDate); err != nil {
				return models.Booking{}, fmt.Errorf("invalid check-in date: %w", err)
			}
		}
		if input.CheckOutDate != nil {
			if newOut, err = utils.ParseDate(*input.CheckOutDate); err != nil {
				return models.Booking{}, fmt.Errorf("invalid check-out date: %w", err)
			}
		}
		if err := validateStayDates(newIn, newOut); err != nil {
			return models.Booking{}, err
		}
		available, err := s.isRoomFree(booking.RoomID, newIn, newOut, booking.ID)
		if err != nil {
			return models.Booking{}, err
		}
		if !available {
			return models.Booking{}, models.ErrRoomAlreadyBooked
		}
		booking.CheckInDate = newIn
		booking.CheckOutDate = newOut
		booking.TotalPrice = booking.Room.PricePerNight * float64(utils.CalculateNights(newIn, newOut))
	}
	if input.NumberOfGuests != nil {
		if *input.NumberOfGuests < 1 {
			return models.Booking{}, models.ErrNoGuests
		}
		if *input.NumberOfGuests > booking.Room.MaxOccupancy {
			return models.Booking{}, models.ErrTooManyGuests
		}
		booking.NumberOfGuests = *input.NumberOfGuests
	}
	if input.SpecialRequests != nil {
		booking.SpecialRequests = *input.SpecialRequests
	}

	if err := s.DB.Save(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return s.GetByID(booking.ID)
}

// Confirm captures payment on a PENDING booking.
func (s *BookingService) Confirm(id uint, paymentAmount float64, paymentMethod string) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := booking.Confirm(paymentAmount, paymentMethod); err != nil {
		return models.Booking{}, err
	}
	if err := s.DB.Save(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("confirm booking: %w", err)
	}
	log.Printf("booking %d confirmed (%s, %.2f paid)", booking.ID, paymentMethod, paymentAmount)
	return booking, nil
}

// CheckIn advances a CONFIRMED booking whose stay has started and marks
// the room occupied. Both writes happen in one transaction.
func (s *BookingService) CheckIn(id uint) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := booking.CheckIn(time.Now()); err != nil {
		return models.Booking{}, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusOccupied).Error
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("check in booking: %w", err)
	}
	log.Printf("booking %d checked in", booking.ID)
	return booking, nil
}

// CheckOut completes a CHECKED_IN booking and releases the room.
func (s *BookingService) CheckOut(id uint) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := booking.CheckOut(); err != nil {
		return models.Booking{}, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomStatusAvailable).Error
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("check out booking: %w", err)
	}
	log.Printf("booking %d checked out", booking.ID)
	return booking, nil
}

// Delete removes a booking permanently. No status precondition: deletion
// is accepted from any state.
func (s *BookingService) Delete(id uint) error {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrBookingNotFound
		}
		return err
	}
	if err := s.DB.Delete(&booking).Error; err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	log.Printf("booking %d deleted (was %s)", booking.ID, booking.Status)
	return nil
}

func (s *BookingService) requireUser(userID uint) error {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrUserNotFound
		}
		return err
	}
	return nil
}

// isRoomFree reports whether no live booking for the room overlaps the
// given dates. excludeID skips the booking being updated.
func (s *BookingService) isRoomFree(roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	var count int64
	q := s.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status <> ?", roomID, models.BookingStatusCheckedOut).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func parseStayDates(in, out string) (time.Time, time.Time, error) {
	checkIn, err := utils.ParseDate(in)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := utils.ParseDate(out)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid check-out date: %w", err)
	}
	return checkIn, checkOut, nil
}

// validateStayDates compares calendar dates, not instants, so a non-UTC
// server clock cannot move the past/future boundary.
func validateStayDates(checkIn, checkOut time.Time) error {
	today := time.Now().Format(utils.DateLayout)
	if checkIn.Format(utils.DateLayout) < today {
		return models.ErrCheckInInPast
	}
	if !checkOut.After(checkIn) {
		return models.ErrCheckOutNotAfter
	}
	if utils.CalculateNights(checkIn, checkOut) > maxStayNights {
		return models.ErrStayTooLong
	}
	return nil
}
