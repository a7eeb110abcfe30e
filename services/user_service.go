package services

import (
	"errors"
	"log"
	"strings"

	"hotel-booking/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type RegisterInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *UserService) Register(input RegisterInput) (models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, models.ErrUsernameTaken
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, models.ErrEmailTaken
	}

	// Unknown or missing role falls back to CUSTOMER.
	role := models.RoleCustomer
	if strings.EqualFold(input.Role, models.RoleAdmin) {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:    input.Username,
		Email:       input.Email,
		Password:    string(hash),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Role:        role,
		Enabled:     true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	log.Printf("user %d registered: %s (%s)", user.ID, user.Username, user.Role)
	return user, nil
}

func (s *UserService) Login(input LoginInput) (models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, models.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	if !user.Enabled {
		return models.User{}, models.ErrAccountDisabled
	}
	return user, nil
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
