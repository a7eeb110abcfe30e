package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type AuthController struct {
	UserSvc *services.UserService
}

func NewAuthController(svc *services.UserService) *AuthController {
	return &AuthController{UserSvc: svc}
}

const tokenTTL = 24 * time.Hour

// authResponse is the identity record clients persist as their session
// context: id, role and display name, plus the bearer token.
type authResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Token     string `json:"token,omitempty"`
	Message   string `json:"message"`
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	user, err := ctrl.UserSvc.Register(input)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUsernameTaken), errors.Is(err, models.ErrEmailTaken):
			utils.JSONError(c, http.StatusBadRequest, "error.duplicate", err.Error())
		default:
			log.Printf("Register error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "registration failed")
		}
		return
	}
	c.JSON(http.StatusCreated, authResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Message:   "User registered successfully",
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}
	user, err := ctrl.UserSvc.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrAccountDisabled):
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", err.Error())
		default:
			log.Printf("Login error: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "error.internal", "login failed")
		}
		return
	}
	token, err := utils.GenerateToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		log.Printf("Login token error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "login failed")
		return
	}
	c.JSON(http.StatusOK, authResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
		Message:   "Login successful",
	})
}
