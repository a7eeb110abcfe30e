package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		admin := middleware.RequireRole(models.RoleAdmin)

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)
			hotels.GET("/search", hc.SearchHotels)
			hotels.GET("/:id", hc.GetHotelByID)
			hotels.GET("/:id/rooms", rc.GetRoomsByHotel)
			hotels.POST("", middleware.RequireAuth(), admin, hc.CreateHotel)
			hotels.PUT("/:id", middleware.RequireAuth(), admin, hc.UpdateHotel)
			hotels.DELETE("/:id", middleware.RequireAuth(), admin, hc.DeleteHotel)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.GET("/available", rc.SearchAvailableRooms)
			rooms.GET("/:id", rc.GetRoomByID)
			rooms.POST("", middleware.RequireAuth(), admin, rc.CreateRoom)
			rooms.PUT("/:id", middleware.RequireAuth(), admin, rc.UpdateRoom)
			rooms.PATCH("/:id/status", middleware.RequireAuth(), admin, rc.UpdateRoomStatus)
			rooms.DELETE("/:id", middleware.RequireAuth(), admin, rc.DeleteRoom)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			// admins see every booking, customers only their own
			bookings.GET("", admin, bc.GetBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.GET("/confirmation/:confirmationNumber", bc.GetBookingByConfirmationNumber)
			bookings.GET("/user/:userId", bc.GetUserBookings)
			bookings.GET("/user/:userId/active", bc.GetUserActiveBookings)
			bookings.GET("/room/:roomId", admin, bc.GetRoomBookings)

			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBooking)
			bookings.POST("/:id/confirm", admin, bc.ConfirmBooking)
			bookings.POST("/:id/check-in", admin, bc.CheckInBooking)
			bookings.POST("/:id/check-out", admin, bc.CheckOutBooking)

			// delete needs no extra role; the controller restricts it
			// to the booking's owner or an admin
			bookings.DELETE("/:id", bc.DeleteBooking)
		}
	}

	return r
}
