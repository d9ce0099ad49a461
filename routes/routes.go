package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"smartstay/config"
	"smartstay/controllers"
	"smartstay/middleware"
)

type Deps struct {
	Bookings *controllers.BookingController
	Rooms    *controllers.RoomController
	Hotels   *controllers.HotelController
	Health   *controllers.HealthController

	JWTSecret   string
	CORSOrigins []string
	RateLimit   config.RateLimitConfig
	Redis       *redis.Client
	Logger      *slog.Logger
}

func corsOrigins(configured []string) []string {
	if len(configured) == 0 {
		return []string{"*"}
	}
	return configured
}

func SetupRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger))

	origins := corsOrigins(d.CORSOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", d.Health.Health)
		api.POST("/check-availability", d.Bookings.CheckAvailability)

		api.GET("/hotels/:id", d.Hotels.GetHotel)

		rooms := api.Group("/rooms")
		{
			// search must be registered before /:id
			rooms.GET("/search", d.Rooms.SearchRooms)
			rooms.GET("/:id", d.Rooms.GetRoom)
		}

		bookings := api.Group("/bookings", middleware.RequireUser(d.JWTSecret))
		{
			bookings.POST("", middleware.RateLimit(d.RateLimit, d.Redis, logger), d.Bookings.CreateBooking)
			bookings.GET("", d.Bookings.ListMyBookings)
			bookings.GET("/:ref", d.Bookings.GetBooking)
			bookings.POST("/:ref/cancel", d.Bookings.CancelBooking)
		}
	}

	return r
}
