package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"smartstay/config"
	"smartstay/controllers"
	"smartstay/routes"
	"smartstay/services"
	"smartstay/utils"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.LogLevel, cfg.LogFormat, "smartstay", os.Stdout)
	slog.SetDefault(logger)
	if envErr != nil {
		logger.Info(".env not loaded; using process environment")
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is not set; booking endpoints cannot authenticate callers")
		os.Exit(1)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Error("database connect failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "driver", cfg.DBDriver, "seeded", cfg.SeedSampleData)

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil && cfg.RateLimit.Enabled {
		logger.Warn("redis unavailable; booking rate limit disabled", "addr", cfg.Redis.Addr)
	}

	var publisher services.EventPublisher = services.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		rp, err := services.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			logger.Warn("rabbitmq unavailable; booking events disabled", "error", err)
		} else {
			defer rp.Close()
			publisher = rp
		}
	}

	bookingService := services.NewBookingService(db,
		services.WithPublisher(publisher),
		services.WithLogger(logger.With("component", "bookings")),
		services.WithLocation(cfg.HotelLocation),
		services.WithMaxStayNights(cfg.MaxStayNights),
		services.WithCapacityCheck(cfg.EnforceRoomCapacity),
	)
	availabilityService := services.NewAvailabilityService(db)
	roomService := services.NewRoomService(db)
	hotelService := services.NewHotelService(db)

	router := routes.SetupRouter(routes.Deps{
		Bookings:    controllers.NewBookingController(bookingService, availabilityService, roomService),
		Rooms:       controllers.NewRoomController(roomService),
		Hotels:      controllers.NewHotelController(hotelService),
		Health:      controllers.NewHealthController(db),
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		Redis:       rdb,
		Logger:      logger,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
