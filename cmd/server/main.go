package main

import (
	"log"
	"net/http"

	_ "eventsnow/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventsnow/internal/auth"
	"eventsnow/internal/cache"
	"eventsnow/internal/config"
	"eventsnow/internal/db"
	"eventsnow/internal/handler"
	"eventsnow/internal/model"
	"eventsnow/internal/repository"
	"eventsnow/internal/router"
	"eventsnow/internal/service"
)

// @title Events Now Booking API
// @version 1.0
// @description Event booking backend with user registration, token authentication, and event uploads.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
// @description Raw signed token issued by /users/login.
func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET_KEY is not set, token issuance and protected routes will answer 500")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models. The unique indexes on user email and
	// event name are what make concurrent duplicate registrations safe.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Event{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	eventService := service.NewEventService(eventRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)

	// Register routes
	router.Register(e, cfg, tokenService, userHandler, eventHandler)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
