package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/zanzibarboats/booking-system/docs"
	"github.com/zanzibarboats/booking-system/internal/api/handler"
	"github.com/zanzibarboats/booking-system/internal/api/middleware"
	"github.com/zanzibarboats/booking-system/internal/core/ports"
	"github.com/zanzibarboats/booking-system/internal/core/service"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/cache"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/config"
	mongostore "github.com/zanzibarboats/booking-system/internal/infrastructure/db/mongo"
	rediscache "github.com/zanzibarboats/booking-system/internal/infrastructure/db/redis"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/http/handlers"
	"github.com/zanzibarboats/booking-system/internal/infrastructure/tables"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Storage ---
	store := mongostore.NewTableStore(db)

	var tableCache ports.TableCache
	if cfg.Cache.Backend == "redis" && rdb != nil {
		tableCache = rediscache.NewTableCache(rdb, store, cfg.Cache.TTL, log)
	} else {
		tableCache = cache.NewTableCache(store, cfg.Cache.TTL)
	}

	bookingRepo := tables.NewBookingRepository(store, tableCache)
	userRepo := tables.NewUserRepository(store, tableCache)
	boatRepo := tables.NewBoatRepository(store, tableCache)
	tripTypeRepo := tables.NewTripTypeRepository(store, tableCache)

	// --- Services ---
	access := service.NewAccessControl()
	bookingService := service.NewBookingService(bookingRepo, boatRepo, tripTypeRepo, access, log)
	userService := service.NewUserService(userRepo, access, log)
	boatService := service.NewBoatService(boatRepo, access, log)
	tripTypeService := service.NewTripTypeService(tripTypeRepo, access, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	messageService := service.NewMessageService(bookingRepo, boatRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	userHandler := handler.NewUserHandler(userService)
	boatHandler := handler.NewBoatHandler(boatService)
	tripTypeHandler := handler.NewTripTypeHandler(tripTypeService)
	messageHandler := handler.NewMessageHandler(messageService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, userRepo)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/v1/trip-types", tripTypeHandler.List)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/bookings", bookingHandler.List)
	v1.POST("/bookings", bookingHandler.Create)
	v1.PUT("/bookings/:id", bookingHandler.Update)
	v1.DELETE("/bookings/:id", bookingHandler.Archive)

	v1.GET("/users", userHandler.List)
	v1.POST("/users", userHandler.Create)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Deactivate)

	v1.GET("/boats", boatHandler.List)
	v1.POST("/boats", boatHandler.Create)
	v1.PUT("/boats/:id", boatHandler.Update)
	v1.DELETE("/boats/:id", boatHandler.Deactivate)

	v1.POST("/trip-types", tripTypeHandler.Create)
	v1.PUT("/trip-types/:type", tripTypeHandler.Update)
	v1.DELETE("/trip-types/:type", tripTypeHandler.Deactivate)

	v1.GET("/messages/driver", messageHandler.Driver)
	v1.GET("/messages/staff", messageHandler.Staff)

	return e
}
