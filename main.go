package main

import (
	"log"

	"github.com/classfit/class-booking/config"
	"github.com/classfit/class-booking/internal/auth"
	"github.com/classfit/class-booking/internal/handler"
	"github.com/classfit/class-booking/internal/middleware"
	"github.com/classfit/class-booking/internal/repository"
	"github.com/classfit/class-booking/internal/service"
	"github.com/classfit/class-booking/pkg/database"
	"github.com/classfit/class-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Optional broker: class/booking notifications are skipped, not required,
	// when no broker is configured.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	// Auth primitives
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, hasher, jwtManager)
	classSvc := service.NewClassService(classRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, classRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "class-booking"})
	})

	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewClassHandler(classSvc).RegisterRoutes(e, jwtManager)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, jwtManager)

	log.Printf("Class Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
