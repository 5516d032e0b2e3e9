package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"profilesvc/internal/handler"
	"profilesvc/internal/logger"
	"profilesvc/internal/validation"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	User    *handler.UserHandler
	Profile *handler.ProfileHandler
	Health  *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, log zerolog.Logger, h Handlers) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = validation.New()

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/register/", h.User.Register)
	e.POST("/create-profile/", h.Profile.CreateProfile)
	e.GET("/user/:user_id", h.User.GetUser)
}
