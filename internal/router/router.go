package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eventsnow/internal/auth"
	"eventsnow/internal/config"
	"eventsnow/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	userHandler *handler.UserHandler,
	eventHandler *handler.EventHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewCustomValidator()

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, `<h3>Welcome to Events Now Booking Application Backend</h3>`)
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	verifier := auth.Verifier(tokens)

	// User routes
	users := e.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.GET("/me", userHandler.Me, verifier)

	// Event routes
	events := e.Group("/events")
	events.POST("/upload", eventHandler.Upload, verifier)
	events.GET("/free", eventHandler.ListFree)
	events.GET("/pro", eventHandler.ListPro)
	events.GET("/:id", eventHandler.GetByID)
}
