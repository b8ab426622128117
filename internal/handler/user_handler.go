package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"eventsnow/internal/auth"
	apperrors "eventsnow/internal/errors"
	"eventsnow/internal/service"
)

// UserHandler handles registration, login, and identity endpoints.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password_policy"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("Invalid Request Body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse(err))
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return h.fail(c, "register", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Registration is Success"})
}

// Login godoc
// @Summary Login and receive a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("Invalid Request Body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse(err))
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, "login", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Login is Success", "token": token})
}

// Me godoc
// @Summary Fetch the authenticated user's record
// @Tags users
// @Produce json
// @Security TokenAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims := auth.ClaimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(apperrors.ErrNoToken.Error()))
	}

	user, err := h.authService.GetUser(c.Request().Context(), claims.ID)
	if err != nil {
		return h.fail(c, "me", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// fail translates a domain error into the error envelope. Unexpected causes
// are logged server-side and answered with an opaque 500.
func (h *UserHandler) fail(c echo.Context, op string, err error) error {
	status := apperrors.StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
	}
	return c.JSON(status, apperrors.ResponseFor(err))
}
