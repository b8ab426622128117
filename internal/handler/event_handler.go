package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "eventsnow/internal/errors"
	"eventsnow/internal/model"
	"eventsnow/internal/service"
)

// EventHandler handles event upload and lookup endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// UploadEventRequest represents an event upload request.
type UploadEventRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"required"`
	Price string `json:"price" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Info  string `json:"info" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=FREE PRO"`
}

// Upload godoc
// @Summary Upload an event
// @Tags events
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body UploadEventRequest true "Event data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/upload [post]
func (h *EventHandler) Upload(c echo.Context) error {
	var req UploadEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("Invalid Request Body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validationResponse(err))
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("Price must be a number"))
	}

	event := &model.Event{
		Name:  req.Name,
		Image: req.Image,
		Price: price,
		Date:  req.Date,
		Info:  req.Info,
		Type:  model.EventType(req.Type),
	}

	if _, err := h.eventService.Upload(c.Request().Context(), event); err != nil {
		return h.fail(c, "upload event", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Upload Event is Success"})
}

// ListFree godoc
// @Summary List all FREE events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/free [get]
func (h *EventHandler) ListFree(c echo.Context) error {
	return h.list(c, model.EventTypeFree)
}

// ListPro godoc
// @Summary List all PRO events
// @Tags events
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/pro [get]
func (h *EventHandler) ListPro(c echo.Context) error {
	return h.list(c, model.EventTypePro)
}

func (h *EventHandler) list(c echo.Context, eventType model.EventType) error {
	events, err := h.eventService.ListByType(c.Request().Context(), eventType)
	if err != nil {
		return h.fail(c, "list events", err)
	}
	if events == nil {
		events = []model.Event{}
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

// GetByID godoc
// @Summary Fetch a single event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.NewErrorResponse("Invalid Event ID"))
	}

	event, err := h.eventService.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "get event", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"events": event})
}

func (h *EventHandler) fail(c echo.Context, op string, err error) error {
	status := apperrors.StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
	}
	return c.JSON(status, apperrors.ResponseFor(err))
}
