package handler

import (
	"context"
	"log/slog"
	"net/http"

	"georemind/internal/delivery/api/response"
	"georemind/internal/domain/entity"
	"georemind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	Engine usecase.ReminderEngine
	Logger *slog.Logger
}

// ReminderHandler manages location reminders
type ReminderHandler struct {
	engine usecase.ReminderEngine
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		engine: params.Engine,
		logger: params.Logger,
	}
}

// CreateReminderRequest is the body of POST /reminders.
// Sending an existing id replaces that reminder.
type CreateReminderRequest struct {
	ID        string         `json:"id" validate:"omitempty,max=64"`
	Latitude  float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64        `json:"longitude" validate:"gte=-180,lte=180"`
	Radius    float64        `json:"radius" validate:"gt=0"`
	Title     string         `json:"title" validate:"required,max=200"`
	Message   string         `json:"message" validate:"max=2000"`
	Payload   map[string]any `json:"payload"`
}

// CreateReminder registers a reminder, starting the engine when it is stopped
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid reminder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	reminder, err := h.engine.AddReminder(c.Request().Context(), entity.ReminderSpec{
		ID:        req.ID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		Title:     req.Title,
		Message:   req.Message,
		Payload:   req.Payload,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reminder)
}

func (h *ReminderHandler) GetReminder(c echo.Context) error {
	reminder, err := h.engine.GetReminder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}

// DeleteReminder is idempotent; removing the last active reminder stops the engine
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	if err := h.engine.RemoveReminder(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReminderHandler) ActivateReminder(c echo.Context) error {
	return h.update(c, h.engine.ActivateReminder)
}

func (h *ReminderHandler) DeactivateReminder(c echo.Context) error {
	return h.update(c, h.engine.DeactivateReminder)
}

func (h *ReminderHandler) ExpireReminder(c echo.Context) error {
	return h.update(c, h.engine.ExpireReminder)
}

func (h *ReminderHandler) update(c echo.Context, fn func(ctx context.Context, id string) error) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := fn(ctx, id); err != nil {
		return response.HandleAppError(c, err)
	}

	reminder, err := h.engine.GetReminder(ctx, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder)
}
