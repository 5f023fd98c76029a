package handler

import (
	"context"
	"log/slog"
	"net/http"

	"georemind/internal/delivery/api/response"
	"georemind/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EngineHandlerParams holds dependencies for EngineHandler, injected by Fx.
type EngineHandlerParams struct {
	fx.In

	Engine usecase.ReminderEngine
	Logger *slog.Logger
}

// EngineHandler exposes the engine lifecycle
type EngineHandler struct {
	engine usecase.ReminderEngine
	logger *slog.Logger
}

// NewEngineHandler is the constructor for EngineHandler
func NewEngineHandler(params EngineHandlerParams) *EngineHandler {
	return &EngineHandler{
		engine: params.Engine,
		logger: params.Logger,
	}
}

// GetServiceInfo returns the current engine snapshot
func (h *EngineHandler) GetServiceInfo(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.engine.ServiceInfo(c.Request().Context()))
}

func (h *EngineHandler) Start(c echo.Context) error {
	return h.transition(c, h.engine.Start)
}

func (h *EngineHandler) Stop(c echo.Context) error {
	return h.transition(c, h.engine.Stop)
}

func (h *EngineHandler) Pause(c echo.Context) error {
	return h.transition(c, h.engine.Pause)
}

func (h *EngineHandler) Resume(c echo.Context) error {
	return h.transition(c, h.engine.Resume)
}

// ForceStop stops tracking and drops every reminder
func (h *EngineHandler) ForceStop(c echo.Context) error {
	return h.transition(c, h.engine.ForceStop)
}

// EmergencyStop resets the engine without cancelling notifications
func (h *EngineHandler) EmergencyStop(c echo.Context) error {
	return h.transition(c, func(context.Context) error {
		h.engine.EmergencyStop()

		return nil
	})
}

// transition runs fn and answers with the resulting snapshot
func (h *EngineHandler) transition(c echo.Context, fn func(context.Context) error) error {
	ctx := c.Request().Context()
	if err := fn(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.engine.ServiceInfo(ctx))
}
