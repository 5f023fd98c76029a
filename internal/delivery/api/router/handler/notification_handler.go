package handler

import (
	"net/http"

	"georemind/internal/delivery/api/response"
	"georemind/internal/infra/notification"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	Center *notification.LocalCenter `optional:"true"`
}

// NotificationHandler lists notifications shown by the in-process center
type NotificationHandler struct {
	center *notification.LocalCenter
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{center: params.Center}
}

// ListNotifications is only available when notifications are not pushed to a device
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	if h.center == nil {
		return response.NotFound(c, "NOTIFICATION_CENTER_UNAVAILABLE", "Notifications are delivered to the device")
	}

	return response.Success(c, http.StatusOK, h.center.List())
}
