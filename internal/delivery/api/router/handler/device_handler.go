package handler

import (
	"log/slog"
	"net/http"
	"time"

	"georemind/internal/delivery/api/response"
	deliverycontext "georemind/internal/delivery/context"
	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/errors"
	"georemind/internal/infra/location"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const errorCodePermissionDenied = "permission_denied"

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Provider *location.PushProvider
	Logger   *slog.Logger
}

// DeviceHandler receives positions, sensor failures and permission changes from the device
type DeviceHandler struct {
	provider *location.PushProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		provider: params.Provider,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ReportLocationRequest is a single position fix. A missing timestamp means now.
type ReportLocationRequest struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportErrorRequest describes a device-side location failure
type ReportErrorRequest struct {
	Code    string `json:"code" validate:"omitempty,oneof=permission_denied unavailable timeout"`
	Message string `json:"message" validate:"required,max=500"`
}

// PermissionsRequest is the OS grant state reported by the device
type PermissionsRequest struct {
	Foreground *bool `json:"foreground" validate:"required"`
	Background *bool `json:"background" validate:"required"`
}

// PermissionsResponse is the grant state currently known to the provider
type PermissionsResponse struct {
	Foreground bool `json:"foreground"`
	Background bool `json:"background"`
}

// LocationAcceptedResponse reports how many engine subscriptions received the fix
type LocationAcceptedResponse struct {
	Delivered int `json:"delivered"`
}

// ReportLocation feeds a device position into the location provider
func (h *DeviceHandler) ReportLocation(c echo.Context) error {
	var req ReportLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	position := entity.Position{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: req.Timestamp,
	}
	if position.Timestamp.IsZero() {
		position.Timestamp = h.now()
	}

	delivered := h.provider.Publish(position)

	return response.Success(c, http.StatusAccepted, LocationAcceptedResponse{Delivered: delivered})
}

// ReportError forwards a sensor or permission failure to the engine feed
func (h *DeviceHandler) ReportError(c echo.Context) error {
	var req ReportErrorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid error report")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var reported error
	if req.Code == errorCodePermissionDenied {
		reported = domainerrors.ErrLocationPermissionDenied.WithDetails(req.Message)
	} else {
		reported = errors.New(req.Message)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Device reported location failure",
		slog.String("code", req.Code),
		slog.String("message", req.Message),
	)
	h.provider.ReportError(reported)

	return c.NoContent(http.StatusAccepted)
}

func (h *DeviceHandler) GetPermissions(c echo.Context) error {
	foreground, background := h.provider.Permissions()

	return response.Success(c, http.StatusOK, PermissionsResponse{Foreground: foreground, Background: background})
}

// UpdatePermissions records the grant state; a revocation is pushed to the engine as a feed error
func (h *DeviceHandler) UpdatePermissions(c echo.Context) error {
	var req PermissionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid permissions input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	h.provider.SetPermissions(*req.Foreground, *req.Background)

	return response.Success(c, http.StatusOK, PermissionsResponse{Foreground: *req.Foreground, Background: *req.Background})
}
