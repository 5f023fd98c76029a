package middleware

import (
	"log/slog"
	"strings"

	"georemind/internal/delivery/api/response"
	deliverycontext "georemind/internal/delivery/context"
	"georemind/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService `optional:"true"`
	Logger       *slog.Logger
}

// AuthMiddleware authenticates devices with a bearer token.
// Without a TokenService every request is let through.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	if params.TokenService == nil {
		params.Logger.Warn("Device authentication disabled, no token secret configured")
	}

	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Authenticate validates the device token and records the device id on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	if m.tokenSvc == nil {
		return next
	}

	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Device token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "Invalid or expired token")
		}

		deliverycontext.SetDeviceID(c, claims.DeviceID)

		return next(c)
	}
}
