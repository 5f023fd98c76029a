// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"georemind/internal/delivery/api/middleware"
	"georemind/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EngineHandler       *handler.EngineHandler
	ReminderHandler     *handler.ReminderHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	engineHandler       *handler.EngineHandler
	reminderHandler     *handler.ReminderHandler
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		engineHandler:       params.EngineHandler,
		reminderHandler:     params.ReminderHandler,
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	engineGroup := e.Group("/engine", r.authMiddleware.Authenticate)
	{
		engineGroup.GET("", r.engineHandler.GetServiceInfo)
		engineGroup.POST("/start", r.engineHandler.Start)
		engineGroup.POST("/stop", r.engineHandler.Stop)
		engineGroup.POST("/pause", r.engineHandler.Pause)
		engineGroup.POST("/resume", r.engineHandler.Resume)
		engineGroup.POST("/force-stop", r.engineHandler.ForceStop)
		engineGroup.POST("/emergency-stop", r.engineHandler.EmergencyStop)
	}

	reminderGroup := e.Group("/reminders", r.authMiddleware.Authenticate)
	{
		reminderGroup.POST("", r.reminderHandler.CreateReminder)
		reminderGroup.GET("/:id", r.reminderHandler.GetReminder)
		reminderGroup.DELETE("/:id", r.reminderHandler.DeleteReminder)
		reminderGroup.POST("/:id/activate", r.reminderHandler.ActivateReminder)
		reminderGroup.POST("/:id/deactivate", r.reminderHandler.DeactivateReminder)
		reminderGroup.POST("/:id/expire", r.reminderHandler.ExpireReminder)
	}

	// Device-facing routes
	auth := r.authMiddleware.Authenticate
	e.POST("/locations", r.deviceHandler.ReportLocation, auth)
	e.POST("/locations/errors", r.deviceHandler.ReportError, auth)
	e.GET("/permissions", r.deviceHandler.GetPermissions, auth)
	e.PUT("/permissions", r.deviceHandler.UpdatePermissions, auth)
	e.GET("/notifications", r.notificationHandler.ListNotifications, auth)
}
