// Package router contains routing setup for the HTTP delivery.
package router

import (
	"eventer/internal/delivery/http/middleware"
	"eventer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	EventHandler   *handler.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	eventHandler   *handler.EventHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		eventHandler:   params.EventHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Signup, login and the health check are public; everything else
// requires a valid Bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/status", handler.HealthCheck)

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("", r.userHandler.GetUsers, r.authMiddleware.Authenticate)
	}

	// Profile routes that require authentication
	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.POST("", r.profileHandler.CompleteProfile)
	}

	// Event routes that require authentication
	eventGroup := e.Group("/events")
	eventGroup.Use(r.authMiddleware.Authenticate)
	{
		eventGroup.GET("", r.eventHandler.GetEvents)
		eventGroup.POST("", r.eventHandler.AddEvent)
		eventGroup.GET("/participant/:userName/joined", r.eventHandler.GetJoinedEvents)
		eventGroup.GET("/:id", r.eventHandler.GetEvent)
		eventGroup.PUT("/:id", r.eventHandler.EditEvent)
		eventGroup.DELETE("/:id", r.eventHandler.DeleteEvent)
		eventGroup.POST("/:id/join", r.eventHandler.JoinEvent)
		eventGroup.GET("/:id/participants", r.eventHandler.GetEventParticipants)
	}
}
