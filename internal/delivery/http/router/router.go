// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler       *handler.AccountHandler
	AddressHandler       *handler.AddressHandler
	PasswordResetHandler *handler.PasswordResetHandler
	UploadHandler        *handler.UploadHandler
	AuthMiddleware       *middleware.AuthMiddleware
	RequestIDMiddleware  *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler       *handler.AccountHandler
	addressHandler       *handler.AddressHandler
	passwordResetHandler *handler.PasswordResetHandler
	uploadHandler        *handler.UploadHandler
	authMiddleware       *middleware.AuthMiddleware
	requestIDMiddleware  *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:       params.AccountHandler,
		addressHandler:       params.AddressHandler,
		passwordResetHandler: params.PasswordResetHandler,
		uploadHandler:        params.UploadHandler,
		authMiddleware:       params.AuthMiddleware,
		requestIDMiddleware:  params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/user")
	{
		// Public routes
		userGroup.POST("/register", r.accountHandler.Register)
		userGroup.POST("/login", r.accountHandler.Login)
		userGroup.GET("/list/:page", r.accountHandler.ListUsers)
		userGroup.POST("/forgot_password", r.passwordResetHandler.ForgotPassword)
		userGroup.POST("/verify_reset_password/:passwordResetToken", r.passwordResetHandler.VerifyResetPassword)

		// Session-token protected routes
		userGroup.GET("/data", r.accountHandler.GetUser, r.authMiddleware.Authenticate)
		userGroup.DELETE("/data", r.accountHandler.DeleteUser, r.authMiddleware.Authenticate)
		userGroup.POST("/address", r.addressHandler.AddAddress, r.authMiddleware.Authenticate)
		userGroup.DELETE("/address", r.addressHandler.RemoveAddresses, r.authMiddleware.Authenticate)
		userGroup.POST("/profile_image", r.uploadHandler.UploadProfileImage, r.authMiddleware.Authenticate)

		// Keep the by-id lookup last so it does not shadow the named routes.
		userGroup.GET("/:id", r.accountHandler.GetUserByID)
	}
}
