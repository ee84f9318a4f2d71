package routers

import (
	"aidentify-service/internal/app/delivery/http/middlewares"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/profile", authController.Profile)
	router.With(middlewares.Authenticate).Post("/change-password", authController.ChangePassword)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(models.RoleAdmin)).
		Post("/register", authController.Register)
}
