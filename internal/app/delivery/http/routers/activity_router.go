package routers

import (
	"aidentify-service/internal/app/delivery/http/middlewares"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/app/services/core/activities"

	"github.com/go-chi/chi/v5"
)

func attachActivityRoutes(router chi.Router, middlewares *middlewares.Middlewares, activityController *activities.ActivityController) {
	router.With(middlewares.Authenticate, middlewares.RequireRoles(models.RoleAdmin)).
		Get("/", activityController.List)
}
