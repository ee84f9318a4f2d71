package routers

import (
	"fmt"
	"time"

	"aidentify-service/internal/app/config"
	"aidentify-service/internal/app/delivery/http/middlewares"
	"aidentify-service/internal/app/services/core/activities"
	"aidentify-service/internal/app/services/core/analysis"
	"aidentify-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	analysisController *analysis.AnalysisController,
	activityController *activities.ActivityController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/analysis", func(r chi.Router) {
				attachAnalysisRoutes(r, middlewares, analysisController)
			})

			r.Route("/activities", func(r chi.Router) {
				attachActivityRoutes(r, middlewares, activityController)
			})
		})
	})
}
