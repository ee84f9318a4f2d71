package routers

import (
	"aidentify-service/internal/app/delivery/http/middlewares"
	"aidentify-service/internal/app/models"
	"aidentify-service/internal/app/services/core/analysis"

	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analysis.AnalysisController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireCapability(models.CapabilityAnalyze)).
		Post("/image", analysisController.SelectImage)
	router.With(middlewares.RequireCapability(models.CapabilityAnalyze)).
		Post("/actions/{action}", analysisController.RunAction)
	router.With(middlewares.RequireCapability(models.CapabilityViewReports)).
		Get("/result", analysisController.CurrentResult)
	router.With(middlewares.RequireCapability(models.CapabilityViewReports)).
		Post("/report", analysisController.RequestReport)
	router.With(middlewares.RequireCapability(models.CapabilityAnalyze)).
		Post("/record", analysisController.RequestSaveRecord)
}
