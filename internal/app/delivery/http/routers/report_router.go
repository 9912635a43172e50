package routers

import (
	"nutrisurvey-service/internal/app/delivery/http/middlewares"
	"nutrisurvey-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.Use(middlewares.AuthMiddleware)

	router.Get("/respondents", reportController.ListRespondents)
	router.Get("/respondents/{sessionID}", reportController.RespondentDetail)
	router.Get("/stats", reportController.StressStats)
	router.Get("/stats-detail", reportController.StatsDetail)
	router.Get("/monthly", reportController.MonthlyAverages)
	router.Get("/export/csv", reportController.ExportCSV)
	router.Get("/export/xlsx", reportController.ExportXLSX)
}
