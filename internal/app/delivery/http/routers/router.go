package routers

import (
	"fmt"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/delivery/http/middlewares"
	"nutrisurvey-service/internal/app/services/core/auth"
	"nutrisurvey-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	reportController *reports.ReportController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})
		})
	})

	// Everything outside the API prefix is the guarded page surface,
	// forwarded to the frontend origin once the access rules pass.
	router.NotFound(middlewares.PageGuard(middlewares.Bridge(internalConfig.App.FrontendBaseURL)).ServeHTTP)
}
