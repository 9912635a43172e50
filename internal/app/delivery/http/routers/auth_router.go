package routers

import (
	"nutrisurvey-service/internal/app/delivery/http/middlewares"
	"nutrisurvey-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.Post("/verify-otp", authController.VerifyOTP)
	router.Post("/resend-otp", authController.ResendOTP)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.AuthMiddleware).Post("/logout", authController.Logout)
}
