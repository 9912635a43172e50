package auth

import (
	"context"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/pkg/dto/requests"
	"nutrisurvey-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error
	ResendOTP(ctx context.Context, request *requests.ResendOTP) error
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.AdminUser) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, userID string) (*models.AdminUser, error)
	UpdateUser(ctx context.Context, user *models.AdminUser) error
}
