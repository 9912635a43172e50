package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/app/services/shared/mailerqueue"
	"nutrisurvey-service/internal/app/services/shared/redis"
	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/dto/requests"
	"nutrisurvey-service/internal/pkg/dto/responses"
	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/utils"

	"golang.org/x/time/rate"
)

type authUsecase struct {
	UserRepository  UserRepository
	RedisRepository redis.RedisRepository
	MailerQueue     mailerqueue.MailerQueue
	InternalConfig  *config.InternalConfig

	resendMu       sync.Mutex
	resendLimiters map[string]*rate.Limiter
}

func NewAuthUsecase(
	userMongoRepository UserRepository,
	redisRepository redis.RedisRepository,
	mailerQueue mailerqueue.MailerQueue,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		MailerQueue:     mailerQueue,
		InternalConfig:  internalConfig,
		resendLimiters:  make(map[string]*rate.Limiter),
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil && existingUser.EmailConfirmed() {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	var userID string
	if existingUser != nil {
		// Unconfirmed account registering again: replace the password and
		// restart verification instead of creating a duplicate.
		existingUser.PasswordHash = hashedPassword
		existingUser.UpdatedAt = now
		err = uc.UserRepository.UpdateUser(ctx, existingUser)
		if err != nil {
			return nil, err
		}
		userID = existingUser.ID
	} else {
		userModel := &models.AdminUser{
			Email:        request.Email,
			PasswordHash: hashedPassword,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		userID, err = uc.UserRepository.CreateUser(ctx, userModel)
		if err != nil {
			return nil, err
		}
	}

	err = uc.sendOTP(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	return &responses.Register{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if !user.EmailConfirmed() {
		return nil, exceptions.ErrEmailNotConfirmed(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	sessionModel := &models.Session{
		ID:        utils.GenerateRequestID(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}
	err = uc.RedisRepository.CreateSession(ctx, sessionModel, sessionExpiry)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionModel.ID, uc.InternalConfig.JWT.Secret, sessionExpiry)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{
		Token:     token,
		ExpiresAt: time.Now().Add(sessionExpiry).Unix(),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) error {
	storedCode, err := uc.RedisRepository.Get(ctx, constvars.RedisOTPKeyPrefix+request.Email)
	if err != nil {
		return err
	}
	if storedCode == "" {
		return exceptions.ErrOTPExpired(nil)
	}
	// The stored value went through the JSON marshal in the redis layer.
	if trimQuotes(storedCode) != request.Code {
		return exceptions.ErrOTPInvalid(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	now := time.Now().UTC()
	user.EmailVerifiedAt = &now
	user.UpdatedAt = now
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return err
	}

	return uc.RedisRepository.Delete(ctx, constvars.RedisOTPKeyPrefix+request.Email)
}

func (uc *authUsecase) ResendOTP(ctx context.Context, request *requests.ResendOTP) error {
	if !uc.resendLimiter(request.Email).Allow() {
		return exceptions.ErrOTPResendThrottled(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	if user.EmailConfirmed() {
		return nil
	}

	return uc.sendOTP(ctx, request.Email)
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	// Unknown emails get the same success response so the endpoint cannot
	// be used to probe which accounts exist.
	if user == nil {
		return nil
	}

	resetToken := utils.GenerateResetToken()
	resetExpiry := time.Duration(uc.InternalConfig.App.ResetTokenExpTimeInMinute) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisResetTokenKeyPrefix+resetToken, user.Email, resetExpiry)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/newpassword?token=%s", uc.InternalConfig.App.FrontendBaseURL, resetToken)
	return uc.MailerQueue.SendEmail(ctx, &requests.EmailPayload{
		To:      user.Email,
		Subject: "Reset your password",
		Body:    fmt.Sprintf("Open the link below to choose a new password. The link expires in %d minutes.\n\n%s", uc.InternalConfig.App.ResetTokenExpTimeInMinute, resetLink),
	})
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	email, err := uc.RedisRepository.Get(ctx, constvars.RedisResetTokenKeyPrefix+request.Token)
	if err != nil {
		return err
	}
	if email == "" {
		return exceptions.ErrResetTokenExpired(nil)
	}

	// The stored value went through the JSON marshal in the redis layer.
	email = trimQuotes(email)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now().UTC()
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return err
	}

	return uc.RedisRepository.Delete(ctx, constvars.RedisResetTokenKeyPrefix+request.Token)
}

func (uc *authUsecase) sendOTP(ctx context.Context, email string) error {
	otpCode, err := utils.GenerateOTP()
	if err != nil {
		return exceptions.ErrTokenGenerate(err)
	}

	otpExpiry := time.Duration(uc.InternalConfig.App.OTPExpTimeInMinute) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisOTPKeyPrefix+email, otpCode, otpExpiry)
	if err != nil {
		return err
	}

	return uc.MailerQueue.SendEmail(ctx, &requests.EmailPayload{
		To:      email,
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", otpCode, uc.InternalConfig.App.OTPExpTimeInMinute),
	})
}

func (uc *authUsecase) resendLimiter(email string) *rate.Limiter {
	uc.resendMu.Lock()
	defer uc.resendMu.Unlock()

	limiter, ok := uc.resendLimiters[email]
	if !ok {
		perMinute := uc.InternalConfig.App.OTPResendPerMinute
		if perMinute < 1 {
			perMinute = 1
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
		uc.resendLimiters[email] = limiter
	}
	return limiter
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
