package auth

import (
	"context"
	"testing"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/dto/requests"
	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.AdminUser) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.AdminUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockMailerQueue struct {
	mock.Mock
}

func (m *MockMailerQueue) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			SessionExpTimeInHour:      12,
			OTPExpTimeInMinute:        10,
			OTPResendPerMinute:        1,
			ResetTokenExpTimeInMinute: 30,
			FrontendBaseURL:           "http://localhost:3000",
		},
		JWT: config.JWT{Secret: "test-secret"},
	}
}

func verifiedUser(password string) *models.AdminUser {
	hash, _ := utils.HashPassword(password)
	now := time.Now().UTC()
	return &models.AdminUser{
		ID:              "507f1f77bcf86cd799439011",
		Email:           "admin@example.com",
		PasswordHash:    hash,
		EmailVerifiedAt: &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials create a session and a token wrapping it", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		mailer := new(MockMailerQueue)
		cfg := testInternalConfig()
		uc := NewAuthUsecase(userRepo, redisRepo, mailer, cfg)

		userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(verifiedUser("supersecret"), nil)
		redisRepo.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session"), 12*time.Hour).Return(nil)

		result, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admin@example.com",
			Password: "supersecret",
		})
		require.NoError(t, err)

		sessionID, err := utils.ParseJWT(result.Token, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		redisRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected without leaking which part failed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockRedisRepository), new(MockMailerQueue), testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(verifiedUser("supersecret"), nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admin@example.com",
			Password: "wrong",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("unverified email is rejected with a distinct error", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockRedisRepository), new(MockMailerQueue), testInternalConfig())

		user := verifiedUser("supersecret")
		user.EmailVerifiedAt = nil
		userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admin@example.com",
			Password: "supersecret",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("matching code marks the email verified and burns the code", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		uc := NewAuthUsecase(userRepo, redisRepo, new(MockMailerQueue), testInternalConfig())

		user := verifiedUser("supersecret")
		user.EmailVerifiedAt = nil
		redisRepo.On("Get", mock.Anything, "otp:admin@example.com").Return("123456", nil)
		userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)
		userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.AdminUser) bool {
			return u.EmailVerifiedAt != nil
		})).Return(nil)
		redisRepo.On("Delete", mock.Anything, "otp:admin@example.com").Return(nil)

		err := uc.VerifyOTP(context.Background(), &requests.VerifyOTP{
			Email: "admin@example.com",
			Code:  "123456",
		})
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		uc := NewAuthUsecase(new(MockUserRepository), redisRepo, new(MockMailerQueue), testInternalConfig())

		redisRepo.On("Get", mock.Anything, "otp:admin@example.com").Return("123456", nil)

		err := uc.VerifyOTP(context.Background(), &requests.VerifyOTP{
			Email: "admin@example.com",
			Code:  "999999",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("missing code means it expired", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		uc := NewAuthUsecase(new(MockUserRepository), redisRepo, new(MockMailerQueue), testInternalConfig())

		redisRepo.On("Get", mock.Anything, "otp:admin@example.com").Return("", nil)

		err := uc.VerifyOTP(context.Background(), &requests.VerifyOTP{
			Email: "admin@example.com",
			Code:  "123456",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)
	})
}

func TestResendOTPThrottled(t *testing.T) {
	userRepo := new(MockUserRepository)
	redisRepo := new(MockRedisRepository)
	mailer := new(MockMailerQueue)
	uc := NewAuthUsecase(userRepo, redisRepo, mailer, testInternalConfig())

	user := verifiedUser("supersecret")
	user.EmailVerifiedAt = nil
	userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)
	redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendEmail", mock.Anything, mock.Anything).Return(nil)

	request := &requests.ResendOTP{Email: "admin@example.com"}

	err := uc.ResendOTP(context.Background(), request)
	require.NoError(t, err)

	// Second resend inside the same minute hits the limiter.
	err = uc.ResendOTP(context.Background(), request)
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
}

func TestForgotPasswordUnknownEmailStaysQuiet(t *testing.T) {
	userRepo := new(MockUserRepository)
	mailer := new(MockMailerQueue)
	uc := NewAuthUsecase(userRepo, new(MockRedisRepository), mailer, testInternalConfig())

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	err := uc.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "ghost@example.com"})
	require.NoError(t, err)
	mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestResetPassword(t *testing.T) {
	t.Run("valid token updates the password and burns the token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		uc := NewAuthUsecase(userRepo, redisRepo, new(MockMailerQueue), testInternalConfig())

		user := verifiedUser("oldpassword")
		redisRepo.On("Get", mock.Anything, "pwreset:token-1").Return(`"admin@example.com"`, nil)
		userRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)
		userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.AdminUser) bool {
			return utils.CheckPasswordHash("newpassword", u.PasswordHash)
		})).Return(nil)
		redisRepo.On("Delete", mock.Anything, "pwreset:token-1").Return(nil)

		err := uc.ResetPassword(context.Background(), &requests.ResetPassword{
			Token:           "token-1",
			Password:        "newpassword",
			ConfirmPassword: "newpassword",
		})
		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})

	t.Run("missing token means it expired", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		uc := NewAuthUsecase(new(MockUserRepository), redisRepo, new(MockMailerQueue), testInternalConfig())

		redisRepo.On("Get", mock.Anything, "pwreset:token-x").Return("", nil)

		err := uc.ResetPassword(context.Background(), &requests.ResetPassword{
			Token:           "token-x",
			Password:        "newpassword",
			ConfirmPassword: "newpassword",
		})
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)
	})
}
