package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/delivery/http/middlewares"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/app/services/core/reports"
	"nutrisurvey-service/internal/pkg/dto/responses"
	"nutrisurvey-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) ListRespondents(ctx context.Context, search string, page, size int) (*responses.RespondentList, error) {
	args := m.Called(ctx, search, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RespondentList), args.Error(1)
}

func (m *MockReportUsecase) RespondentDetail(ctx context.Context, sessionID string) (*responses.RespondentDetail, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RespondentDetail), args.Error(1)
}

func (m *MockReportUsecase) StressStats(ctx context.Context, search string) (*responses.StressStats, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.StressStats), args.Error(1)
}

func (m *MockReportUsecase) StatsDetail(ctx context.Context, topic string) (*responses.StatsDetail, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.StatsDetail), args.Error(1)
}

func (m *MockReportUsecase) MonthlyAverages(ctx context.Context, topic string) (*responses.MonthlyAverages, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.MonthlyAverages), args.Error(1)
}

func (m *MockReportUsecase) ExportCSV(ctx context.Context, search string) (string, []byte, error) {
	args := m.Called(ctx, search)
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

func (m *MockReportUsecase) ExportXLSX(ctx context.Context, search string) (string, []byte, error) {
	args := m.Called(ctx, search)
	return args.String(0), args.Get(1).([]byte), args.Error(2)
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

func setupReportRouter(t *testing.T, mockUsecase *MockReportUsecase, mockRedis *MockRedisRepository) (*chi.Mux, string) {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
	}

	token, err := utils.GenerateJWT("session-1", internalConfig.JWT.Secret, time.Hour)
	require.NoError(t, err)

	middlewareInstance := middlewares.NewMiddlewares(logger, mockRedis, internalConfig)
	reportController := reports.NewReportController(logger, mockUsecase)

	router := chi.NewRouter()
	router.Route("/admin", func(r chi.Router) {
		attachReportRoutes(r, middlewareInstance, reportController)
	})
	return router, token
}

func TestReportRouter_ListRespondents(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	mockRedis := new(MockRedisRepository)
	router, token := setupReportRouter(t, mockUsecase, mockRedis)

	t.Run("authenticated request returns the list", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").
			Return(&models.Session{ID: "session-1", Email: "admin@example.com"}, nil).Once()
		mockUsecase.On("ListRespondents", mock.Anything, "med", 2, 20).
			Return(&responses.RespondentList{
				Meta:  responses.RespondentListMeta{TotalUsers: 41, Page: 2, Size: 20, Count: 20},
				Items: []responses.RespondentListItem{},
			}, nil).Once()

		req := httptest.NewRequest("GET", "/admin/respondents?q=med&page=2&size=20", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
		mockUsecase.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/respondents", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired session returns 401", func(t *testing.T) {
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(nil, nil).Once()

		req := httptest.NewRequest("GET", "/admin/respondents", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestReportRouter_ExportCSV(t *testing.T) {
	mockUsecase := new(MockReportUsecase)
	mockRedis := new(MockRedisRepository)
	router, token := setupReportRouter(t, mockUsecase, mockRedis)

	mockRedis.On("GetSession", mock.Anything, "session-1").
		Return(&models.Session{ID: "session-1"}, nil).Once()
	mockUsecase.On("ExportCSV", mock.Anything, "med").
		Return("nutritional_export_2025-08-31-14-02-59.csv", []byte("date_only\r\n"), nil).Once()

	req := httptest.NewRequest("GET", "/admin/export/csv?q=med", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="nutritional_export_2025-08-31-14-02-59.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "date_only\r\n", rr.Body.String())
	mockUsecase.AssertExpectations(t)
}
