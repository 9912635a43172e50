package surveysessions

import (
	"context"
	"nutrisurvey-service/internal/app/models"
)

type SurveySessionRepository interface {
	FindAll(ctx context.Context, search string) ([]models.SurveySession, error)
	FindPage(ctx context.Context, search string, page, size int) ([]models.SurveySession, int64, error)
	FindByID(ctx context.Context, sessionID string) (*models.SurveySession, error)
}
