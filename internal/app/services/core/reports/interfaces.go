package reports

import (
	"context"
	"nutrisurvey-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	ListRespondents(ctx context.Context, search string, page, size int) (*responses.RespondentList, error)
	RespondentDetail(ctx context.Context, sessionID string) (*responses.RespondentDetail, error)
	StressStats(ctx context.Context, search string) (*responses.StressStats, error)
	StatsDetail(ctx context.Context, topic string) (*responses.StatsDetail, error)
	MonthlyAverages(ctx context.Context, topic string) (*responses.MonthlyAverages, error)
	ExportCSV(ctx context.Context, search string) (fileName string, data []byte, err error)
	ExportXLSX(ctx context.Context, search string) (fileName string, data []byte, err error)
}
