package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nutrisurvey-service/internal/app/config"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/app/services/core/surveysessions"
	"nutrisurvey-service/internal/app/services/shared/storage"
	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/dto/responses"
	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/export"
	"nutrisurvey-service/internal/pkg/survey"
	"nutrisurvey-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Topics served by the stats-detail and monthly endpoints. The three diet
// topics aggregate the per-group total scores; stress aggregates the ST-5 sum.
const (
	TopicSugar  = "sugar"
	TopicFat    = "fat"
	TopicSodium = "sodium"
	TopicStress = "stress"
)

var topicLabels = map[string]string{
	TopicSugar:  "Sugar intake",
	TopicFat:    "Fat intake",
	TopicSodium: "Sodium intake",
	TopicStress: "Stress",
}

type reportUsecase struct {
	SurveySessionRepository surveysessions.SurveySessionRepository
	ExportArchive           storage.ExportArchive
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewReportUsecase(
	surveySessionRepository surveysessions.SurveySessionRepository,
	exportArchive storage.ExportArchive,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReportUsecase {
	return &reportUsecase{
		SurveySessionRepository: surveySessionRepository,
		ExportArchive:           exportArchive,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

func (uc *reportUsecase) ListRespondents(ctx context.Context, search string, page, size int) (*responses.RespondentList, error) {
	sessions, total, err := uc.SurveySessionRepository.FindPage(ctx, search, page, size)
	if err != nil {
		return nil, err
	}

	items := make([]responses.RespondentListItem, 0, len(sessions))
	for _, session := range sessions {
		answerSet := session.AnswerSet()
		items = append(items, responses.RespondentListItem{
			UserID:     session.ID,
			Name:       respondentName(&session, answerSet),
			Email:      nil,
			Picture:    nil,
			SessionID:  session.ID,
			StartedAt:  formatTime(session.StartedAt),
			FinishedAt: formatTimePtr(session.FinishedAt()),
			Stress:     survey.StressScore(answerSet),
			Department: answerSet.Department,
		})
	}

	return &responses.RespondentList{
		Meta: responses.RespondentListMeta{
			TotalUsers: int(total),
			Page:       page,
			Size:       size,
			Count:      len(items),
		},
		Items: items,
	}, nil
}

func (uc *reportUsecase) RespondentDetail(ctx context.Context, sessionID string) (*responses.RespondentDetail, error) {
	session, err := uc.SurveySessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrRespondentNotFound(nil)
	}

	answerSet := session.AnswerSet()
	summary := responses.RespondentSummary{
		SessionID:   session.ID,
		FormID:      session.FormID,
		FormSlug:    session.FormSlug,
		Version:     session.FormVersion,
		StartedAt:   formatTime(session.StartedAt),
		FinishedAt:  formatTimePtr(session.FinishedAt()),
		IsCompleted: session.IsCompleted,
		Status:      session.Status,
		Progress:    session.Progress,
		Gender:      survey.MapGender(answerSet.Gender),
		YearLevel:   survey.MapYearLevel(answerSet.YearLevel),
		Age:         answerSet.Age,
		Department:  answerSet.Department,
		Stress:      survey.StressScore(answerSet),
		BMI:         answerSet.ComputedValue(constvars.ComputedKeyBMI),
		BSA:         answerSet.ComputedValue(constvars.ComputedKeyBSA),
		BMIStatus:   answerSet.ComputedValue(constvars.ComputedKeyBMIStatus),
		BSAStatus:   answerSet.ComputedValue(constvars.ComputedKeyBSAStatus),
	}

	return &responses.RespondentDetail{
		Summary: summary,
		Answers: survey.StripPIIMap(answerSet.Raw()),
	}, nil
}

func (uc *reportUsecase) StressStats(ctx context.Context, search string) (*responses.StressStats, error) {
	sessions, err := uc.SurveySessionRepository.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}

	distribution := map[string]int{
		survey.StressLevelLow:      0,
		survey.StressLevelModerate: 0,
		survey.StressLevelHigh:     0,
		survey.StressLevelSevere:   0,
	}
	items := make([]responses.StressStatsItem, 0, len(sessions))
	for _, session := range sessions {
		if session.Answers == nil {
			continue
		}
		answerSet := session.AnswerSet()
		score := survey.StressScore(answerSet)
		level := survey.StressLevel(score)
		distribution[level]++
		yearLevel := valueString(answerSet.YearLevel)
		if yearLevel == "" {
			yearLevel = "Unknown"
		}
		items = append(items, responses.StressStatsItem{
			ID:        session.ID,
			Score:     score,
			Level:     level,
			YearLevel: yearLevel,
		})
	}

	return &responses.StressStats{
		Total:        len(items),
		Distribution: distribution,
		Items:        items,
	}, nil
}

func (uc *reportUsecase) StatsDetail(ctx context.Context, topic string) (*responses.StatsDetail, error) {
	sessions, err := uc.SurveySessionRepository.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	if topic == TopicStress {
		return stressLabelCounts(sessions), nil
	}

	scoreOf, err := topicScoreFunc(topic)
	if err != nil {
		return nil, err
	}

	var minScore, maxScore, sum float64
	for i, session := range sessions {
		score := scoreOf(session.AnswerSet())
		if i == 0 {
			minScore, maxScore = score, score
		}
		if score < minScore {
			minScore = score
		}
		if score > maxScore {
			maxScore = score
		}
		sum += score
	}

	avg := 0.0
	if len(sessions) > 0 {
		avg = sum / float64(len(sessions))
	}

	return &responses.StatsDetail{
		Items: []responses.NamedValue{
			{Name: "min", Value: minScore},
			{Name: "max", Value: maxScore},
			{Name: "avg", Value: avg},
		},
	}, nil
}

func (uc *reportUsecase) MonthlyAverages(ctx context.Context, topic string) (*responses.MonthlyAverages, error) {
	scoreOf, err := topicScoreFunc(topic)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.SurveySessionRepository.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, session := range sessions {
		finishedAt := session.FinishedAt()
		if finishedAt == nil {
			continue
		}
		month := finishedAt.UTC().Format("2006-01")
		sums[month] += scoreOf(session.AnswerSet())
		counts[month]++
	}

	months := make([]string, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]responses.MonthlyPoint, 0, len(months))
	for _, month := range months {
		points = append(points, responses.MonthlyPoint{
			Month: month,
			Avg:   sums[month] / float64(counts[month]),
		})
	}

	return &responses.MonthlyAverages{
		Topic: topic,
		Label: topicLabels[topic],
		Items: points,
	}, nil
}

func (uc *reportUsecase) ExportCSV(ctx context.Context, search string) (string, []byte, error) {
	rows, err := uc.buildReportRows(ctx, search)
	if err != nil {
		return "", nil, err
	}

	data, err := export.RenderCSV(rows)
	if err != nil {
		return "", nil, exceptions.ErrExportRender(err)
	}

	fileName := utils.ExportFilename(constvars.ExportFilenamePrefix, "csv", time.Now())
	uc.archiveExport(ctx, fileName, data, constvars.MIMETextCSVCharsetUTF8)
	return fileName, data, nil
}

func (uc *reportUsecase) ExportXLSX(ctx context.Context, search string) (string, []byte, error) {
	rows, err := uc.buildReportRows(ctx, search)
	if err != nil {
		return "", nil, err
	}

	data, err := export.RenderXLSX(constvars.ExportSheetName, rows)
	if err != nil {
		return "", nil, exceptions.ErrExportRender(err)
	}

	fileName := utils.ExportFilename(constvars.ExportFilenamePrefix, "xlsx", time.Now())
	uc.archiveExport(ctx, fileName, data, constvars.MIMEApplicationXLSX)
	return fileName, data, nil
}

func (uc *reportUsecase) buildReportRows(ctx context.Context, search string) ([]survey.ReportRow, error) {
	sessions, err := uc.SurveySessionRepository.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}

	rows := make([]survey.ReportRow, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, survey.BuildReportRow(session.Meta(), session.AnswerSet()))
	}
	return rows, nil
}

// archiveExport keeps a copy of the generated file in object storage. The
// download itself never fails on an archive error.
func (uc *reportUsecase) archiveExport(ctx context.Context, fileName string, data []byte, contentType string) {
	if !uc.InternalConfig.App.ExportArchiveEnabled || uc.ExportArchive == nil {
		return
	}
	err := uc.ExportArchive.Upload(ctx, fileName, data, contentType)
	if err != nil {
		uc.Log.Warn("export archive upload failed",
			zap.String("file_name", fileName),
			zap.Error(err),
		)
	}
}

func stressLabelCounts(sessions []models.SurveySession) *responses.StatsDetail {
	counts := map[string]int{}
	for _, session := range sessions {
		answerSet := session.AnswerSet()
		// The label the form stored wins; the score only fills in for
		// sessions that predate the stored stress_level answer.
		label := valueString(answerSet.StressLevel)
		if label == "" {
			label = survey.ThaiStressLabel(survey.StressScore(answerSet))
		}
		counts[label]++
	}

	labels := []string{
		survey.ThaiStressLow,
		survey.ThaiStressModerate,
		survey.ThaiStressHigh,
		survey.ThaiStressHighest,
	}
	items := make([]responses.NamedValue, 0, len(labels))
	for _, label := range labels {
		items = append(items, responses.NamedValue{Name: label, Value: float64(counts[label])})
	}
	return &responses.StatsDetail{Items: items}
}

func topicScoreFunc(topic string) (func(*survey.AnswerSet) float64, error) {
	switch topic {
	case TopicSugar:
		return func(a *survey.AnswerSet) float64 {
			return float64(survey.DietGroupTotal(survey.DietGroupScores(a.Diet31)))
		}, nil
	case TopicFat:
		return func(a *survey.AnswerSet) float64 {
			return float64(survey.DietGroupTotal(survey.DietGroupScores(a.Diet32)))
		}, nil
	case TopicSodium:
		return func(a *survey.AnswerSet) float64 {
			return float64(survey.DietGroupTotal(survey.DietGroupScores(a.Diet33)))
		}, nil
	case TopicStress:
		return func(a *survey.AnswerSet) float64 {
			return float64(survey.StressScore(a))
		}, nil
	default:
		return nil, exceptions.ErrInvalidQueryParam(nil, "topic")
	}
}

func respondentName(session *models.SurveySession, a *survey.AnswerSet) string {
	if name := valueString(a.DisplayName); name != "" {
		return name
	}
	if session.FormSlug != "" {
		return session.FormSlug
	}
	return "ผู้ใช้ไม่ระบุ"
}

func valueString(v interface{}) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
