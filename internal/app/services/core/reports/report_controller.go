package reports

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase ReportUsecase
}

func NewReportController(logger *zap.Logger, reportUsecase ReportUsecase) *ReportController {
	return &ReportController{
		Log:           logger,
		ReportUsecase: reportUsecase,
	}
}

func (ctrl *ReportController) ListRespondents(w http.ResponseWriter, r *http.Request) {
	search, page, size := utils.ParseListQuery(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.ListRespondents(ctx, search, page, size)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(result.Meta.TotalUsers, page, size, r.URL.Path)

	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListRespondentsSuccessMessage, pagination, result)
}

func (ctrl *ReportController) RespondentDetail(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.RespondentDetail(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RespondentDetailSuccessMessage, result)
}

func (ctrl *ReportController) StressStats(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.StressStats(ctx, search)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StressStatsSuccessMessage, result)
}

func (ctrl *ReportController) StatsDetail(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("type")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.StatsDetail(ctx, topic)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsDetailSuccessMessage, result)
}

func (ctrl *ReportController) MonthlyAverages(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.MonthlyAverages(ctx, topic)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MonthlySuccessMessage, result)
}

func (ctrl *ReportController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fileName, data, err := ctrl.ReportUsecase.ExportCSV(ctx, search)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.writeAttachment(w, fileName, constvars.MIMETextCSVCharsetUTF8, data)
}

func (ctrl *ReportController) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fileName, data, err := ctrl.ReportUsecase.ExportXLSX(ctx, search)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.writeAttachment(w, fileName, constvars.MIMEApplicationXLSX, data)
}

func (ctrl *ReportController) writeAttachment(w http.ResponseWriter, fileName, contentType string, data []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set(constvars.HeaderCacheControl, constvars.CacheControlNoStore)
	w.WriteHeader(constvars.StatusOK)
	_, err := w.Write(data)
	if err != nil {
		ctrl.Log.Error("failed writing export attachment",
			zap.String("file_name", fileName),
			zap.Error(err),
		)
	}
}
