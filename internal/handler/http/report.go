package http

import (
	"net/http"

	"github.com/shiftwise/timecard-backend-go/internal/domain/report"
	"github.com/shiftwise/timecard-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	PeriodSummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// PeriodSummary implements ReportHandler.
func (h *ReportHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.PeriodSummaryRequest{
		EmployeeID: query.Get("employee_id"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	summary, err := h.reportService.Summarize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
