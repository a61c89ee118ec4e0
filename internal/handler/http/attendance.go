package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ems-suite/ems-backend-go/internal/domain/attendance"
	"github.com/ems-suite/ems-backend-go/internal/domain/report"
	"github.com/ems-suite/ems-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	DailyView(w http.ResponseWriter, r *http.Request)
	MarkDay(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Insights(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// DailyView implements AttendanceHandler. Defaults to today when no date is
// given.
func (h *AttendanceHandlerImpl) DailyView(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.DailyView(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MarkDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkDayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance saved", result)
}

// historyRequest builds the reporting window from query parameters. A date
// parameter selects single-date mode, month and year select month mode.
func historyRequest(r *http.Request) report.HistoryRequest {
	query := r.URL.Query()

	if v := query.Get("date"); v != "" {
		return report.HistoryRequest{Mode: report.ModeSingleDate, Date: v}
	}

	month, _ := strconv.Atoi(query.Get("month"))
	year, _ := strconv.Atoi(query.Get("year"))
	if month == 0 && year == 0 {
		now := time.Now()
		month = int(now.Month())
		year = now.Year()
	}
	return report.HistoryRequest{Mode: report.ModeMonthRange, Month: month, Year: year}
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.History(r.Context(), historyRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Insights implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Insights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := report.InsightFilter{
		Kind:  report.FilterAll,
		Query: query.Get("query"),
	}
	if v := query.Get("filter"); v != "" {
		filter.Kind = report.FilterKind(v)
	}

	result, err := h.reportService.Insights(r.Context(), historyRequest(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func exportFilename(req report.HistoryRequest, ext string) string {
	if req.Mode == report.ModeSingleDate {
		return fmt.Sprintf("attendance_%s.%s", req.Date, ext)
	}
	return fmt.Sprintf("attendance_%04d-%02d.%s", req.Year, req.Month, ext)
}

// ExportPDF implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	req := historyRequest(r)

	data, err := h.reportService.ExportPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(req, "pdf")))
	w.Write(data)
}

// ExportXLSX implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	req := historyRequest(r)

	data, err := h.reportService.ExportXLSX(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename(req, "xlsx")))
	w.Write(data)
}
