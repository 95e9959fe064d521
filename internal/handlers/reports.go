package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/metrics"
	"presentpath/internal/report"
)

// HandleSchedulesReport renders the current schedules as a downloadable
// HTML or CSV report.
func (h *Handler) HandleSchedulesReport(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	schedules, err := h.service.Store.ListSchedules()
	if err != nil {
		logger.Error.Printf("Failed to list schedules: %v", err)
		http.Error(w, "Failed to fetch schedules", http.StatusInternalServerError)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "html"
	}
	filename := fmt.Sprintf("report_%s.%s", time.Now().UTC().Format("2006-01-02"), format)

	switch format {
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		fmt.Fprint(w, report.SchedulesHTML(schedules))
	case "csv":
		out, err := report.SchedulesCSV(schedules)
		if err != nil {
			logger.Error.Printf("Failed to render schedules csv: %v", err)
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		fmt.Fprint(w, out)
	default:
		http.Error(w, "Unsupported format", http.StatusBadRequest)
		return
	}

	metrics.ReportExportsTotal.WithLabelValues("schedules", format).Inc()
}

// HandleMarksReport renders marks as a downloadable CSV or XLSX report.
func (h *Handler) HandleMarksReport(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	marks, err := h.service.Store.ListMarks(r.URL.Query().Get("year"))
	if err != nil {
		logger.Error.Printf("Failed to list marks: %v", err)
		http.Error(w, "Failed to fetch marks", http.StatusInternalServerError)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	filename := fmt.Sprintf("marks_%s.%s", time.Now().UTC().Format("2006-01-02"), format)

	switch format {
	case "csv":
		out, err := report.MarksCSV(marks)
		if err != nil {
			logger.Error.Printf("Failed to render marks csv: %v", err)
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		fmt.Fprint(w, out)
	case "xlsx":
		out, err := report.MarksXLSX(marks)
		if err != nil {
			logger.Error.Printf("Failed to render marks xlsx: %v", err)
			http.Error(w, "Failed to render report", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Write(out)
	default:
		http.Error(w, "Unsupported format", http.StatusBadRequest)
		return
	}

	metrics.ReportExportsTotal.WithLabelValues("marks", format).Inc()
}
