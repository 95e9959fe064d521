package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/metrics"
	"presentpath/internal/models"
	"presentpath/internal/scoring"
)

type markView struct {
	models.Mark
	Total   int     `json:"total"`
	Average float64 `json:"average"`
}

func toMarkViews(marks []models.Mark) []markView {
	views := make([]markView, 0, len(marks))
	for _, m := range marks {
		views = append(views, markView{
			Mark:    m,
			Total:   scoring.Total(m),
			Average: scoring.Average(m),
		})
	}
	return views
}

// HandleListMarks returns marks, filtered by ?year= or ?student= when given.
// Totals and averages are computed on read, never stored.
func (h *Handler) HandleListMarks(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var (
		marks []models.Mark
		err   error
	)
	if student := r.URL.Query().Get("student"); student != "" {
		marks, err = h.service.Store.ListMarksByStudent(student)
	} else {
		marks, err = h.service.Store.ListMarks(r.URL.Query().Get("year"))
	}
	if err != nil {
		logger.Error.Printf("Failed to list marks: %v", err)
		http.Error(w, "Failed to fetch marks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": toMarkViews(marks),
	})
}

// HandleCreateMark stores a new mark record, one per (student, presentation).
func (h *Handler) HandleCreateMark(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var mark models.Mark
	if err := json.NewDecoder(r.Body).Decode(&mark); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := mark.Validate(); err != nil {
		http.Error(w, "Invalid mark: "+err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.service.Store.GetMark(mark.StudentNo, mark.PresentationTitle)
	if err != nil {
		logger.Error.Printf("Failed to check existing mark: %v", err)
		http.Error(w, "Failed to save mark", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Mark already exists for this student and presentation", http.StatusConflict)
		return
	}

	if err := h.service.Store.CreateMark(&mark); err != nil {
		logger.Error.Printf("Failed to create mark: %v", err)
		http.Error(w, "Failed to save mark", http.StatusInternalServerError)
		return
	}

	metrics.MarkEntriesTotal.WithLabelValues(mark.Semester).Inc()
	metrics.MarkTotalHistogram.WithLabelValues(mark.Year).Observe(float64(scoring.Total(mark)))

	writeJSON(w, http.StatusCreated, markView{
		Mark:    mark,
		Total:   scoring.Total(mark),
		Average: scoring.Average(mark),
	})
}

// HandleUpdateMark replaces the sub-scores of an existing mark record.
// Validation runs before any store call.
func (h *Handler) HandleUpdateMark(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var mark models.Mark
	if err := json.NewDecoder(r.Body).Decode(&mark); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := mark.Validate(); err != nil {
		http.Error(w, "Invalid mark: "+err.Error(), http.StatusBadRequest)
		return
	}

	existing, err := h.service.Store.GetMark(mark.StudentNo, mark.PresentationTitle)
	if err != nil {
		logger.Error.Printf("Failed to check existing mark: %v", err)
		http.Error(w, "Failed to update mark", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Mark not found", http.StatusNotFound)
		return
	}

	if err := h.service.Store.UpdateMark(&mark); err != nil {
		logger.Error.Printf("Failed to update mark: %v", err)
		http.Error(w, "Failed to update mark", http.StatusInternalServerError)
		return
	}

	metrics.MarkEntriesTotal.WithLabelValues(mark.Semester).Inc()

	writeJSON(w, http.StatusOK, markView{
		Mark:    mark,
		Total:   scoring.Total(mark),
		Average: scoring.Average(mark),
	})
}

func (h *Handler) HandleDeleteMark(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	student := r.URL.Query().Get("student")
	title := r.URL.Query().Get("presentation")
	if student == "" || title == "" {
		http.Error(w, "student and presentation are required", http.StatusBadRequest)
		return
	}

	if err := h.service.Store.DeleteMark(student, title); err != nil {
		logger.Error.Printf("Failed to delete mark: %v", err)
		http.Error(w, "Failed to delete mark", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleMarksSummary returns per-year means of each sub-score, with the
// performance feedback line derived from each year's mean.
func (h *Handler) HandleMarksSummary(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	marks, err := h.service.Store.ListMarks(r.URL.Query().Get("year"))
	if err != nil {
		logger.Error.Printf("Failed to list marks: %v", err)
		http.Error(w, "Failed to fetch marks", http.StatusInternalServerError)
		return
	}

	type yearSummary struct {
		scoring.YearMeans
		Feedback string `json:"feedback"`
	}

	means := scoring.GroupMeansByYear(marks)
	summaries := make([]yearSummary, 0, len(means))
	for _, ym := range means {
		summaries = append(summaries, yearSummary{
			YearMeans: ym,
			Feedback:  scoring.YearFeedback(ym.Year, ym.OverallMean()),
		})
	}

	payload := map[string]interface{}{
		"year_means": summaries,
		"records":    len(marks),
	}
	if len(marks) > 0 {
		payload["overall_feedback"] = scoring.OverallFeedback(scoring.MeanAverage(marks))
	}

	writeJSON(w, http.StatusOK, payload)
}
