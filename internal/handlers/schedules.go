package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/metrics"
	"presentpath/internal/models"
	"presentpath/internal/workflow"
)

// HandleListSchedules returns all schedules, or the title matches when
// ?search= is present.
func (h *Handler) HandleListSchedules(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var (
		schedules []models.Schedule
		err       error
	)
	if query := r.URL.Query().Get("search"); query != "" {
		schedules, err = h.service.Store.SearchSchedules(query)
	} else {
		schedules, err = h.service.Store.ListSchedules()
	}
	if err != nil {
		logger.Error.Printf("Failed to list schedules: %v", err)
		http.Error(w, "Failed to fetch schedules", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": schedules,
	})
}

// HandleCreateSchedule validates and stores a new schedule, then pushes a
// notification to the examiner when a token is attached.
func (h *Handler) HandleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { observe(r, start, http.StatusOK) }()

	if h.session(w, r) == nil {
		return
	}

	var sched models.Schedule
	if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := sched.Validate(); err != nil {
		http.Error(w, "Invalid schedule: "+err.Error(), http.StatusBadRequest)
		return
	}

	sched.ID = uuid.NewString()
	sched.CreatedAt = time.Now().UTC().Unix()

	if err := h.service.Store.CreateSchedule(&sched); err != nil {
		logger.Error.Printf("Failed to create schedule: %v", err)
		http.Error(w, "Failed to save schedule", http.StatusInternalServerError)
		return
	}

	if sched.ExaminerPushToken != "" {
		body := fmt.Sprintf("A presentation for group %q was scheduled for %s at %s", sched.GroupID, sched.Date, sched.Time)
		if err := h.service.Pusher.Send(r.Context(), sched.ExaminerPushToken, "New Presentation Scheduled", body); err != nil {
			logger.Error.Printf("Failed to push schedule notification: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, sched)
}

func (h *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	sched, err := h.service.Store.GetSchedule(r.PathValue("id"))
	if err != nil {
		logger.Error.Printf("Failed to get schedule: %v", err)
		http.Error(w, "Failed to fetch schedule", http.StatusInternalServerError)
		return
	}
	if sched == nil {
		http.Error(w, "Schedule not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sched)
}

// HandleUpdateSchedule replaces the full record. Last writer wins; there
// is no optimistic concurrency check.
func (h *Handler) HandleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	id := r.PathValue("id")
	existing, err := h.service.Store.GetSchedule(id)
	if err != nil {
		logger.Error.Printf("Failed to get schedule: %v", err)
		http.Error(w, "Failed to fetch schedule", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Schedule not found", http.StatusNotFound)
		return
	}

	var sched models.Schedule
	if err := json.NewDecoder(r.Body).Decode(&sched); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	sched.ID = id
	sched.CreatedAt = existing.CreatedAt
	if err := sched.Validate(); err != nil {
		http.Error(w, "Invalid schedule: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Store.UpdateSchedule(&sched); err != nil {
		logger.Error.Printf("Failed to update schedule: %v", err)
		http.Error(w, "Failed to update schedule", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, sched)
}

func (h *Handler) HandleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	if err := h.service.Store.DeleteSchedule(r.PathValue("id")); err != nil {
		logger.Error.Printf("Failed to delete schedule: %v", err)
		http.Error(w, "Failed to delete schedule", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleCompleteSchedule runs the completion workflow and pushes a
// notification to the examiner on success.
func (h *Handler) HandleCompleteSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { observe(r, start, http.StatusOK) }()

	if h.session(w, r) == nil {
		return
	}

	sched, err := h.service.Store.GetSchedule(r.PathValue("id"))
	if err != nil {
		logger.Error.Printf("Failed to get schedule: %v", err)
		http.Error(w, "Failed to fetch schedule", http.StatusInternalServerError)
		return
	}
	if sched == nil {
		http.Error(w, "Schedule not found", http.StatusNotFound)
		return
	}

	completed, err := workflow.CompletePresentation(h.service.Store, sched)
	if err != nil {
		logger.Error.Printf("Completion workflow failed: %v", err)
		http.Error(w, "Failed to complete presentation", http.StatusInternalServerError)
		return
	}

	metrics.CompletionsTotal.WithLabelValues(completed.GroupID, completed.Semester).Inc()

	if sched.ExaminerPushToken != "" {
		body := fmt.Sprintf("The presentation for group %q has been marked as completed.", completed.GroupID)
		if err := h.service.Pusher.Send(r.Context(), sched.ExaminerPushToken, "Presentation Completed", body); err != nil {
			logger.Error.Printf("Failed to push completion notification: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, completed)
}

func (h *Handler) HandleListCompleted(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	completed, err := h.service.Store.ListCompleted()
	if err != nil {
		logger.Error.Printf("Failed to list completed presentations: %v", err)
		http.Error(w, "Failed to fetch completed presentations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": completed,
	})
}

func (h *Handler) HandleDeleteCompleted(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	if err := h.service.Store.DeleteCompleted(r.PathValue("id")); err != nil {
		logger.Error.Printf("Failed to delete completed presentation: %v", err)
		http.Error(w, "Failed to delete completed presentation", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleCreateReschedule files a reschedule request against a schedule.
func (h *Handler) HandleCreateReschedule(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var req models.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.ScheduleID = r.PathValue("id")
	req.Status = models.ReschedulePending
	if err := req.Validate(); err != nil {
		http.Error(w, "Invalid reschedule request: "+err.Error(), http.StatusBadRequest)
		return
	}

	sched, err := h.service.Store.GetSchedule(req.ScheduleID)
	if err != nil {
		logger.Error.Printf("Failed to get schedule: %v", err)
		http.Error(w, "Failed to fetch schedule", http.StatusInternalServerError)
		return
	}
	if sched == nil {
		http.Error(w, "Schedule not found", http.StatusNotFound)
		return
	}

	req.ID = uuid.NewString()
	if err := h.service.Store.CreateRescheduleRequest(&req); err != nil {
		logger.Error.Printf("Failed to create reschedule request: %v", err)
		http.Error(w, "Failed to save reschedule request", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (h *Handler) HandleListReschedules(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	requests, err := h.service.Store.ListRescheduleRequests()
	if err != nil {
		logger.Error.Printf("Failed to list reschedule requests: %v", err)
		http.Error(w, "Failed to fetch reschedule requests", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": requests,
	})
}

func (h *Handler) HandleUpdateRescheduleStatus(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case models.RescheduleApproved, models.RescheduleDeclined, models.ReschedulePending:
	default:
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if err := h.service.Store.UpdateRescheduleStatus(r.PathValue("id"), req.Status); err != nil {
		logger.Error.Printf("Failed to update reschedule status: %v", err)
		http.Error(w, "Failed to update reschedule status", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
