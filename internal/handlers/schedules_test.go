package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presentpath/internal/models"
)

func seedSchedule(t *testing.T, h *Handler, id string) *models.Schedule {
	t.Helper()
	sched := &models.Schedule{
		ID:       id,
		Title:    "Final Year Demo",
		GroupID:  "G7",
		Semester: "Year 1 Semester 1",
		Date:     "2025-05-01",
		Time:     "10:00 AM",
		Venue:    "Lab 2",
	}
	require.NoError(t, h.service.Store.CreateSchedule(sched))
	return sched
}

func TestHandleCompleteSchedule(t *testing.T) {
	h := setupTestHandler(t)
	seedSchedule(t, h, "sched-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/sched-1/complete", nil)
	req.SetPathValue("id", "sched-1")
	rec := httptest.NewRecorder()

	h.HandleCompleteSchedule(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Completed"`)

	// schedule moved, not copied
	gone, err := h.service.Store.GetSchedule("sched-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	completed, err := h.service.Store.ListCompleted()
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "sched-1", completed[0].ID)
}

func TestHandleCompleteScheduleMissing(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/nope/complete", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()

	h.HandleCompleteSchedule(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	completed, err := h.service.Store.ListCompleted()
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestHandleDeleteSchedule(t *testing.T) {
	h := setupTestHandler(t)
	seedSchedule(t, h, "sched-1")
	seedSchedule(t, h, "sched-2")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/sched-1", nil)
	req.SetPathValue("id", "sched-1")
	rec := httptest.NewRecorder()

	h.HandleDeleteSchedule(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	remaining, err := h.service.Store.ListSchedules()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "sched-2", remaining[0].ID)
}
