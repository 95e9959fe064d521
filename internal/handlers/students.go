package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/models"
)

// HandleListStudents returns student profiles, or the search matches on
// first name, last name or index number when ?search= is present.
func (h *Handler) HandleListStudents(w http.ResponseWriter, r *http.Request) {
	if h.session(w, r) == nil {
		return
	}

	var (
		students []models.Profile
		err      error
	)
	if query := r.URL.Query().Get("search"); query != "" {
		students, err = h.service.Store.SearchStudents(query)
	} else {
		students, err = h.service.Store.ListProfiles(models.RoleStudent)
	}
	if err != nil {
		logger.Error.Printf("Failed to list students: %v", err)
		http.Error(w, "Failed to fetch students", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": students,
	})
}

// HandleUpdateProfile merges the submitted editable fields over the stored
// record and writes it back. Last writer wins.
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	id := r.PathValue("id")
	if h.service.Sessions.Enabled() && sess.ProfileID != id && sess.Role != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	existing, err := h.service.Store.GetProfile(id)
	if err != nil {
		logger.Error.Printf("Failed to get profile: %v", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	var update models.Profile
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	existing.FirstName = update.FirstName
	existing.LastName = update.LastName
	existing.IndexNumber = update.IndexNumber
	existing.GroupID = update.GroupID
	existing.Semester = update.Semester
	if err := existing.Validate(); err != nil {
		http.Error(w, "Invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Store.UpdateProfile(existing); err != nil {
		logger.Error.Printf("Failed to update profile: %v", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

// HandleSetPushToken persists a device push token onto the profile.
func (h *Handler) HandleSetPushToken(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	id := r.PathValue("id")
	if h.service.Sessions.Enabled() && sess.ProfileID != id {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}

	if err := h.service.Store.SetPushToken(id, req.Token); err != nil {
		logger.Error.Printf("Failed to set push token: %v", err)
		http.Error(w, "Failed to save push token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
