package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/models"
)

// HandleListNotes returns the caller's sticky notes.
func (h *Handler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	notes, err := h.service.Store.ListNotes(sess.ProfileID)
	if err != nil {
		logger.Error.Printf("Failed to list notes: %v", err)
		http.Error(w, "Failed to fetch notes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": notes,
	})
}

// HandleCreateNote stores a sticky note owned by the caller.
func (h *Handler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	note.Owner = sess.ProfileID
	if err := note.Validate(); err != nil {
		http.Error(w, "Both title and content are required", http.StatusBadRequest)
		return
	}

	note.ID = uuid.NewString()
	note.CreatedAt = time.Now().UTC().Unix()

	if err := h.service.Store.CreateNote(&note); err != nil {
		logger.Error.Printf("Failed to create note: %v", err)
		http.Error(w, "Failed to save note", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	if err := h.service.Store.DeleteNote(r.PathValue("id"), sess.ProfileID); err != nil {
		logger.Error.Printf("Failed to delete note: %v", err)
		http.Error(w, "Failed to delete note", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
