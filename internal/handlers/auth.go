package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/app"
	"presentpath/internal/models"
)

type registerRequest struct {
	models.Profile
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a profile with a hashed password.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}
	if err := req.Profile.Validate(); err != nil {
		http.Error(w, "Invalid profile: "+err.Error(), http.StatusBadRequest)
		return
	}
	// admin accounts are provisioned directly, never self-registered
	if req.Role == models.RoleAdmin {
		http.Error(w, "Cannot register an admin account", http.StatusForbidden)
		return
	}

	existing, err := h.service.Store.GetProfileByEmail(req.Email)
	if err != nil {
		logger.Error.Printf("Failed to check existing profile: %v", err)
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Email already registered", http.StatusConflict)
		return
	}

	hash, err := app.HashPassword(req.Password)
	if err != nil {
		logger.Error.Printf("Failed to hash password: %v", err)
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	profile := req.Profile
	profile.ID = uuid.NewString()
	profile.PasswordHash = hash

	if err := h.service.Store.CreateProfile(&profile); err != nil {
		logger.Error.Printf("Failed to create profile: %v", err)
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// HandleLogin creates a session for valid credentials.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	session, err := h.service.Sessions.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error.Printf("Login failed: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// HandleLogout deletes the current session.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get(h.service.Config.Auth.TokenHeader)
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	if err := h.service.Sessions.Logout(r.Context(), token); err != nil {
		logger.Error.Printf("Logout failed: %v", err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// HandleMe returns the profile behind the current session.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}

	profile, err := h.service.Store.GetProfile(sess.ProfileID)
	if err != nil {
		logger.Error.Printf("Failed to get profile: %v", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
