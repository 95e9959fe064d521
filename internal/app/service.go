package app

import (
	"fmt"
	"net/http"
	"strings"

	"presentpath/internal/models"
	"presentpath/internal/notify"
	"presentpath/internal/store"
)

type Service struct {
	Config   *Config
	Store    store.DocStore
	Sessions *Sessions
	Pusher   notify.Pusher
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	docs, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	sessions, err := NewSessions(config, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to init sessions: %w", err)
	}

	var pusher notify.Pusher = notify.NopPusher{}
	if config.Push.Enabled {
		pusher = notify.NewExpoClient(config.Push.Endpoint)
	}

	return &Service{
		Config:   config,
		Store:    docs,
		Sessions: sessions,
		Pusher:   pusher,
	}, nil
}

// Authenticate resolves the bearer token on the request, or returns an
// error when auth is on and the token is missing or stale.
func (s *Service) Authenticate(r *http.Request) (*models.Session, error) {
	if !s.Sessions.Enabled() {
		return &models.Session{Role: models.RoleAdmin}, nil
	}

	authHeader := r.Header.Get(s.Config.Auth.TokenHeader)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	return s.Sessions.Current(r.Context(), token)
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("sessions: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
