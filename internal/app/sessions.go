package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"presentpath/internal/models"
	"presentpath/internal/store"
)

const (
	timeFormat  = "2006-01-02 15:04:05"
	tokenPrefix = "pp-"
)

var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// Sessions manages redis-backed login sessions keyed by opaque bearer tokens.
type Sessions struct {
	enabled     bool
	redis       *redis.Client
	store       store.DocStore
	keyTemplate string
	ttl         time.Duration
}

func NewSessions(config *Config, docs store.DocStore) (*Sessions, error) {
	if !config.Server.EnableAuth {
		return &Sessions{enabled: false, store: docs}, nil
	}

	opt, err := redis.ParseURL(config.Auth.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Sessions{
		enabled:     true,
		redis:       client,
		store:       docs,
		keyTemplate: config.Auth.SessionKeyTemplate,
		ttl:         time.Duration(config.Auth.SessionTTLHours) * time.Hour,
	}, nil
}

func (s *Sessions) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

func (s *Sessions) Enabled() bool {
	return s.enabled
}

func generateToken() (string, error) {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return tokenPrefix + hex.EncodeToString(randomBytes), nil
}

// HashPassword is used at registration time.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login verifies the credentials and creates a session.
func (s *Sessions) Login(ctx context.Context, email, password string) (*models.Session, error) {
	profile, err := s.store.GetProfileByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		Token:       token,
		ProfileID:   profile.ID,
		Email:       profile.Email,
		Role:        profile.Role,
		CreatedTime: now,
	}

	if !s.enabled {
		return session, nil
	}

	key := s.sessionKey(token)
	pipe := s.redis.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"profile_id":       profile.ID,
		"email":            profile.Email,
		"role":             profile.Role,
		"created_dttm_utc": now.Format(timeFormat),
	})
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Current resolves a token back to the session it belongs to.
func (s *Sessions) Current(ctx context.Context, token string) (*models.Session, error) {
	if !s.enabled {
		return nil, fmt.Errorf("sessions are disabled")
	}

	fields, err := s.redis.HGetAll(ctx, s.sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("session not found")
	}

	created, _ := time.Parse(timeFormat, fields["created_dttm_utc"])
	return &models.Session{
		Token:       token,
		ProfileID:   fields["profile_id"],
		Email:       fields["email"],
		Role:        fields["role"],
		CreatedTime: created,
	}, nil
}

// Logout deletes the session; unknown tokens are not an error.
func (s *Sessions) Logout(ctx context.Context, token string) error {
	if !s.enabled {
		return nil
	}
	if err := s.redis.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Sessions) sessionKey(token string) string {
	return strings.NewReplacer("{token}", token).Replace(s.keyTemplate)
}
