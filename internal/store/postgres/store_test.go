package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"presentpath/internal/models"
)

// setupTestDB spins up a throwaway Postgres and applies the migrations
func setupTestDB(t *testing.T) (*PostgresStore, func()) {
	ctx := context.Background()

	pg, err := pgcontainer.Run(
		ctx,
		"postgres:16-alpine",
		testcontainers.WithEnv(map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := NewPostgresStore(dsn)
	require.NoError(t, err, "Failed to create store")

	require.NoError(t, s.ApplyMigrations("../../../migrations"))

	cleanup := func() {
		s.Close()
		pg.Terminate(ctx)
	}

	return s, cleanup
}

func TestScheduleRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	s, cleanup := setupTestDB(t)
	defer cleanup()

	sched := &models.Schedule{
		ID:       "3b510caf-6f0e-4c36-9bd5-57d0a1c2b3d4",
		Title:    "Demo",
		GroupID:  "G1",
		Semester: "Year 1 Semester 1",
		Date:     "2025-04-13",
		Time:     "10:00 AM",
		Venue:    "Room 1",
	}
	require.NoError(t, s.CreateSchedule(sched))

	got, err := s.GetSchedule(sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Demo", got.Title)

	require.NoError(t, s.DeleteSchedule(sched.ID))
	gone, err := s.GetSchedule(sched.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSearchUsesILIKE(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	s, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, s.CreateProfile(&models.Profile{
		ID:           "11111111-1111-1111-1111-111111111111",
		FirstName:    "Ama",
		LastName:     "Mensah",
		Email:        "ama@example.edu",
		IndexNumber:  "UGR0202110001",
		Role:         models.RoleStudent,
		PasswordHash: "x",
	}))

	found, err := s.SearchStudents("MENS")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ama", found[0].FirstName)

	schedules, err := s.SearchSchedules("anything")
	require.NoError(t, err)
	assert.Empty(t, schedules)

	// wildcard characters in the term match literally, not as patterns
	percent, err := s.SearchStudents("%")
	require.NoError(t, err)
	assert.Empty(t, percent)

	underscore, err := s.SearchStudents("_")
	require.NoError(t, err)
	assert.Empty(t, underscore)
}
