package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presentpath/internal/models"
	"presentpath/internal/store/sqlite"
)

type recordingPusher struct {
	sent []string
}

func (p *recordingPusher) Send(ctx context.Context, token, title, body string) error {
	p.sent = append(p.sent, token)
	return nil
}

func setupScheduleStore(t *testing.T) *sqlite.SQLiteStore {
	s, err := sqlite.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.DB.Exec(`
	CREATE TABLE schedules (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		group_id TEXT NOT NULL,
		semester TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		venue TEXT NOT NULL,
		examiner_push_token TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL DEFAULT 0
	);
	`)
	require.NoError(t, err)
	return s
}

func TestReminderSweep(t *testing.T) {
	db := setupScheduleStore(t)
	now := time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC)

	schedules := []models.Schedule{
		{
			ID: "tomorrow", Title: "Demo", GroupID: "G1", Semester: "s",
			Date: "2025-04-13", Time: "8:00 AM", Venue: "Room 1",
			ExaminerPushToken: "token-tomorrow",
		},
		{
			ID: "next-week", Title: "Demo", GroupID: "G2", Semester: "s",
			Date: "2025-04-19", Time: "8:00 AM", Venue: "Room 1",
			ExaminerPushToken: "token-next-week",
		},
		{
			ID: "already-past", Title: "Demo", GroupID: "G3", Semester: "s",
			Date: "2025-04-11", Time: "8:00 AM", Venue: "Room 1",
			ExaminerPushToken: "token-past",
		},
		{
			ID: "no-token", Title: "Demo", GroupID: "G4", Semester: "s",
			Date: "2025-04-13", Time: "8:00 AM", Venue: "Room 1",
		},
	}
	for i := range schedules {
		require.NoError(t, db.CreateSchedule(&schedules[i]))
	}

	pusher := &recordingPusher{}
	r := NewReminder(db, pusher, 24)

	require.NoError(t, r.Sweep(context.Background(), now))

	assert.Equal(t, []string{"token-tomorrow"}, pusher.sent)
}

func TestReminderSweepHandles24HourClock(t *testing.T) {
	db := setupScheduleStore(t)
	now := time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC)

	sched := models.Schedule{
		ID: "s1", Title: "Demo", GroupID: "G1", Semester: "s",
		Date: "2025-04-12", Time: "14:30", Venue: "Room 1",
		ExaminerPushToken: "token-1",
	}
	require.NoError(t, db.CreateSchedule(&sched))

	pusher := &recordingPusher{}
	r := NewReminder(db, pusher, 24)

	require.NoError(t, r.Sweep(context.Background(), now))
	assert.Equal(t, []string{"token-1"}, pusher.sent)
}
