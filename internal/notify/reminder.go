package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/models"
	"presentpath/internal/store"
)

// Reminder pushes "presentation tomorrow" notifications to examiners.
type Reminder struct {
	store     store.DocStore
	pusher    Pusher
	scheduler *gocron.Scheduler
	lead      time.Duration
}

func NewReminder(docs store.DocStore, pusher Pusher, leadHours int) *Reminder {
	return &Reminder{
		store:     docs,
		pusher:    pusher,
		scheduler: gocron.NewScheduler(time.UTC),
		lead:      time.Duration(leadHours) * time.Hour,
	}
}

// Start schedules the reminder sweep on the given cron expression.
func (r *Reminder) Start(cronSpec string) error {
	if cronSpec == "" {
		return nil
	}

	_, err := r.scheduler.Cron(cronSpec).Do(func() {
		if err := r.Sweep(context.Background(), time.Now().UTC()); err != nil {
			logger.Error.Printf("Reminder sweep failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder sweep: %w", err)
	}

	r.scheduler.StartAsync()
	return nil
}

func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

// Sweep pushes a reminder for every schedule starting within the lead window.
func (r *Reminder) Sweep(ctx context.Context, now time.Time) error {
	schedules, err := r.store.ListSchedules()
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	for _, sched := range schedules {
		if sched.ExaminerPushToken == "" {
			continue
		}

		starts, err := scheduleStart(sched)
		if err != nil {
			logger.Debug.Printf("Skipping schedule %s with unparseable start: %v", sched.ID, err)
			continue
		}

		if starts.Before(now) || starts.After(now.Add(r.lead)) {
			continue
		}

		body := fmt.Sprintf(
			"You have a scheduled presentation for group %q tomorrow at %s",
			sched.GroupID,
			sched.Time,
		)
		if err := r.pusher.Send(ctx, sched.ExaminerPushToken, "Reminder: Presentation Evaluation", body); err != nil {
			logger.Error.Printf("Failed to push reminder for schedule %s: %v", sched.ID, err)
		}
	}

	return nil
}

func scheduleStart(sched models.Schedule) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 3:04 PM", sched.Date+" "+sched.Time); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04", sched.Date+" "+sched.Time); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", sched.Date)
}
