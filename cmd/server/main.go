package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/app"
	"presentpath/internal/handlers"
	"presentpath/internal/notify"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if err := service.Store.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	h := handlers.NewHandler(service)

	http.HandleFunc("POST /api/v1/auth/register", h.HandleRegister)
	http.HandleFunc("POST /api/v1/auth/login", h.HandleLogin)
	http.HandleFunc("POST /api/v1/auth/logout", h.HandleLogout)
	http.HandleFunc("GET /api/v1/auth/me", h.HandleMe)

	http.HandleFunc("GET /api/v1/schedules", h.HandleListSchedules)
	http.HandleFunc("POST /api/v1/schedules", h.HandleCreateSchedule)
	http.HandleFunc("GET /api/v1/schedules/{id}", h.HandleGetSchedule)
	http.HandleFunc("PUT /api/v1/schedules/{id}", h.HandleUpdateSchedule)
	http.HandleFunc("DELETE /api/v1/schedules/{id}", h.HandleDeleteSchedule)
	http.HandleFunc("POST /api/v1/schedules/{id}/complete", h.HandleCompleteSchedule)
	http.HandleFunc("POST /api/v1/schedules/{id}/reschedule", h.HandleCreateReschedule)

	http.HandleFunc("GET /api/v1/completed", h.HandleListCompleted)
	http.HandleFunc("DELETE /api/v1/completed/{id}", h.HandleDeleteCompleted)

	http.HandleFunc("GET /api/v1/reschedules", h.HandleListReschedules)
	http.HandleFunc("PUT /api/v1/reschedules/{id}", h.HandleUpdateRescheduleStatus)

	http.HandleFunc("GET /api/v1/students", h.HandleListStudents)
	http.HandleFunc("PUT /api/v1/profiles/{id}", h.HandleUpdateProfile)
	http.HandleFunc("POST /api/v1/profiles/{id}/push-token", h.HandleSetPushToken)

	http.HandleFunc("GET /api/v1/marks", h.HandleListMarks)
	http.HandleFunc("POST /api/v1/marks", h.HandleCreateMark)
	http.HandleFunc("PUT /api/v1/marks", h.HandleUpdateMark)
	http.HandleFunc("DELETE /api/v1/marks", h.HandleDeleteMark)
	http.HandleFunc("GET /api/v1/marks/summary", h.HandleMarksSummary)

	http.HandleFunc("GET /api/v1/notes", h.HandleListNotes)
	http.HandleFunc("POST /api/v1/notes", h.HandleCreateNote)
	http.HandleFunc("DELETE /api/v1/notes/{id}", h.HandleDeleteNote)

	http.HandleFunc("GET /api/v1/reports/schedules", h.HandleSchedulesReport)
	http.HandleFunc("GET /api/v1/reports/marks", h.HandleMarksReport)

	http.Handle("/metrics", promhttp.Handler())

	reminder := notify.NewReminder(service.Store, service.Pusher, service.Config.Reminder.LeadHours)
	if err := reminder.Start(service.Config.Reminder.Cron); err != nil {
		logger.Error.Fatalf("Failed to start reminder scheduler: %v", err)
	}
	defer reminder.Stop()

	logger.Info.Printf("Starting presentpath server on %s", service.Config.Server.Port)
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Presentpath server failed: %v", err)
	}
}
