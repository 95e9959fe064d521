package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/shrimpsizemoose/trekker/logger"

	"presentpath/internal/app"
	"presentpath/internal/report"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	if service.Config.Export.Cron == "" {
		logger.Error.Fatal("No export cron configured")
	}

	scheduler := gocron.NewScheduler(time.UTC)
	_, err = scheduler.Cron(service.Config.Export.Cron).Do(func() {
		if err := exportAll(service); err != nil {
			logger.Error.Printf("Export failed: %v", err)
		}
	})
	if err != nil {
		logger.Error.Fatalf("Failed to schedule export: %v", err)
	}
	scheduler.StartAsync()

	logger.Info.Printf("Exporter running, schedule %q, writing to %s", service.Config.Export.Cron, service.Config.Export.Dir)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	scheduler.Stop()
	logger.Info.Println("Exporter stopped")
}

func exportAll(service *app.Service) error {
	if err := os.MkdirAll(service.Config.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}

	schedules, err := service.Store.ListSchedules()
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}
	marks, err := service.Store.ListMarks("")
	if err != nil {
		return fmt.Errorf("failed to list marks: %w", err)
	}

	date := time.Now().UTC().Format("2006-01-02")
	formats := service.Config.Export.Formats
	if len(formats) == 0 {
		formats = []string{"html", "csv"}
	}

	for _, format := range formats {
		var (
			name string
			data []byte
		)
		switch format {
		case "html":
			name = fmt.Sprintf("report_%s.html", date)
			data = []byte(report.SchedulesHTML(schedules))
		case "csv":
			out, err := report.SchedulesCSV(schedules)
			if err != nil {
				return fmt.Errorf("failed to render schedules csv: %w", err)
			}
			name = fmt.Sprintf("report_%s.csv", date)
			data = []byte(out)
		case "xlsx":
			out, err := report.MarksXLSX(marks)
			if err != nil {
				return fmt.Errorf("failed to render marks xlsx: %w", err)
			}
			name = fmt.Sprintf("marks_%s.xlsx", date)
			data = out
		default:
			logger.Debug.Printf("Skipping unknown export format %q", format)
			continue
		}

		path := filepath.Join(service.Config.Export.Dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info.Printf("Wrote %s", path)
	}

	return nil
}
