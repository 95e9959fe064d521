package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"presentpath/internal/models"
	"presentpath/internal/scoring"
)

// SchedulesCSV renders schedules with the same columns as the HTML report.
func SchedulesCSV(records []models.Schedule) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Title", "Group ID", "Semester", "Date", "Time", "Venue"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			orNA(r.Title),
			orNA(r.GroupID),
			orNA(r.Semester),
			FriendlyDate(r.Date),
			FriendlyTime(r.Time),
			orNA(r.Venue),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// MarksCSV renders marks with computed total and average columns.
func MarksCSV(marks []models.Mark) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Student No", "Year", "Semester", "Presentation",
		"Content Quality", "Presentation Skills", "Slide Design",
		"Engagement And Interaction", "Time Management",
		"Total", "Average",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, m := range marks {
		row := []string{
			m.StudentNo,
			m.Year,
			m.Semester,
			m.PresentationTitle,
			strconv.Itoa(m.ContentQuality),
			strconv.Itoa(m.PresentationSkills),
			strconv.Itoa(m.SlideDesign),
			strconv.Itoa(m.EngagementAndInteraction),
			strconv.Itoa(m.TimeManagement),
			strconv.Itoa(scoring.Total(m)),
			strconv.FormatFloat(scoring.Average(m), 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}
