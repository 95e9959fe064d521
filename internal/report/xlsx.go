package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"presentpath/internal/models"
	"presentpath/internal/scoring"
)

// MarksXLSX renders marks as a spreadsheet with one row per record and a
// second sheet of per-year sub-score means.
func MarksXLSX(marks []models.Mark) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Marks"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{
		"Student No", "Year", "Semester", "Presentation",
		"Content Quality", "Presentation Skills", "Slide Design",
		"Engagement And Interaction", "Time Management",
		"Total", "Average",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, m := range marks {
		row := []interface{}{
			m.StudentNo,
			m.Year,
			m.Semester,
			m.PresentationTitle,
			m.ContentQuality,
			m.PresentationSkills,
			m.SlideDesign,
			m.EngagementAndInteraction,
			m.TimeManagement,
			scoring.Total(m),
			scoring.Average(m),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	meansSheet := "Year Means"
	if _, err := f.NewSheet(meansSheet); err != nil {
		return nil, fmt.Errorf("failed to add means sheet: %w", err)
	}

	meansHeader := []interface{}{
		"Year", "Records",
		"Content Quality", "Presentation Skills", "Slide Design",
		"Engagement And Interaction", "Time Management",
	}
	if err := f.SetSheetRow(meansSheet, "A1", &meansHeader); err != nil {
		return nil, fmt.Errorf("failed to write means header: %w", err)
	}

	for i, ym := range scoring.GroupMeansByYear(marks) {
		row := []interface{}{
			ym.Year,
			ym.Count,
			ym.ContentQuality,
			ym.PresentationSkills,
			ym.SlideDesign,
			ym.EngagementAndInteraction,
			ym.TimeManagement,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(meansSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write means row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
