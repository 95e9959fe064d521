package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"presentpath/internal/models"
)

func demoSchedules() []models.Schedule {
	return []models.Schedule{
		{
			ID:       "id-1",
			Title:    "Demo",
			GroupID:  "G1",
			Semester: "Year 1 Semester 1",
			Date:     "2025-04-13",
			Time:     "10:00 AM",
			Venue:    "Room 1",
		},
		{
			ID: "id-2",
			// everything else missing
		},
	}
}

func TestSchedulesHTML(t *testing.T) {
	out := SchedulesHTML(demoSchedules())

	assert.Contains(t, out, "<h2>Presentation Report</h2>")
	assert.Contains(t, out, "<td>Demo</td>")
	assert.Contains(t, out, "<td>G1</td>")
	assert.Contains(t, out, "<td>Apr 13, 2025</td>")
	assert.Contains(t, out, "<td>10:00 AM</td>")
	// missing fields render as N/A
	assert.Contains(t, out, "<td>N/A</td>")
}

func TestSchedulesHTMLEscapesContent(t *testing.T) {
	out := SchedulesHTML([]models.Schedule{{Title: "<script>alert(1)</script>"}})
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestSchedulesCSV(t *testing.T) {
	out, err := SchedulesCSV(demoSchedules())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Title", "Group ID", "Semester", "Date", "Time", "Venue"}, rows[0])
	assert.Equal(t, []string{"Demo", "G1", "Year 1 Semester 1", "Apr 13, 2025", "10:00 AM", "Room 1"}, rows[1])
	assert.Equal(t, []string{"N/A", "N/A", "N/A", "N/A", "N/A", "N/A"}, rows[2])
}

func TestMarksCSVComputesTotals(t *testing.T) {
	marks := []models.Mark{
		{
			StudentNo:                "UGR01",
			Year:                     "2025",
			Semester:                 "Year 1 Semester 1",
			PresentationTitle:        "Demo",
			ContentQuality:           7,
			PresentationSkills:       8,
			SlideDesign:              6,
			EngagementAndInteraction: 9,
			TimeManagement:           6,
		},
	}

	out, err := MarksCSV(marks)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "36", rows[1][9])
	assert.Equal(t, "7.20", rows[1][10])
}

func TestMarksXLSX(t *testing.T) {
	marks := []models.Mark{
		{
			StudentNo:                "UGR01",
			Year:                     "2025",
			Semester:                 "Year 1 Semester 1",
			PresentationTitle:        "Demo",
			ContentQuality:           5,
			PresentationSkills:       5,
			SlideDesign:              5,
			EngagementAndInteraction: 5,
			TimeManagement:           5,
		},
	}

	data, err := MarksXLSX(marks)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Marks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "UGR01", got)

	total, err := f.GetCellValue("Marks", "J2")
	require.NoError(t, err)
	assert.Equal(t, "25", total)

	year, err := f.GetCellValue("Year Means", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025", year)
}

func TestFriendlyTime(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"10:00 AM", "10:00 AM"},
		{"14:30", "2:30 PM"},
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"", "N/A"},
		{"whenever", "whenever"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, FriendlyTime(tc.in))
		})
	}
}

func TestFriendlyDate(t *testing.T) {
	assert.Equal(t, "Apr 13, 2025", FriendlyDate("2025-04-13"))
	assert.Equal(t, "N/A", FriendlyDate(""))
	assert.Equal(t, "someday", FriendlyDate("someday"))
}
