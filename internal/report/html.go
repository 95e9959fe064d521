package report

import (
	"fmt"
	"html"
	"strings"
	"time"

	"presentpath/internal/models"
)

const pageStyle = `<style>
    body { font-family: Arial, sans-serif; margin: 20px; background-color: #f7f7f7; }
    h2 { text-align: center; color: #333; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    table, th, td { border: 1px solid #ddd; }
    th, td { padding: 12px; text-align: left; }
    th { background-color: #4CAF50; color: white; }
    tr:nth-child(even) { background-color: #f2f2f2; }
  </style>`

// SchedulesHTML renders schedules as a standalone HTML report. Empty
// fields render as "N/A", matching how incomplete records are displayed
// everywhere else.
func SchedulesHTML(records []models.Schedule) string {
	var b strings.Builder

	b.WriteString("<html>\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString(pageStyle)
	b.WriteString("\n</head>\n<body>\n<h2>Presentation Report</h2>\n<table>\n<thead>\n<tr>")
	for _, h := range []string{"Title", "Group ID", "Semester", "Date", "Time", "Venue"} {
		fmt.Fprintf(&b, "<th>%s</th>", h)
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, r := range records {
		b.WriteString("<tr>")
		for _, cell := range []string{
			orNA(r.Title),
			orNA(r.GroupID),
			orNA(r.Semester),
			FriendlyDate(r.Date),
			FriendlyTime(r.Time),
			orNA(r.Venue),
		} {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return b.String()
}

// FriendlyDate turns "2006-01-02" into "Jan 2, 2006"; anything that does
// not parse is passed through, empty becomes "N/A".
func FriendlyDate(date string) string {
	if date == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// FriendlyTime normalizes a 24-hour wall clock string to 12-hour display.
// Values already carrying AM/PM are passed through.
func FriendlyTime(clock string) string {
	if clock == "" {
		return "N/A"
	}
	if strings.Contains(clock, "AM") || strings.Contains(clock, "PM") {
		return clock
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
