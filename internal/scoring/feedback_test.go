package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"presentpath/internal/models"
)

func TestYearFeedbackThresholds(t *testing.T) {
	tests := []struct {
		name string
		year string
		avg  float64
		want string
	}{
		{"year 1 excellent at boundary", "1", 8.5, "Year 1: Strong foundation built. Excellent start!"},
		{"year 1 good just below excellent", "1", 8.49, "Year 1: Good work. Focus on consistency going forward."},
		{"year 1 good at boundary", "1", 7.0, "Year 1: Good work. Focus on consistency going forward."},
		{"year 1 average just below good", "1", 6.99, "Year 1: Decent beginning. Improve basics for upcoming years."},
		{"year 1 average at boundary", "1", 5.5, "Year 1: Decent beginning. Improve basics for upcoming years."},
		{"year 1 poor just below average", "1", 5.49, "Year 1: Struggled with core concepts. Seek help and review fundamentals."},
		{"year 2 excellent", "2", 9.1, "Year 2: Great improvement. Keep pushing forward!"},
		{"year 3 average", "3", 6.0, "Year 3: Fair effort. Step up to meet upcoming challenges."},
		{"year 4 poor", "4", 4.2, "Year 4: Disappointing final year. Reassess priorities."},
		{"prefixed label normalizes", "Year 2", 7.5, "Year 2: Good performance. Some areas need refining."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearFeedback(tt.year, tt.avg))
		})
	}
}

func TestYearFeedbackUnknownYearFallsBackToOverall(t *testing.T) {
	assert.Equal(t, OverallFeedback(7.5), YearFeedback("2025", 7.5))
	assert.Equal(t, OverallFeedback(4.0), YearFeedback("", 4.0))
}

func TestOverallFeedbackThresholds(t *testing.T) {
	tests := []struct {
		name string
		avg  float64
		want string
	}{
		{"excellent at boundary", 8.5, "truly exceptional"},
		{"good just below excellent", 8.49, "strong and reliable"},
		{"good at boundary", 7.0, "strong and reliable"},
		{"average just below good", 6.99, "average performance"},
		{"average at boundary", 5.5, "average performance"},
		{"poor just below average", 5.49, "significant improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, OverallFeedback(tt.avg), tt.want)
		})
	}
}

func TestOverallMeanAndMeanAverage(t *testing.T) {
	mark := func(v int) models.Mark {
		return models.Mark{
			Year:                     "1",
			ContentQuality:           v,
			PresentationSkills:       v,
			SlideDesign:              v,
			EngagementAndInteraction: v,
			TimeManagement:           v,
		}
	}

	ym := YearMeans{
		ContentQuality:           8,
		PresentationSkills:       7,
		SlideDesign:              9,
		EngagementAndInteraction: 6,
		TimeManagement:           8,
	}
	assert.InDelta(t, 7.6, ym.OverallMean(), 0.001)

	assert.Equal(t, 0.0, MeanAverage(nil))
	assert.InDelta(t, 7.0, MeanAverage([]models.Mark{mark(6), mark(8)}), 0.001)
}
