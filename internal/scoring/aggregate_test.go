package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"presentpath/internal/models"
)

func mark(studentNo, year string, scores [5]int) models.Mark {
	return models.Mark{
		StudentNo:                studentNo,
		Year:                     year,
		Semester:                 "Year 1 Semester 1",
		PresentationTitle:        "Demo",
		ContentQuality:           scores[0],
		PresentationSkills:       scores[1],
		SlideDesign:              scores[2],
		EngagementAndInteraction: scores[3],
		TimeManagement:           scores[4],
	}
}

func TestTotal(t *testing.T) {
	testCases := []struct {
		name     string
		scores   [5]int
		expected int
	}{
		{
			name:     "All minimum",
			scores:   [5]int{1, 1, 1, 1, 1},
			expected: 5,
		},
		{
			name:     "All maximum",
			scores:   [5]int{10, 10, 10, 10, 10},
			expected: 50,
		},
		{
			name:     "Mixed scores",
			scores:   [5]int{7, 8, 6, 9, 5},
			expected: 35,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := mark("ST001", "2025", tc.scores)
			total := Total(m)
			assert.Equal(t, tc.expected, total)
			assert.GreaterOrEqual(t, total, 5)
			assert.LessOrEqual(t, total, 50)
		})
	}
}

func TestAverage(t *testing.T) {
	testCases := []struct {
		name     string
		scores   [5]int
		expected float64
	}{
		{
			name:     "Whole number average",
			scores:   [5]int{7, 8, 6, 9, 5},
			expected: 7.0,
		},
		{
			name:     "Two decimal places",
			scores:   [5]int{7, 8, 6, 9, 6},
			expected: 7.2,
		},
		{
			name:     "Repeating decimal rounds",
			scores:   [5]int{1, 1, 1, 1, 2},
			expected: 1.2,
		},
		{
			name:     "Rounds to nearest cent",
			scores:   [5]int{3, 3, 3, 3, 4},
			expected: 3.2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := mark("ST001", "2025", tc.scores)
			assert.InDelta(t, tc.expected, Average(m), 0.001)
		})
	}
}

func TestAverageIsTotalOverFive(t *testing.T) {
	m := mark("ST002", "2025", [5]int{4, 9, 2, 10, 7})
	assert.InDelta(t, float64(Total(m))/5, Average(m), 0.005)
}

func TestGroupMeansByYear(t *testing.T) {
	marks := []models.Mark{
		mark("ST001", "2024", [5]int{10, 8, 6, 4, 2}),
		mark("ST002", "2024", [5]int{6, 8, 10, 8, 6}),
		mark("ST003", "2025", [5]int{5, 5, 5, 5, 5}),
	}

	means := GroupMeansByYear(marks)
	assert.Len(t, means, 2)

	assert.Equal(t, "2024", means[0].Year)
	assert.Equal(t, 2, means[0].Count)
	assert.InDelta(t, 8.0, means[0].ContentQuality, 0.001)
	assert.InDelta(t, 8.0, means[0].PresentationSkills, 0.001)
	assert.InDelta(t, 8.0, means[0].SlideDesign, 0.001)
	assert.InDelta(t, 6.0, means[0].EngagementAndInteraction, 0.001)
	assert.InDelta(t, 4.0, means[0].TimeManagement, 0.001)

	assert.Equal(t, "2025", means[1].Year)
	assert.Equal(t, 1, means[1].Count)
	assert.InDelta(t, 5.0, means[1].TimeManagement, 0.001)
}

func TestGroupMeansByYearEmpty(t *testing.T) {
	assert.Empty(t, GroupMeansByYear(nil))
}
