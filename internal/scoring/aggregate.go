package scoring

import (
	"math"
	"sort"

	"presentpath/internal/models"
)

// Total sums the five sub-scores. With each sub-score in [1,10] the
// result is in [5,50].
func Total(m models.Mark) int {
	total := 0
	for _, s := range m.SubScores() {
		total += s
	}
	return total
}

// Average is Total/5, rounded to two decimal places.
func Average(m models.Mark) float64 {
	return math.Round(float64(Total(m))/5*100) / 100
}

// YearMeans holds the per-sub-score means across all marks of one year.
type YearMeans struct {
	Year                     string  `json:"year"`
	Count                    int     `json:"count"`
	ContentQuality           float64 `json:"content_quality"`
	PresentationSkills       float64 `json:"presentation_skills"`
	SlideDesign              float64 `json:"slide_design"`
	EngagementAndInteraction float64 `json:"engagement_and_interaction"`
	TimeManagement           float64 `json:"time_management"`
}

// OverallMean is the mean of the five sub-score means, rounded to two
// decimal places. It is the score the feedback thresholds apply to.
func (y YearMeans) OverallMean() float64 {
	sum := y.ContentQuality + y.PresentationSkills + y.SlideDesign +
		y.EngagementAndInteraction + y.TimeManagement
	return round2(sum / 5)
}

// MeanAverage is the mean of per-mark averages across all records,
// rounded to two decimal places. Zero when marks is empty.
func MeanAverage(marks []models.Mark) float64 {
	if len(marks) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range marks {
		sum += float64(Total(m)) / 5
	}
	return round2(sum / float64(len(marks)))
}

// GroupMeansByYear computes, for every year present in marks, the mean of
// each sub-score across the records sharing that year. Output is sorted
// by year so renders are stable.
func GroupMeansByYear(marks []models.Mark) []YearMeans {
	type sums struct {
		count  int
		totals [5]int
	}

	byYear := make(map[string]*sums)
	for _, m := range marks {
		s, ok := byYear[m.Year]
		if !ok {
			s = &sums{}
			byYear[m.Year] = s
		}
		s.count++
		for i, v := range m.SubScores() {
			s.totals[i] += v
		}
	}

	means := make([]YearMeans, 0, len(byYear))
	for year, s := range byYear {
		n := float64(s.count)
		means = append(means, YearMeans{
			Year:                     year,
			Count:                    s.count,
			ContentQuality:           round2(float64(s.totals[0]) / n),
			PresentationSkills:       round2(float64(s.totals[1]) / n),
			SlideDesign:              round2(float64(s.totals[2]) / n),
			EngagementAndInteraction: round2(float64(s.totals[3]) / n),
			TimeManagement:           round2(float64(s.totals[4]) / n),
		})
	}

	sort.Slice(means, func(i, j int) bool { return means[i].Year < means[j].Year })
	return means
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
