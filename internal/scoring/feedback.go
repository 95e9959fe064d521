package scoring

import "strings"

// Feedback thresholds on the mean sub-score, each sub-score being in [1,10].
const (
	feedbackExcellent = 8.5
	feedbackGood      = 7.0
	feedbackAverage   = 5.5
)

type feedbackBands struct {
	excellent string
	good      string
	average   string
	poor      string
}

var yearBands = map[string]feedbackBands{
	"1": {
		excellent: "Year 1: Strong foundation built. Excellent start!",
		good:      "Year 1: Good work. Focus on consistency going forward.",
		average:   "Year 1: Decent beginning. Improve basics for upcoming years.",
		poor:      "Year 1: Struggled with core concepts. Seek help and review fundamentals.",
	},
	"2": {
		excellent: "Year 2: Great improvement. Keep pushing forward!",
		good:      "Year 2: Good performance. Some areas need refining.",
		average:   "Year 2: Average performance. Put more focus on growth.",
		poor:      "Year 2: Below expectations. Time to regroup and work smarter.",
	},
	"3": {
		excellent: "Year 3: Outstanding progress. You're on the right path!",
		good:      "Year 3: Solid results. Aim for excellence next year.",
		average:   "Year 3: Fair effort. Step up to meet upcoming challenges.",
		poor:      "Year 3: Major gaps remain. Intensive effort needed.",
	},
	"4": {
		excellent: "Year 4: Excellent finish to the academic journey!",
		good:      "Year 4: Good closure. Could polish some skills.",
		average:   "Year 4: Acceptable results. Consistency needed.",
		poor:      "Year 4: Disappointing final year. Reassess priorities.",
	},
}

var overallBands = feedbackBands{
	excellent: "Your overall performance is truly exceptional, reflecting a consistent and outstanding level of academic excellence. " +
		"You demonstrate a profound understanding of the material, coupled with remarkable skills in critical thinking, presentation, and engagement. " +
		"Your ability to deliver high-quality work under pressure and maintain a high standard across all assessed areas sets you apart as a top performer. " +
		"Continue to leverage your strengths and seek opportunities to mentor peers, as your capabilities indicate significant potential for leadership and further academic success.",
	good: "You have established yourself as a strong and reliable academic performer, consistently delivering solid results across various assessments. " +
		"Your work reflects a good grasp of key concepts, effective communication skills, and a commendable level of dedication. " +
		"While you excel in many areas, there may be opportunities to refine specific skills, such as enhancing creativity in presentations or deepening analytical insights. " +
		"By focusing on these areas, you can elevate your performance to an even higher level and unlock your full potential.",
	average: "Your academic journey reflects an average performance with clear potential that remains untapped. " +
		"You demonstrate a foundational understanding of the material and are capable of meeting basic expectations, but there is room for growth in areas such as content depth, presentation skills, or time management. " +
		"Engaging more actively with feedback, seeking additional resources, and practicing consistently can help you build confidence and improve your outcomes. " +
		"With focused effort, you have the opportunity to transform your performance and achieve greater success.",
	poor: "Your academic performance indicates a need for significant improvement to meet expected standards. " +
		"While you may face challenges in areas such as content quality, engagement, or effective time management, these are opportunities for growth. " +
		"Consider working closely with instructors, utilizing academic support resources, and developing a structured study plan to address weaknesses. " +
		"With dedication and persistence, you can make meaningful progress and build a stronger foundation for future academic endeavors.",
}

func (b feedbackBands) pick(avg float64) string {
	switch {
	case avg >= feedbackExcellent:
		return b.excellent
	case avg >= feedbackGood:
		return b.good
	case avg >= feedbackAverage:
		return b.average
	default:
		return b.poor
	}
}

// YearFeedback returns the performance feedback line for the given
// academic year and mean sub-score. Year labels like "Year 2" normalize
// to "2"; labels outside years 1..4 fall back to the overall feedback.
func YearFeedback(year string, avg float64) string {
	key := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(year), "Year"))
	if bands, ok := yearBands[key]; ok {
		return bands.pick(avg)
	}
	return OverallFeedback(avg)
}

// OverallFeedback returns the long-form feedback paragraph for a mean
// sub-score across all years.
func OverallFeedback(avg float64) string {
	return overallBands.pick(avg)
}
