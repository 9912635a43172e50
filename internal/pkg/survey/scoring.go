package survey

import (
	"strconv"
	"strings"
)

// Stress levels reported by the analytics endpoints.
const (
	StressLevelLow      = "Low"
	StressLevelModerate = "Moderate"
	StressLevelHigh     = "High"
	StressLevelSevere   = "Severe"
)

// Thai stress labels written by the form itself; used as the fallback when a
// session predates the stored stress_level answer.
const (
	ThaiStressLow      = "ความเครียดน้อย"
	ThaiStressModerate = "ความเครียดปานกลาง"
	ThaiStressHigh     = "ความเครียดมาก"
	ThaiStressHighest  = "ความเครียดมากที่สุด"
)

func toInt(v interface{}) int {
	if v == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(stringify(v)))
	if err != nil {
		return 0
	}
	return n
}

// StressScore sums the five ST-5 Likert items. Absent or unparseable items
// contribute zero so a partial questionnaire still scores; the sum is not clamped.
func StressScore(a *AnswerSet) int {
	total := 0
	for _, item := range a.StressItems {
		total += toInt(item)
	}
	return total
}

// StressLevel buckets a score for the stats endpoints.
func StressLevel(score int) string {
	switch {
	case score <= 4:
		return StressLevelLow
	case score <= 7:
		return StressLevelModerate
	case score <= 9:
		return StressLevelHigh
	default:
		return StressLevelSevere
	}
}

// ThaiStressLabel buckets a score into the label the form would have stored.
// Band boundaries match StressLevel; only the top band's wording differs
// once mapped to English ("Very high" vs "Severe").
func ThaiStressLabel(score int) string {
	switch {
	case score >= 10:
		return ThaiStressHighest
	case score >= 8:
		return ThaiStressHigh
	case score >= 5:
		return ThaiStressModerate
	default:
		return ThaiStressLow
	}
}

// DietItemScore maps one eating-frequency answer to its score: the three
// fixed phrases score 3/2/1, a bare integer is taken as-is, anything else is nil.
func DietItemScore(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "ทุกวัน/เกือบทุกวัน":
		return 3
	case "3-4 ครั้งต่อสัปดาห์":
		return 2
	case "แทบไม่ทำ/ไม่ทำเลย":
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return n
}

// DietGroupScores scores a five-item diet group.
func DietGroupScores(items [5]interface{}) [5]interface{} {
	var scores [5]interface{}
	for i, item := range items {
		scores[i] = DietItemScore(item)
	}
	return scores
}

// DietGroupTotal sums item scores treating nil as zero.
func DietGroupTotal(scores [5]interface{}) int {
	total := 0
	for _, s := range scores {
		if n, ok := s.(int); ok {
			total += n
		}
	}
	return total
}
