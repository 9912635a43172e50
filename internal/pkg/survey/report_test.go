package survey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleAnswers() map[string]interface{} {
	return map[string]interface{}{
		"current_department": "อายุรกรรม",
		"age":                "23",
		"gender":             "หญิง",
		"year_level":         "ชั้นปีที่ 5",
		"height_cm":          float64(165),
		"weight_kg":          float64(52),
		"_computed": map[string]interface{}{
			"bmi":        19.1,
			"bmi_status": "Normal",
			"bsa":        1.55,
			"bsa_status": "Normal",
		},
		"k41_q1":              "ใช่",
		"k41_q2":              "ไม่ใช่",
		"k42":                 "น้ำหนักปกติ",
		"k43":                 "ปกติ",
		"surgery_history":     "ไม่มี",
		"regular_medications": []interface{}{"วิตามิน", "ยาแก้แพ้"},
		"underlying_diseases": "ไม่มี",
		"diet31_q1":           "ทุกวัน/เกือบทุกวัน",
		"diet31_q2":           "3-4 ครั้งต่อสัปดาห์",
		"st5_q1":              "2",
		"st5_q2":              "1",
		"st5_q3":              "3",
		"st5_q4":              "2",
		"st5_q5":              "3",
	}
}

func TestBuildReportRow(t *testing.T) {
	finished := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
	meta := SessionMeta{
		ID:          "sess-1",
		SubmittedAt: &finished,
		IsCompleted: true,
	}

	row := BuildReportRow(meta, NewAnswerSet(sampleAnswers()))

	assert.Equal(t, finished.Local().Format("2006-01-02"), row.Get("date_only"))
	assert.Equal(t, "อายุรกรรม", row.Get("Department"))
	assert.Equal(t, 1, row.Get("Gender"))
	assert.Equal(t, 5, row.Get("Grade"))
	assert.Equal(t, "Normal", row.Get("BMI_Status"))
	assert.Equal(t, 1, row.Get("K41_Q1"))
	assert.Equal(t, 0, row.Get("K41_Q2"))
	assert.Nil(t, row.Get("K41_Q3"))
	assert.Equal(t, "Normal weight", row.Get("Self_weight_status"))
	assert.Equal(t, "Normal", row.Get("Daily_functioning"))
	assert.Equal(t, "0", row.Get("Surgery_history"))
	assert.Equal(t, "วิตามิน / ยาแก้แพ้", row.Get("Regular_Medications"))
	assert.Equal(t, "0", row.Get("Underlying_Diseases"))
	assert.Equal(t, 3, row.Get("Diet31_Q1_Score"))
	assert.Equal(t, 2, row.Get("Diet31_Q2_Score"))
	assert.Equal(t, 5, row.Get("Diet31_Total_Score"))
	assert.Equal(t, 0, row.Get("Diet32_Total_Score"))
	assert.Equal(t, 11, row.Get("Stress_Score"))
	// No stored stress_level answer, so the label falls back to the score band.
	assert.Equal(t, "Very high", row.Get("Stress_Level"))
}

func TestBuildReportRowStoredStressLevelWins(t *testing.T) {
	answers := sampleAnswers()
	answers["stress_level"] = "ความเครียดน้อย"

	row := BuildReportRow(SessionMeta{ID: "sess-2"}, NewAnswerSet(answers))

	assert.Equal(t, "Low", row.Get("Stress_Level"))
	assert.Equal(t, 11, row.Get("Stress_Score"))
}

func TestBuildReportRowEmptySession(t *testing.T) {
	row := BuildReportRow(SessionMeta{}, NewAnswerSet(nil))

	assert.Nil(t, row.Get("date_only"))
	assert.Equal(t, 0, row.Get("Stress_Score"))
	assert.Equal(t, "Low", row.Get("Stress_Level"))
	assert.Equal(t, 0, row.Get("Diet31_Total_Score"))
}

func TestReportHeadersStable(t *testing.T) {
	headers := ReportHeaders()

	assert.Equal(t, "date_only", headers[0])
	assert.Contains(t, headers, "BMI_Status")
	assert.Contains(t, headers, "Diet33_Total_Score")
	assert.Contains(t, headers, "Stress_Level")

	// Schema order must not depend on the data in the row.
	row := BuildReportRow(SessionMeta{}, NewAnswerSet(sampleAnswers()))
	assert.Equal(t, headers, row.Headers())
}

func TestNewAnswerSetSplitsKnownAndExtra(t *testing.T) {
	a := NewAnswerSet(map[string]interface{}{
		"age":         "20",
		"mystery_q99": "x",
		"_computed":   map[string]interface{}{"bmi": 21.0},
		"st5_q3":      "2",
	})

	assert.Equal(t, "20", a.Age)
	assert.Equal(t, "2", a.StressItems[2])
	assert.Equal(t, 21.0, a.ComputedValue("bmi"))
	assert.Equal(t, "x", a.Extra["mystery_q99"])
	assert.NotContains(t, a.Extra, "age")
}
