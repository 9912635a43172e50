package survey

import (
	"strconv"
	"time"
)

// SessionMeta is the slice of session metadata the report builder needs.
// The repository layer converts its store model into this shape.
type SessionMeta struct {
	ID          string
	FormID      string
	FormSlug    string
	FormVersion interface{}
	StartedAt   *time.Time
	SubmittedAt *time.Time
	CompletedAt *time.Time
	IsCompleted bool
}

// FinishedAt is the first non-nil of the submitted and completed timestamps.
func (m SessionMeta) FinishedAt() *time.Time {
	if m.SubmittedAt != nil {
		return m.SubmittedAt
	}
	return m.CompletedAt
}

// Field is one named cell of a ReportRow.
type Field struct {
	Name  string
	Value interface{}
}

// ReportRow is the flat, ordered record one session exports to. It has no
// identity of its own and is rebuilt from the session on every request.
type ReportRow struct {
	Fields []Field
}

// Headers returns the field names in schema order.
func (r ReportRow) Headers() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Values returns the cell values in schema order.
func (r ReportRow) Values() []interface{} {
	values := make([]interface{}, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Value
	}
	return values
}

// Get looks a cell up by name; nil if the schema has no such field.
func (r ReportRow) Get(name string) interface{} {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// BuildReportRow derives the export record for one session. The derivation is
// pure: same session and answers always produce the same row.
func BuildReportRow(meta SessionMeta, a *AnswerSet) ReportRow {
	d31 := DietGroupScores(a.Diet31)
	d32 := DietGroupScores(a.Diet32)
	d33 := DietGroupScores(a.Diet33)

	stressTotal := StressScore(a)
	stressLabel := a.StressLevel
	if stressLabel == nil {
		stressLabel = ThaiStressLabel(stressTotal)
	}

	dateOnly := interface{}(nil)
	if finished := meta.FinishedAt(); finished != nil {
		dateOnly = finished.Local().Format("2006-01-02")
	}

	fields := []Field{
		{"date_only", dateOnly},

		{"Department", a.Department},
		{"Age", a.Age},
		{"Gender", MapGender(a.Gender)},
		{"Grade", MapYearLevel(a.YearLevel)},
		{"Height_cm", a.HeightCm},
		{"Weight_kg", a.WeightKg},

		{"BMI", a.ComputedValue("bmi")},
		{"BMI_Status", a.ComputedValue("bmi_status")},
		{"BSA", a.ComputedValue("bsa")},
		{"BSA_Status", a.ComputedValue("bsa_status")},
	}

	for i, key := range []string{"K41_Q1", "K41_Q2", "K41_Q3", "K41_Q4", "K41_Q5", "K41_Q6"} {
		fields = append(fields, Field{key, MapTriState(a.TriItems[i])})
	}

	fields = append(fields,
		Field{"Self_weight_status", MapWeightStatusEn(FirstNonNil(a.K42, a.SelfWeightStatus))},
		Field{"Daily_functioning", MapDailyFunctionEn(FirstNonNil(a.K43, a.DailyFunctioning))},
		Field{"Surgery_history", MapToCode(a.SurgeryHistory)},
		Field{"Surgery_detail", MapToCode(a.SurgeryDetail)},
		Field{"Regular_Medications", MapToCode(ListToText(a.RegularMedications))},
		Field{"Underlying_Diseases", MapToCode(ListToText(a.UnderlyingDiseases))},
	)

	fields = appendDietGroup(fields, "Diet31", d31)
	fields = appendDietGroup(fields, "Diet32", d32)
	fields = appendDietGroup(fields, "Diet33", d33)

	for i, key := range []string{"ST5_Q1", "ST5_Q2", "ST5_Q3", "ST5_Q4", "ST5_Q5"} {
		fields = append(fields, Field{key, a.StressItems[i]})
	}
	fields = append(fields,
		Field{"Stress_Score", stressTotal},
		Field{"Stress_Level", MapStressLevelEn(stressLabel)},
	)

	return ReportRow{Fields: fields}
}

// ReportHeaders returns the fixed export schema order without needing data.
func ReportHeaders() []string {
	return BuildReportRow(SessionMeta{}, NewAnswerSet(nil)).Headers()
}

func appendDietGroup(fields []Field, prefix string, scores [5]interface{}) []Field {
	for i, score := range scores {
		fields = append(fields, Field{Name: prefix + "_Q" + strconv.Itoa(i+1) + "_Score", Value: score})
	}
	return append(fields, Field{Name: prefix + "_Total_Score", Value: DietGroupTotal(scores)})
}
