package survey

import (
	"nutrisurvey-service/internal/pkg/constvars"
)

// AnswerSet is the ingestion boundary for the raw answer bag of one survey
// session. Statically known question keys are pulled into named fields; every
// other key lands in Extra so unknown questions survive round trips without
// ad hoc map probing downstream. Values keep their loose store types
// (string, float64, bool, []interface{}) because the collector does not
// normalize them either.
type AnswerSet struct {
	Department         interface{}
	Age                interface{}
	Gender             interface{}
	YearLevel          interface{}
	HeightCm           interface{}
	WeightKg           interface{}
	DisplayName        interface{}
	SelfWeightStatus   interface{}
	DailyFunctioning   interface{}
	K42                interface{}
	K43                interface{}
	SurgeryHistory     interface{}
	SurgeryDetail      interface{}
	RegularMedications interface{}
	UnderlyingDiseases interface{}
	StressLevel        interface{}

	StressItems [5]interface{}
	TriItems    [6]interface{}
	Diet31      [5]interface{}
	Diet32      [5]interface{}
	Diet33      [5]interface{}

	// Computed carries the collector-derived sub-object (BMI, BSA and their
	// statuses). Pass-through only; nothing in it is recomputed here.
	Computed map[string]interface{}

	// Extra holds every unrecognized key, preserved for the raw-answer view.
	Extra map[string]interface{}

	raw map[string]interface{}
}

// NewAnswerSet splits a raw answer bag into the typed fields above. The input
// map is not mutated. A nil bag yields an empty, usable AnswerSet.
func NewAnswerSet(raw map[string]interface{}) *AnswerSet {
	a := &AnswerSet{
		Extra: map[string]interface{}{},
		raw:   map[string]interface{}{},
	}
	if raw == nil {
		return a
	}

	known := map[string]*interface{}{
		constvars.AnswerKeyDepartment:         &a.Department,
		constvars.AnswerKeyAge:                &a.Age,
		constvars.AnswerKeyGender:             &a.Gender,
		constvars.AnswerKeyYearLevel:          &a.YearLevel,
		constvars.AnswerKeyHeightCm:           &a.HeightCm,
		constvars.AnswerKeyWeightKg:           &a.WeightKg,
		constvars.AnswerKeyDisplayName:        &a.DisplayName,
		constvars.AnswerKeySelfWeightStatus:   &a.SelfWeightStatus,
		constvars.AnswerKeyDailyFunctioning:   &a.DailyFunctioning,
		constvars.AnswerKeyK42:                &a.K42,
		constvars.AnswerKeyK43:                &a.K43,
		constvars.AnswerKeySurgeryHistory:     &a.SurgeryHistory,
		constvars.AnswerKeySurgeryDetail:      &a.SurgeryDetail,
		constvars.AnswerKeyRegularMedications: &a.RegularMedications,
		constvars.AnswerKeyUnderlyingDiseases: &a.UnderlyingDiseases,
		constvars.AnswerKeyStressLevel:        &a.StressLevel,
	}
	for i, key := range constvars.StressItemKeys {
		known[key] = &a.StressItems[i]
	}
	for i, key := range constvars.TriStateKeys {
		known[key] = &a.TriItems[i]
	}
	for i, key := range constvars.Diet31Keys {
		known[key] = &a.Diet31[i]
	}
	for i, key := range constvars.Diet32Keys {
		known[key] = &a.Diet32[i]
	}
	for i, key := range constvars.Diet33Keys {
		known[key] = &a.Diet33[i]
	}

	for key, value := range raw {
		a.raw[key] = value
		if key == constvars.AnswerKeyComputed {
			if m, ok := value.(map[string]interface{}); ok {
				a.Computed = m
			}
			continue
		}
		if target, ok := known[key]; ok {
			*target = value
			continue
		}
		a.Extra[key] = value
	}

	return a
}

// Raw returns the original bag, for the PII-stripped raw-answer view.
func (a *AnswerSet) Raw() map[string]interface{} {
	return a.raw
}

// ComputedValue reads one field of the collector-derived sub-object.
func (a *AnswerSet) ComputedValue(key string) interface{} {
	if a.Computed == nil {
		return nil
	}
	return a.Computed[key]
}

// FirstNonNil returns the first non-nil value, used for key fallback chains
// such as k42 -> self_weight_status.
func FirstNonNil(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
