package constvars

// Question keys of the nutrition/stress form as stored in the answer bag.
const (
	AnswerKeyDepartment         = "current_department"
	AnswerKeyAge                = "age"
	AnswerKeyGender             = "gender"
	AnswerKeyYearLevel          = "year_level"
	AnswerKeyHeightCm           = "height_cm"
	AnswerKeyWeightKg           = "weight_kg"
	AnswerKeyDisplayName        = "display_name"
	AnswerKeySelfWeightStatus   = "self_weight_status"
	AnswerKeyDailyFunctioning   = "daily_functioning"
	AnswerKeyK42                = "k42"
	AnswerKeyK43                = "k43"
	AnswerKeySurgeryHistory     = "surgery_history"
	AnswerKeySurgeryDetail      = "surgery_detail"
	AnswerKeyRegularMedications = "regular_medications"
	AnswerKeyUnderlyingDiseases = "underlying_diseases"
	AnswerKeyStressLevel        = "stress_level"

	// Derived values produced by the collector, never recomputed here.
	AnswerKeyComputed    = "_computed"
	ComputedKeyBMI       = "bmi"
	ComputedKeyBSA       = "bsa"
	ComputedKeyBMIStatus = "bmi_status"
	ComputedKeyBSAStatus = "bsa_status"
)

var (
	StressItemKeys = []string{"st5_q1", "st5_q2", "st5_q3", "st5_q4", "st5_q5"}
	TriStateKeys   = []string{"k41_q1", "k41_q2", "k41_q3", "k41_q4", "k41_q5", "k41_q6"}

	Diet31Keys = []string{"diet31_q1", "diet31_q2", "diet31_q3", "diet31_q4", "diet31_q5"}
	Diet32Keys = []string{"diet32_q1", "diet32_q2", "diet32_q3", "diet32_q4", "diet32_q5"}
	Diet33Keys = []string{"diet33_q1", "diet33_q2", "diet33_q3", "diet33_q4", "diet33_q5"}
)

// Keys stripped from any externally exposed raw-answer payload.
var PIIAnswerKeys = []string{"email", "name", "display_name", "phone", "tel", "id_card", "citizen_id"}
