package survey

import (
	"fmt"
	"strconv"
	"strings"
)

// The mappers translate the Thai categorical answers the form collects into
// normalized codes or English labels. Every mapper propagates nil and passes
// unrecognized non-nil values through unchanged instead of rejecting them:
// a typo in one answer must not break a whole export.

func stringify(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// MapGender yields 1 for female, 0 for male, accepting Thai labels or the
// numeric codes themselves. Anything else is nil.
func MapGender(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(stringify(v)))
	switch s {
	case "หญิง":
		return 1
	case "ชาย":
		return 0
	case "1":
		return 1
	case "0":
		return 0
	}
	return nil
}

// MapYearLevel recognizes study years 4-6 in Thai or numeric form.
func MapYearLevel(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch strings.TrimSpace(stringify(v)) {
	case "ชั้นปีที่ 4", "4":
		return 4
	case "ชั้นปีที่ 5", "5":
		return 5
	case "ชั้นปีที่ 6", "6":
		return 6
	}
	return nil
}

// MapTriState normalizes a yes/no/unsure answer to 1/0/2. Numeric and boolean
// inputs are accepted (true→1, false→0); unrecognized values yield nil.
func MapTriState(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch value := v.(type) {
	case float64:
		n := int(value)
		if value == float64(n) && (n == 0 || n == 1 || n == 2) {
			return n
		}
		return nil
	case int:
		if value == 0 || value == 1 || value == 2 {
			return value
		}
		return nil
	case bool:
		if value {
			return 1
		}
		return 0
	}

	switch strings.ToLower(strings.TrimSpace(stringify(v))) {
	case "ไม่ใช่", "no", "false", "0":
		return 0
	case "ใช่", "yes", "true", "1":
		return 1
	case "ไม่แน่ใจ", "unsure", "not sure", "2":
		return 2
	}
	return nil
}

func MapWeightStatusEn(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "น้ำหนักเกิน":
		return "Overweight"
	case "น้ำหนักปกติ":
		return "Normal weight"
	case "น้ำหนักน้อยกว่าปกติ":
		return "Underweight"
	case "ไม่แน่ใจ":
		return "Unsure"
	}
	return s
}

func MapDailyFunctionEn(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "เหนื่อยง่าย":
		return "Easily fatigued"
	case "ปกติ":
		return "Normal"
	case "กระตือรือร้น":
		return "Energetic"
	case "ผิดปกติ":
		return "Abnormal"
	case "ไม่แน่ใจ":
		return "Unsure"
	}
	return s
}

// MapStressLevelEn translates the stored Thai stress label to English.
func MapStressLevelEn(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "ความเครียดน้อย":
		return "Low"
	case "ความเครียดปานกลาง":
		return "Moderate"
	case "ความเครียดมาก":
		return "High"
	case "ความเครียดมากที่สุด":
		return "Very high"
	}
	return s
}

// MapToCode turns มี/ไม่มี into 1/0 and rewrites the "อื่นๆ ..." free-text
// prefix to "Others"; everything else passes through.
func MapToCode(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	switch s {
	case "ไม่มี":
		return "0"
	case "มี":
		return "1"
	}
	if strings.HasPrefix(s, "อื่นๆ") {
		return "Others" + strings.TrimPrefix(s, "อื่นๆ")
	}
	if strings.HasPrefix(s, "อื่น") {
		return "Others" + strings.TrimPrefix(s, "อื่น")
	}
	return s
}

// ListToText flattens a list answer to one " / "-joined string. The separator
// deliberately avoids commas, quotes and brackets so the value stays inert
// inside a CSV field. Blank entries are dropped; an all-blank list is nil.
func ListToText(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return stringify(v)
	}
	items := make([]string, 0, len(list))
	for _, item := range list {
		if item == nil {
			continue
		}
		s := strings.TrimSpace(stringify(item))
		if s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return strings.Join(items, " / ")
}
