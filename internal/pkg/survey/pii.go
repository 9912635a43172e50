package survey

import "nutrisurvey-service/internal/pkg/constvars"

var piiKeys = func() map[string]struct{} {
	m := make(map[string]struct{}, len(constvars.PIIAnswerKeys))
	for _, k := range constvars.PIIAnswerKeys {
		m[k] = struct{}{}
	}
	return m
}()

// StripPII removes personally identifying keys from a raw answer payload
// before it leaves the service. The walk covers nested maps and arrays at any
// depth and always returns a copy; the input is never mutated. This runs
// unconditionally on every externally returned raw-answer view.
func StripPII(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			if _, denied := piiKeys[k]; denied {
				continue
			}
			out[k] = StripPII(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, v := range typed {
			out[i] = StripPII(v)
		}
		return out
	default:
		return value
	}
}

// StripPIIMap is StripPII specialized for the top-level answer bag.
func StripPIIMap(answers map[string]interface{}) map[string]interface{} {
	if answers == nil {
		return map[string]interface{}{}
	}
	return StripPII(answers).(map[string]interface{})
}
