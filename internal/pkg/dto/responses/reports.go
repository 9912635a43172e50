package responses

// RespondentListItem mirrors one survey session in the admin list view. The
// session id stands in for the respondent; no identity is exposed.
type RespondentListItem struct {
	UserID     string      `json:"userId"`
	Name       string      `json:"name"`
	Email      interface{} `json:"email"`
	Picture    interface{} `json:"picture"`
	SessionID  string      `json:"sessionId"`
	StartedAt  string      `json:"startedAt"`
	FinishedAt *string     `json:"finishedAt"`
	Stress     int         `json:"stress"`
	Department interface{} `json:"department"`
}

type RespondentListMeta struct {
	TotalUsers int `json:"totalUsers"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Count      int `json:"count"`
}

type RespondentList struct {
	Meta  RespondentListMeta   `json:"meta"`
	Items []RespondentListItem `json:"items"`
}

type RespondentSummary struct {
	SessionID   string      `json:"sessionId"`
	FormID      string      `json:"formId"`
	FormSlug    string      `json:"formSlug"`
	Version     interface{} `json:"version"`
	StartedAt   string      `json:"startedAt"`
	FinishedAt  *string     `json:"finishedAt"`
	IsCompleted bool        `json:"isCompleted"`
	Status      interface{} `json:"status"`
	Progress    interface{} `json:"progress"`
	Gender      interface{} `json:"gender"`
	YearLevel   interface{} `json:"yearLevel"`
	Age         interface{} `json:"age"`
	Department  interface{} `json:"department"`
	Stress      int         `json:"stress"`
	BMI         interface{} `json:"bmi"`
	BSA         interface{} `json:"bsa"`
	BMIStatus   interface{} `json:"bmiStatus"`
	BSAStatus   interface{} `json:"bsaStatus"`
}

// RespondentDetail is the summary+answers shape of the detail endpoint.
// Answers are PII-stripped before they reach this structure.
type RespondentDetail struct {
	Summary RespondentSummary      `json:"summary"`
	Answers map[string]interface{} `json:"answers"`
}

type StressStatsItem struct {
	ID        string `json:"id"`
	Score     int    `json:"score"`
	Level     string `json:"level"`
	YearLevel string `json:"yearLevel"`
}

type StressStats struct {
	Total        int               `json:"total"`
	Distribution map[string]int    `json:"distribution"`
	Items        []StressStatsItem `json:"items"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type StatsDetail struct {
	Items []NamedValue `json:"items"`
}

type MonthlyPoint struct {
	Month string  `json:"month"`
	Avg   float64 `json:"avg"`
}

type MonthlyAverages struct {
	Topic string         `json:"topic"`
	Label string         `json:"label"`
	Items []MonthlyPoint `json:"items"`
}
