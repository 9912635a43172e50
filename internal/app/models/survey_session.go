package models

import (
	"time"

	"nutrisurvey-service/internal/pkg/survey"
)

// SurveySession mirrors one respondent session row in the external survey
// store. The collector owns these documents; this service only reads them.
type SurveySession struct {
	ID          string                 `bson:"_id" json:"id"`
	FormID      string                 `bson:"form_id" json:"form_id"`
	FormSlug    string                 `bson:"form_slug" json:"form_slug"`
	FormVersion interface{}            `bson:"form_version,omitempty" json:"form_version,omitempty"`
	StartedAt   *time.Time             `bson:"started_at" json:"started_at"`
	SubmittedAt *time.Time             `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	CompletedAt *time.Time             `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	IsCompleted bool                   `bson:"is_completed" json:"is_completed"`
	Status      interface{}            `bson:"status,omitempty" json:"status,omitempty"`
	Progress    interface{}            `bson:"progress,omitempty" json:"progress,omitempty"`
	Answers     map[string]interface{} `bson:"answers" json:"answers"`
}

// FinishedAt is the first non-nil of submitted_at and completed_at.
func (s *SurveySession) FinishedAt() *time.Time {
	if s.SubmittedAt != nil {
		return s.SubmittedAt
	}
	return s.CompletedAt
}

// Meta converts the session into the report builder's metadata shape.
func (s *SurveySession) Meta() survey.SessionMeta {
	return survey.SessionMeta{
		ID:          s.ID,
		FormID:      s.FormID,
		FormSlug:    s.FormSlug,
		FormVersion: s.FormVersion,
		StartedAt:   s.StartedAt,
		SubmittedAt: s.SubmittedAt,
		CompletedAt: s.CompletedAt,
		IsCompleted: s.IsCompleted,
	}
}

// AnswerSet parses the raw answer bag at the ingestion boundary.
func (s *SurveySession) AnswerSet() *survey.AnswerSet {
	return survey.NewAnswerSet(s.Answers)
}
