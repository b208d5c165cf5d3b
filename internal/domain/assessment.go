package domain

import (
	"context"
	"time"
)

// Question type constants
const (
	QuestionSingleChoice = "single-choice"
	QuestionMultiChoice  = "multi-choice"
	QuestionShortText    = "short-text"
	QuestionLongText     = "long-text"
	QuestionNumeric      = "numeric"
	QuestionFileUpload   = "file-upload"
)

// Conditional-logic condition constants. A question supports at most one
// dependency; AND/OR chains are a deliberate scope limit.
const (
	ConditionEquals    = "equals"
	ConditionNotEquals = "not_equals"
)

// Assessment is a structured questionnaire attached to at most one job (1:1)
type Assessment struct {
	ID          string              `json:"id"`
	JobID       string              `json:"jobId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Sections    []AssessmentSection `json:"sections"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type AssessmentSection struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	Questions   []AssessmentQuestion `json:"questions"`
}

type AssessmentQuestion struct {
	ID               string              `json:"id"`
	Type             string              `json:"type"`
	Question         string              `json:"question"`
	Required         bool                `json:"required"`
	Options          []string            `json:"options,omitempty"` // choice types only
	Validation       *QuestionValidation `json:"validation,omitempty"`
	ConditionalLogic *ConditionalLogic   `json:"conditionalLogic,omitempty"`
}

type QuestionValidation struct {
	MinLength *int     `json:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

// ConditionalLogic makes a question's visibility depend on another question's
// answer. DependsOn references a question id within the same assessment.
type ConditionalLogic struct {
	DependsOn string `json:"dependsOn"`
	Condition string `json:"condition"` // equals | not_equals
	Value     string `json:"value"`
}

// AssessmentResponse is an immutable submission record. Answer values are
// strings, string arrays, or numerics entered as strings, per question type.
type AssessmentResponse struct {
	ID          string         `json:"id"`
	JobID       string         `json:"jobId"`
	CandidateID string         `json:"candidateId"`
	Responses   map[string]any `json:"responses"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

type AssessmentRepository interface {
	// GetByJobID returns ErrNotFound when the job has no assessment.
	GetByJobID(ctx context.Context, jobID string) (*Assessment, error)
	Put(ctx context.Context, assessment *Assessment) error
	ListAll(ctx context.Context) ([]Assessment, error)
	BulkInsert(ctx context.Context, assessments []Assessment) error
	InsertResponse(ctx context.Context, response *AssessmentResponse) error
	ListResponses(ctx context.Context) ([]AssessmentResponse, error)
}

type AssessmentUsecase interface {
	// GetAssessment returns (nil, nil) when the job has no assessment.
	GetAssessment(ctx context.Context, jobID string) (*Assessment, error)
	SaveAssessment(ctx context.Context, jobID string, assessment *Assessment) (*Assessment, error)
	// SubmitResponse validates all visible questions against the schema and
	// only mints a submission record when every one of them passes.
	SubmitResponse(ctx context.Context, jobID, candidateID string, responses map[string]any) (string, error)
}
