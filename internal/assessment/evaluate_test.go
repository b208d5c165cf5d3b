package assessment_test

import (
	"testing"

	"talentflow/internal/assessment"
	"talentflow/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func buildAssessment() *domain.Assessment {
	return &domain.Assessment{
		ID:    "a1",
		JobID: "1",
		Title: "Technical Questionnaire",
		Sections: []domain.AssessmentSection{
			{
				ID:    "s1",
				Title: "Background",
				Questions: []domain.AssessmentQuestion{
					{
						ID: "q1", Type: domain.QuestionSingleChoice,
						Question: "Do you have Go experience?",
						Required: true, Options: []string{"Yes", "No"},
					},
					{
						ID: "q2", Type: domain.QuestionShortText,
						Question: "Which Go projects?",
						Required: true,
						Validation: &domain.QuestionValidation{
							MinLength: intPtr(5), MaxLength: intPtr(20),
						},
						ConditionalLogic: &domain.ConditionalLogic{
							DependsOn: "q1", Condition: domain.ConditionEquals, Value: "Yes",
						},
					},
					{
						ID: "q3", Type: domain.QuestionNumeric,
						Question: "Years of experience?",
						Required: true,
						Validation: &domain.QuestionValidation{
							Min: floatPtr(0), Max: floatPtr(10),
						},
					},
				},
			},
		},
	}
}

func TestVisibility(t *testing.T) {
	a := buildAssessment()
	questions := assessment.Flatten(a)
	q2 := questions[1]

	t.Run("Should always show a question without conditional logic", func(t *testing.T) {
		assert.True(t, assessment.Visible(questions[0], map[string]any{}))
	})

	t.Run("Should hide a dependent question while the dependency is unanswered", func(t *testing.T) {
		assert.False(t, assessment.Visible(q2, map[string]any{}))
		assert.False(t, assessment.Visible(q2, map[string]any{"q1": ""}))
	})

	t.Run("Should show when the dependency answer satisfies equals", func(t *testing.T) {
		assert.True(t, assessment.Visible(q2, map[string]any{"q1": "Yes"}))
		assert.False(t, assessment.Visible(q2, map[string]any{"q1": "No"}))
	})

	t.Run("Should invert for not_equals", func(t *testing.T) {
		q := q2
		q.ConditionalLogic = &domain.ConditionalLogic{
			DependsOn: "q1", Condition: domain.ConditionNotEquals, Value: "Yes",
		}
		assert.False(t, assessment.Visible(q, map[string]any{"q1": "Yes"}))
		assert.True(t, assessment.Visible(q, map[string]any{"q1": "No"}))
	})

	t.Run("Should fail open on an unrecognized condition", func(t *testing.T) {
		q := q2
		q.ConditionalLogic = &domain.ConditionalLogic{
			DependsOn: "q1", Condition: "greater_than", Value: "Yes",
		}
		assert.True(t, assessment.Visible(q, map[string]any{"q1": "No"}))
	})

	t.Run("Should never match an array answer against a scalar", func(t *testing.T) {
		assert.False(t, assessment.Visible(q2, map[string]any{"q1": []string{"Yes"}}))
	})
}

func TestValidateQuestion(t *testing.T) {
	a := buildAssessment()
	questions := assessment.Flatten(a)
	q2, q3 := questions[1], questions[2]

	t.Run("Should require an answer for required questions", func(t *testing.T) {
		assert.Equal(t, "This field is required", assessment.ValidateQuestion(questions[0], nil))
		assert.Equal(t, "This field is required", assessment.ValidateQuestion(questions[0], ""))
		assert.Equal(t, "This field is required", assessment.ValidateQuestion(questions[0], []string{}))
	})

	t.Run("Should skip constraint checks when an optional question is unanswered", func(t *testing.T) {
		q := q2
		q.Required = false
		assert.Equal(t, "", assessment.ValidateQuestion(q, nil))
	})

	t.Run("Should enforce text length bounds", func(t *testing.T) {
		assert.Equal(t, "Minimum 5 characters required", assessment.ValidateQuestion(q2, "api"))
		assert.Equal(t, "Maximum 20 characters allowed", assessment.ValidateQuestion(q2, "a very long answer that overflows"))
		assert.Equal(t, "", assessment.ValidateQuestion(q2, "gin and sqlite"))
	})

	t.Run("Should reject non-numeric input on numeric questions", func(t *testing.T) {
		assert.Equal(t, "Please enter a valid number", assessment.ValidateQuestion(q3, "abc"))
	})

	t.Run("Should enforce numeric range on string input", func(t *testing.T) {
		assert.Equal(t, "Maximum value is 10", assessment.ValidateQuestion(q3, "11"))
		assert.Equal(t, "Minimum value is 0", assessment.ValidateQuestion(q3, "-1"))
		assert.Equal(t, "", assessment.ValidateQuestion(q3, "5"))
	})

	t.Run("Should accept JSON numbers too", func(t *testing.T) {
		assert.Equal(t, "", assessment.ValidateQuestion(q3, float64(7)))
		assert.Equal(t, "Maximum value is 10", assessment.ValidateQuestion(q3, float64(12)))
	})
}

func TestValidateAll(t *testing.T) {
	a := buildAssessment()

	t.Run("Should skip hidden questions entirely", func(t *testing.T) {
		errs := assessment.ValidateAll(a, map[string]any{"q1": "No", "q3": "3"})
		assert.Empty(t, errs)
	})

	t.Run("Should collect every visible failure keyed by question id", func(t *testing.T) {
		errs := assessment.ValidateAll(a, map[string]any{"q1": "Yes"})
		assert.Equal(t, "This field is required", errs["q2"])
		assert.Equal(t, "This field is required", errs["q3"])
	})

	t.Run("Should not validate a stale answer behind a hidden question", func(t *testing.T) {
		// q2 was answered while visible, then q1 flipped to No
		errs := assessment.ValidateAll(a, map[string]any{"q1": "No", "q2": "x", "q3": "3"})
		assert.Empty(t, errs)
	})
}

func TestProgress(t *testing.T) {
	a := buildAssessment()

	t.Run("Should count only visible questions in the denominator", func(t *testing.T) {
		answered, visible := assessment.Progress(a, map[string]any{})
		assert.Equal(t, 0, answered)
		assert.Equal(t, 2, visible)
	})

	t.Run("Should grow the denominator when a dependency is satisfied", func(t *testing.T) {
		answered, visible := assessment.Progress(a, map[string]any{"q1": "Yes"})
		assert.Equal(t, 1, answered)
		assert.Equal(t, 3, visible)
	})

	t.Run("Should report full completion", func(t *testing.T) {
		answered, visible := assessment.Progress(a, map[string]any{
			"q1": "Yes", "q2": "gin and sqlite", "q3": "4",
		})
		assert.Equal(t, 3, answered)
		assert.Equal(t, 3, visible)
	})
}
