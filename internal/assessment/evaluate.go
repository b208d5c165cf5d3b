// Package assessment evaluates a declarative questionnaire schema against a
// live response map: conditional visibility, per-question validation and
// completion progress. Everything here is a pure function of
// (schema, responses); no storage is touched.
package assessment

import (
	"fmt"
	"strconv"

	"talentflow/internal/domain"
)

// Flatten returns the assessment's questions in section order.
func Flatten(a *domain.Assessment) []domain.AssessmentQuestion {
	var questions []domain.AssessmentQuestion
	for _, section := range a.Sections {
		questions = append(questions, section.Questions...)
	}
	return questions
}

// Visible reports whether the question should currently be shown.
// A question without conditional logic is always visible. One with a
// dependency is visible only while the dependency question has a non-empty
// answer that satisfies the condition. Unrecognized conditions fail open.
func Visible(q domain.AssessmentQuestion, responses map[string]any) bool {
	if q.ConditionalLogic == nil {
		return true
	}

	dep, ok := responses[q.ConditionalLogic.DependsOn]
	if !ok || isEmpty(dep) {
		return false
	}

	switch q.ConditionalLogic.Condition {
	case domain.ConditionEquals:
		return answerEquals(dep, q.ConditionalLogic.Value)
	case domain.ConditionNotEquals:
		return !answerEquals(dep, q.ConditionalLogic.Value)
	default:
		return true
	}
}

// ValidateQuestion checks one answer against the question's constraints and
// returns an empty string when it passes. Choice types rely solely on the
// required check; file-upload questions have no validation path.
func ValidateQuestion(q domain.AssessmentQuestion, value any) string {
	if q.Required && isEmpty(value) {
		return "This field is required"
	}
	if isEmpty(value) {
		return ""
	}

	switch q.Type {
	case domain.QuestionShortText, domain.QuestionLongText:
		s, _ := value.(string)
		if q.Validation != nil {
			if q.Validation.MinLength != nil && len(s) < *q.Validation.MinLength {
				return fmt.Sprintf("Minimum %d characters required", *q.Validation.MinLength)
			}
			if q.Validation.MaxLength != nil && len(s) > *q.Validation.MaxLength {
				return fmt.Sprintf("Maximum %d characters allowed", *q.Validation.MaxLength)
			}
		}

	case domain.QuestionNumeric:
		n, err := toNumber(value)
		if err != nil {
			return "Please enter a valid number"
		}
		if q.Validation != nil {
			if q.Validation.Min != nil && n < *q.Validation.Min {
				return fmt.Sprintf("Minimum value is %s", formatNumber(*q.Validation.Min))
			}
			if q.Validation.Max != nil && n > *q.Validation.Max {
				return fmt.Sprintf("Maximum value is %s", formatNumber(*q.Validation.Max))
			}
		}
	}

	return ""
}

// ValidateAll validates every currently visible question and returns all
// failures keyed by question id. Hidden questions are never validated, so an
// answer left behind by a question that later became invisible cannot block
// submission.
func ValidateAll(a *domain.Assessment, responses map[string]any) map[string]string {
	errs := make(map[string]string)
	for _, q := range Flatten(a) {
		if !Visible(q, responses) {
			continue
		}
		if msg := ValidateQuestion(q, responses[q.ID]); msg != "" {
			errs[q.ID] = msg
		}
	}
	return errs
}

// Progress counts the visible questions and how many of them have a non-empty
// answer. Visibility changes caused by a dependency's answer changing move
// the dependent question in or out of both counts immediately.
func Progress(a *domain.Assessment, responses map[string]any) (answered, visible int) {
	for _, q := range Flatten(a) {
		if !Visible(q, responses) {
			continue
		}
		visible++
		if !isEmpty(responses[q.ID]) {
			answered++
		}
	}
	return answered, visible
}

// isEmpty treats nil, empty strings and zero-length arrays as "no answer"
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// answerEquals compares a recorded answer against a conditional-logic value.
// Only scalar string answers can match; arrays never equal a scalar.
func answerEquals(value any, target string) bool {
	s, ok := value.(string)
	return ok && s == target
}

// toNumber parses numeric answers, which arrive as strings from form inputs
// but may already be JSON numbers.
func toNumber(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}

// formatNumber renders validation bounds without a trailing ".000000"
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
