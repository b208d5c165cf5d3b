package usecase

import (
	"context"
	"errors"
	"time"

	"talentflow/internal/assessment"
	"talentflow/internal/domain"
	"talentflow/pkg/apperror"

	"github.com/google/uuid"
)

type assessmentUsecase struct {
	assessmentRepo domain.AssessmentRepository
}

func NewAssessmentUsecase(assessmentRepo domain.AssessmentRepository) domain.AssessmentUsecase {
	return &assessmentUsecase{assessmentRepo: assessmentRepo}
}

func (u *assessmentUsecase) GetAssessment(ctx context.Context, jobID string) (*domain.Assessment, error) {
	found, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		// a job without an assessment is a normal state, not an error
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return found, nil
}

// SaveAssessment upserts the job's single assessment. A save against a job
// that already has one keeps the existing id and createdAt so the 1:1
// relation holds regardless of what id the builder sent.
func (u *assessmentUsecase) SaveAssessment(ctx context.Context, jobID string, a *domain.Assessment) (*domain.Assessment, error) {
	if a.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}

	a.JobID = jobID
	if a.Sections == nil {
		a.Sections = []domain.AssessmentSection{}
	}

	existing, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	switch {
	case err == nil:
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		a.CreatedAt = time.Now()
	default:
		return nil, apperror.Storage(err)
	}
	a.UpdatedAt = time.Now()

	if err := u.assessmentRepo.Put(ctx, a); err != nil {
		return nil, apperror.Storage(err)
	}
	return a, nil
}

// SubmitResponse is all-or-nothing: every visible question is validated and
// all failures are surfaced together; a submission record is only minted when
// the full response set passes.
func (u *assessmentUsecase) SubmitResponse(ctx context.Context, jobID, candidateID string, responses map[string]any) (string, error) {
	a, err := u.assessmentRepo.GetByJobID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", apperror.NotFound("Assessment not found")
	}
	if err != nil {
		return "", apperror.Storage(err)
	}

	if fieldErrors := assessment.ValidateAll(a, responses); len(fieldErrors) > 0 {
		return "", apperror.Validation("Assessment validation failed", fieldErrors)
	}

	record := &domain.AssessmentResponse{
		ID:          uuid.NewString(),
		JobID:       jobID,
		CandidateID: candidateID,
		Responses:   responses,
		SubmittedAt: time.Now(),
	}
	if err := u.assessmentRepo.InsertResponse(ctx, record); err != nil {
		return "", apperror.Storage(err)
	}
	return record.ID, nil
}
