package usecase

import (
	"context"
	"errors"
	"time"

	"talentflow/internal/domain"
	"talentflow/pkg/apperror"

	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, filter domain.CandidateFilter) (*domain.CandidatePage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	candidates, err := u.candidateRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	total := len(candidates)
	return &domain.CandidatePage{
		Candidates: domain.PageSlice(candidates, filter.Page, filter.PageSize),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: domain.TotalPages(total, filter.PageSize),
	}, nil
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, candidate *domain.Candidate) error {
	// Business Validation
	if candidate.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if candidate.Email == "" {
		return apperror.BadRequest("Email is required")
	}

	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if candidate.Stage == "" {
		candidate.Stage = domain.StageApplied
	}
	candidate.CreatedAt = time.Now()
	candidate.UpdatedAt = time.Now()

	if err := u.candidateRepo.Create(ctx, candidate); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

// UpdateCandidate applies the patch and derives at most one timeline entry
// per call: a stage-change entry when the stage actually changed, otherwise a
// note entry when a note was supplied. A note accompanying a stage change
// rides on the stage-change entry rather than producing a second record.
func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Candidate not found")
	}
	if err != nil {
		return nil, apperror.Storage(err)
	}

	oldStage := candidate.Stage
	if patch.Name != nil {
		candidate.Name = *patch.Name
	}
	if patch.Email != nil {
		candidate.Email = *patch.Email
	}
	if patch.Stage != nil {
		// any stage→stage write is accepted; transition legality is not enforced
		candidate.Stage = *patch.Stage
	}
	if patch.JobID != nil {
		candidate.JobID = *patch.JobID
	}
	if patch.Phone != nil {
		candidate.Phone = patch.Phone
	}
	if patch.Resume != nil {
		candidate.Resume = patch.Resume
	}
	if patch.Notes != nil {
		candidate.Notes = patch.Notes
	}
	now := time.Now()
	candidate.UpdatedAt = now

	note := ""
	if patch.Notes != nil {
		note = *patch.Notes
	}

	var entry *domain.TimelineEntry
	if patch.Stage != nil && *patch.Stage != oldStage {
		from, to := oldStage, *patch.Stage
		entry = &domain.TimelineEntry{
			ID:          uuid.NewString(),
			CandidateID: id,
			Action:      domain.ActionStageChange,
			FromStage:   &from,
			ToStage:     &to,
			Timestamp:   now,
			Notes:       note,
		}
	} else if note != "" {
		entry = &domain.TimelineEntry{
			ID:          uuid.NewString(),
			CandidateID: id,
			Action:      domain.ActionNoteAdded,
			Timestamp:   now,
			Notes:       note,
		}
	}

	if err := u.candidateRepo.UpdateWithTimeline(ctx, candidate, entry); err != nil {
		return nil, apperror.Storage(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) GetTimeline(ctx context.Context, candidateID string) ([]domain.TimelineEntry, error) {
	entries, err := u.candidateRepo.GetTimeline(ctx, candidateID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return entries, nil
}
