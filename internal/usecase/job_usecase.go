package usecase

import (
	"context"
	"errors"
	"time"

	"talentflow/internal/domain"
	"talentflow/internal/seed"
	"talentflow/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) (*domain.JobPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	// Filtering and sorting happen before pagination; the repository returns
	// the complete ordered result set.
	jobs, err := u.jobRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	total := len(jobs)
	return &domain.JobPage{
		Jobs:       domain.PageSlice(jobs, filter.Page, filter.PageSize),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: domain.TotalPages(total, filter.PageSize),
	}, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Slug == "" {
		job.Slug = seed.Slugify(job.Title)
	}
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if job.Order == 0 {
		// new jobs rank after everything already present
		job.Order = time.Now().UnixMilli()
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperror.Storage(err)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Title is required")
		}
		job.Title = *patch.Title
	}
	if patch.Slug != nil {
		job.Slug = *patch.Slug
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.Tags != nil {
		job.Tags = *patch.Tags
	}
	if patch.Order != nil {
		job.Order = *patch.Order
	}
	if patch.Description != nil {
		job.Description = patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = *patch.Requirements
	}
	if patch.Location != nil {
		job.Location = patch.Location
	}
	if patch.Type != nil {
		job.Type = patch.Type
	}
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Put(ctx, job); err != nil {
		return nil, apperror.Storage(err)
	}
	return job, nil
}

func (u *jobUsecase) ReorderJob(ctx context.Context, id string, fromOrder, toOrder int64) error {
	if fromOrder == toOrder {
		return nil
	}

	err := u.jobRepo.Reorder(ctx, id, fromOrder, toOrder)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}
