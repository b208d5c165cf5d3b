package usecase

import (
	"context"

	"talentflow/internal/domain"
	"talentflow/internal/seed"
	"talentflow/pkg/apperror"
	"talentflow/pkg/logger"
)

type adminUsecase struct {
	jobRepo        domain.JobRepository
	adminRepo      domain.AdminRepository
	seedCandidates int
}

func NewAdminUsecase(jobRepo domain.JobRepository, adminRepo domain.AdminRepository, seedCandidates int) domain.AdminUsecase {
	return &adminUsecase{
		jobRepo:        jobRepo,
		adminRepo:      adminRepo,
		seedCandidates: seedCandidates,
	}
}

func (u *adminUsecase) EnsureSeeded(ctx context.Context) error {
	count, err := u.jobRepo.Count(ctx)
	if err != nil {
		return apperror.Storage(err)
	}
	if count > 0 {
		return nil
	}

	data := seed.Generate(u.seedCandidates)
	if err := u.adminRepo.Import(ctx, data); err != nil {
		return apperror.Storage(err)
	}
	logger.Log.Info("Store seeded",
		"jobs", len(data.Jobs),
		"candidates", len(data.Candidates),
		"assessments", len(data.Assessments),
	)
	return nil
}

func (u *adminUsecase) ExportAll(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := u.adminRepo.Export(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return snapshot, nil
}

// ResetAll wipes every collection and reinserts the seed snapshot as one
// atomic unit.
func (u *adminUsecase) ResetAll(ctx context.Context) error {
	if err := u.adminRepo.Reset(ctx, seed.Generate(u.seedCandidates)); err != nil {
		return apperror.Storage(err)
	}
	return nil
}
