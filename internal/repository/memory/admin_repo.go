package memory

import (
	"context"
	"sort"

	"talentflow/internal/domain"
)

type adminRepo struct {
	store *Store
}

func NewAdminRepository(store *Store) domain.AdminRepository {
	return &adminRepo{store: store}
}

func (r *adminRepo) Export(ctx context.Context) (*domain.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot := &domain.Snapshot{
		Jobs:                []domain.Job{},
		Candidates:          []domain.Candidate{},
		Assessments:         []domain.Assessment{},
		Timeline:            make([]domain.TimelineEntry, len(r.store.timeline)),
		AssessmentResponses: make([]domain.AssessmentResponse, len(r.store.responses)),
	}
	for _, job := range r.store.jobs {
		snapshot.Jobs = append(snapshot.Jobs, job)
	}
	sort.Slice(snapshot.Jobs, func(i, j int) bool { return snapshot.Jobs[i].Order < snapshot.Jobs[j].Order })
	for _, candidate := range r.store.candidates {
		snapshot.Candidates = append(snapshot.Candidates, candidate)
	}
	sort.Slice(snapshot.Candidates, func(i, j int) bool {
		return snapshot.Candidates[i].CreatedAt.After(snapshot.Candidates[j].CreatedAt)
	})
	for _, assessment := range r.store.assessments {
		snapshot.Assessments = append(snapshot.Assessments, assessment)
	}
	sort.Slice(snapshot.Assessments, func(i, j int) bool {
		return snapshot.Assessments[i].JobID < snapshot.Assessments[j].JobID
	})
	copy(snapshot.Timeline, r.store.timeline)
	copy(snapshot.AssessmentResponses, r.store.responses)
	return snapshot, nil
}

func (r *adminRepo) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.importLocked(snapshot)
	return nil
}

func (r *adminRepo) Reset(ctx context.Context, snapshot *domain.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.clear()
	if snapshot != nil {
		r.importLocked(snapshot)
	}
	return nil
}

func (r *adminRepo) importLocked(snapshot *domain.Snapshot) {
	for _, job := range snapshot.Jobs {
		r.store.jobs[job.ID] = job
	}
	for _, candidate := range snapshot.Candidates {
		r.store.candidates[candidate.ID] = candidate
	}
	for _, assessment := range snapshot.Assessments {
		r.store.assessments[assessment.JobID] = assessment
	}
	r.store.timeline = append(r.store.timeline, snapshot.Timeline...)
	r.store.responses = append(r.store.responses, snapshot.AssessmentResponses...)
}
