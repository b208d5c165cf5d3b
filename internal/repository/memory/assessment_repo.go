package memory

import (
	"context"
	"sort"

	"talentflow/internal/domain"
)

type assessmentRepo struct {
	store *Store
}

func NewAssessmentRepository(store *Store) domain.AssessmentRepository {
	return &assessmentRepo{store: store}
}

func (r *assessmentRepo) GetByJobID(ctx context.Context, jobID string) (*domain.Assessment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	assessment, ok := r.store.assessments[jobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &assessment, nil
}

func (r *assessmentRepo) Put(ctx context.Context, assessment *domain.Assessment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.assessments[assessment.JobID] = *assessment
	return nil
}

func (r *assessmentRepo) ListAll(ctx context.Context) ([]domain.Assessment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	assessments := []domain.Assessment{}
	for _, assessment := range r.store.assessments {
		assessments = append(assessments, assessment)
	}
	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].JobID < assessments[j].JobID
	})
	return assessments, nil
}

func (r *assessmentRepo) BulkInsert(ctx context.Context, assessments []domain.Assessment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, assessment := range assessments {
		r.store.assessments[assessment.JobID] = assessment
	}
	return nil
}

func (r *assessmentRepo) InsertResponse(ctx context.Context, response *domain.AssessmentResponse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.responses = append(r.store.responses, *response)
	return nil
}

func (r *assessmentRepo) ListResponses(ctx context.Context) ([]domain.AssessmentResponse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	responses := make([]domain.AssessmentResponse, len(r.store.responses))
	copy(responses, r.store.responses)
	return responses, nil
}
