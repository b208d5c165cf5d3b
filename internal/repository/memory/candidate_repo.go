package memory

import (
	"context"
	"sort"
	"strings"

	"talentflow/internal/domain"
)

type candidateRepo struct {
	store *Store
}

func NewCandidateRepository(store *Store) domain.CandidateRepository {
	return &candidateRepo{store: store}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.candidates[candidate.ID] = *candidate
	return nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	candidate, ok := r.store.candidates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &candidate, nil
}

func (r *candidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	candidates := []domain.Candidate{}
	needle := strings.ToLower(filter.Search)
	for _, candidate := range r.store.candidates {
		if filter.Stage != "" && filter.Stage != "all" && candidate.Stage != filter.Stage {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(candidate.Name), needle) &&
			!strings.Contains(strings.ToLower(candidate.Email), needle) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	// newest first
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	return candidates, nil
}

func (r *candidateRepo) BulkInsert(ctx context.Context, candidates []domain.Candidate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, candidate := range candidates {
		r.store.candidates[candidate.ID] = candidate
	}
	return nil
}

func (r *candidateRepo) UpdateWithTimeline(ctx context.Context, candidate *domain.Candidate, entry *domain.TimelineEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.candidates[candidate.ID] = *candidate
	if entry != nil {
		r.store.timeline = append(r.store.timeline, *entry)
	}
	return nil
}

func (r *candidateRepo) GetTimeline(ctx context.Context, candidateID string) ([]domain.TimelineEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := []domain.TimelineEntry{}
	for _, entry := range r.store.timeline {
		if entry.CandidateID == candidateID {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func (r *candidateRepo) BulkInsertTimeline(ctx context.Context, entries []domain.TimelineEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.timeline = append(r.store.timeline, entries...)
	return nil
}
