package memory

import (
	"context"
	"sort"
	"strings"

	"talentflow/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	job, ok := r.store.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	jobs := []domain.Job{}
	needle := strings.ToLower(filter.Search)
	for _, job := range r.store.jobs {
		if filter.Status != "" && filter.Status != "all" && job.Status != filter.Status {
			continue
		}
		if needle != "" && !jobMatches(job, needle) {
			continue
		}
		jobs = append(jobs, job)
	}

	if filter.Sort == "title" {
		sort.Slice(jobs, func(i, j int) bool {
			return strings.ToLower(jobs[i].Title) < strings.ToLower(jobs[j].Title)
		})
	} else {
		sort.Slice(jobs, func(i, j int) bool { return jobs[i].Order < jobs[j].Order })
	}
	return jobs, nil
}

func jobMatches(job domain.Job, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (r *jobRepo) Put(ctx context.Context, job *domain.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.jobs[job.ID] = *job
	return nil
}

func (r *jobRepo) BulkInsert(ctx context.Context, jobs []domain.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, job := range jobs {
		r.store.jobs[job.ID] = job
	}
	return nil
}

func (r *jobRepo) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.jobs), nil
}

func (r *jobRepo) Reorder(ctx context.Context, id string, fromOrder, toOrder int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	moved, ok := r.store.jobs[id]
	if !ok {
		return domain.ErrNotFound
	}

	for jid, job := range r.store.jobs {
		if jid == id {
			continue
		}
		switch {
		case fromOrder < toOrder && job.Order > fromOrder && job.Order <= toOrder:
			job.Order--
		case fromOrder > toOrder && job.Order >= toOrder && job.Order < fromOrder:
			job.Order++
		default:
			continue
		}
		r.store.jobs[jid] = job
	}

	moved.Order = toOrder
	r.store.jobs[id] = moved
	return nil
}
