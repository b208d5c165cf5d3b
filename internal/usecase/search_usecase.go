package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"talentflow/internal/domain"
	"talentflow/pkg/apperror"
)

const searchPageSize = 10

type cachedResults struct {
	results []domain.SearchResult
	expires time.Time
}

// searchUsecase answers the global search box: jobs, candidates and
// assessments in one ranked list, with a short-lived in-process cache so
// repeated keystrokes of the same query don't rescan the store.
type searchUsecase struct {
	jobRepo        domain.JobRepository
	candidateRepo  domain.CandidateRepository
	assessmentRepo domain.AssessmentRepository

	ttl   time.Duration
	mu    sync.Mutex
	cache map[string]cachedResults
}

func NewSearchUsecase(
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	assessmentRepo domain.AssessmentRepository,
	ttl time.Duration,
) domain.SearchUsecase {
	return &searchUsecase{
		jobRepo:        jobRepo,
		candidateRepo:  candidateRepo,
		assessmentRepo: assessmentRepo,
		ttl:            ttl,
		cache:          make(map[string]cachedResults),
	}
}

func (u *searchUsecase) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SearchResult{}, nil
	}

	key := strings.ToLower(query)
	u.mu.Lock()
	if cached, ok := u.cache[key]; ok && time.Now().Before(cached.expires) {
		u.mu.Unlock()
		return cached.results, nil
	}
	u.mu.Unlock()

	results := []domain.SearchResult{}

	jobs, err := u.jobRepo.Fetch(ctx, domain.JobFilter{Search: query})
	if err != nil {
		return nil, apperror.Storage(err)
	}
	jobTitles := make(map[string]string, len(jobs))
	for _, job := range domain.PageSlice(jobs, 1, searchPageSize) {
		results = append(results, domain.SearchResult{
			ID:          job.ID,
			Title:       job.Title,
			Type:        "job",
			Description: fmt.Sprintf("%s • %s", strOrDash(job.Location), strOrDash(job.Type)),
			URL:         "/jobs/" + job.ID,
		})
	}

	candidates, err := u.candidateRepo.Fetch(ctx, domain.CandidateFilter{Search: query})
	if err != nil {
		return nil, apperror.Storage(err)
	}
	for _, candidate := range domain.PageSlice(candidates, 1, searchPageSize) {
		results = append(results, domain.SearchResult{
			ID:          candidate.ID,
			Title:       candidate.Name,
			Type:        "candidate",
			Description: fmt.Sprintf("%s • %s", candidate.Email, candidate.Stage),
			URL:         "/candidates/" + candidate.ID,
		})
	}

	// assessments match on title or description; the owning job's title goes
	// into the result description
	allJobs, err := u.jobRepo.Fetch(ctx, domain.JobFilter{})
	if err != nil {
		return nil, apperror.Storage(err)
	}
	for _, job := range allJobs {
		jobTitles[job.ID] = job.Title
	}

	assessments, err := u.assessmentRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	for _, a := range assessments {
		if !strings.Contains(strings.ToLower(a.Title), key) &&
			!strings.Contains(strings.ToLower(a.Description), key) {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:          a.ID,
			Title:       a.Title,
			Type:        "assessment",
			Description: fmt.Sprintf("%s • %d sections", jobTitles[a.JobID], len(a.Sections)),
			URL:         "/assessments/" + a.JobID + "/builder",
		})
	}

	u.mu.Lock()
	u.cache[key] = cachedResults{results: results, expires: time.Now().Add(u.ttl)}
	u.mu.Unlock()

	return results, nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
