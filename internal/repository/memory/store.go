// Package memory is the volatile storage backend for short-lived contexts
// where no durable file store is available. It exposes the same repository
// contracts as the sqlite backend over mutex-guarded maps; compound
// operations (reorder, candidate update plus timeline, reset) run under a
// single lock, which gives them the required all-or-nothing behavior.
package memory

import (
	"sync"

	"talentflow/internal/domain"
)

// Store holds every collection behind one lock
type Store struct {
	mu         sync.RWMutex
	jobs       map[string]domain.Job
	candidates map[string]domain.Candidate
	// keyed by job id: at most one assessment per job
	assessments map[string]domain.Assessment
	timeline    []domain.TimelineEntry
	responses   []domain.AssessmentResponse
}

func NewStore() *Store {
	return &Store{
		jobs:        make(map[string]domain.Job),
		candidates:  make(map[string]domain.Candidate),
		assessments: make(map[string]domain.Assessment),
		timeline:    []domain.TimelineEntry{},
		responses:   []domain.AssessmentResponse{},
	}
}

func (s *Store) clear() {
	s.jobs = make(map[string]domain.Job)
	s.candidates = make(map[string]domain.Candidate)
	s.assessments = make(map[string]domain.Assessment)
	s.timeline = []domain.TimelineEntry{}
	s.responses = []domain.AssessmentResponse{}
}
