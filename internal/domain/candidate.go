package domain

import (
	"context"
	"time"
)

// Candidate stage constants. The pipeline order is applied → screen → tech →
// offer → hired/rejected by convention, but the store accepts any stage→stage
// write; transition legality is deliberately not enforced.
const (
	StageApplied  = "applied"
	StageScreen   = "screen"
	StageTech     = "tech"
	StageOffer    = "offer"
	StageHired    = "hired"
	StageRejected = "rejected"
)

// Timeline action constants
const (
	ActionStageChange = "stage_change"
	ActionNoteAdded   = "note_added"
)

// Candidate represents an applicant attached to a job
type Candidate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Stage     string    `json:"stage"`
	JobID     string    `json:"jobId"`
	Phone     *string   `json:"phone,omitempty"`
	Resume    *string   `json:"resume,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TimelineEntry is an immutable historical record of a stage change or note.
// Entries are append-only; exactly one is produced per mutating candidate call.
type TimelineEntry struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Action      string    `json:"action"` // stage_change | note_added
	FromStage   *string   `json:"fromStage,omitempty"`
	ToStage     *string   `json:"toStage,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Notes       string    `json:"notes,omitempty"`
}

// CandidateFilter carries list query parameters for candidates.
// Search matches case-insensitive substrings of name and email.
// Stage "" or "all" means no restriction.
type CandidateFilter struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// CandidatePatch is a partial update; nil fields are left untouched
type CandidatePatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Stage  *string `json:"stage,omitempty"`
	JobID  *string `json:"jobId,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Resume *string `json:"resume,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// CandidatePage is one page of a filtered candidate listing
type CandidatePage struct {
	Candidates []Candidate `json:"candidates"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	// Fetch returns every candidate matching the filter's search/stage
	// restriction, sorted by createdAt descending (newest first).
	// Pagination is applied by the caller.
	Fetch(ctx context.Context, filter CandidateFilter) ([]Candidate, error)
	BulkInsert(ctx context.Context, candidates []Candidate) error
	// UpdateWithTimeline persists the updated candidate and, when entry is
	// non-nil, appends the timeline entry in the same atomic unit.
	UpdateWithTimeline(ctx context.Context, candidate *Candidate, entry *TimelineEntry) error
	// GetTimeline returns the candidate's timeline sorted newest first.
	GetTimeline(ctx context.Context, candidateID string) ([]TimelineEntry, error)
	BulkInsertTimeline(ctx context.Context, entries []TimelineEntry) error
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context, filter CandidateFilter) (*CandidatePage, error)
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) (*Candidate, error)
	GetTimeline(ctx context.Context, candidateID string) ([]TimelineEntry, error)
}
