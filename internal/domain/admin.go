package domain

import "context"

// Snapshot is a full export of the store, grouped by entity type
type Snapshot struct {
	Jobs                []Job                `json:"jobs"`
	Candidates          []Candidate          `json:"candidates"`
	Assessments         []Assessment         `json:"assessments"`
	Timeline            []TimelineEntry      `json:"timeline"`
	AssessmentResponses []AssessmentResponse `json:"assessmentResponses"`
}

type AdminRepository interface {
	Export(ctx context.Context) (*Snapshot, error)
	// Import bulk-inserts the snapshot's records in one atomic unit.
	Import(ctx context.Context, snapshot *Snapshot) error
	// Reset wipes every collection and inserts the snapshot in one atomic unit.
	Reset(ctx context.Context, snapshot *Snapshot) error
}

type AdminUsecase interface {
	// EnsureSeeded populates an empty store from the fixed seed generator.
	// Idempotence is keyed on the job collection having rows, so a store
	// that had all jobs removed would reseed.
	EnsureSeeded(ctx context.Context) error
	ExportAll(ctx context.Context) (*Snapshot, error)
	ResetAll(ctx context.Context) error
}

// SearchResult is one hit of the cross-entity search
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"` // job | candidate | assessment
	Description string `json:"description"`
	URL         string `json:"url"`
}

type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
