package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status constants
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// Job type constants
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
)

// Job represents a job posting in the hiring pipeline
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Status       string    `json:"status"` // active | archived
	Tags         []string  `json:"tags"`
	Order        int64     `json:"order"` // manual rank position among peers
	Description  *string   `json:"description,omitempty"`
	Requirements []string  `json:"requirements,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Type         *string   `json:"type,omitempty"` // full-time | part-time | contract
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobFilter carries list query parameters for jobs.
// Search matches case-insensitive substrings of title and tags.
// Status "" or "all" means no restriction.
type JobFilter struct {
	Search   string
	Status   string
	Sort     string // "title" for lexicographic ascending, anything else by order
	Page     int
	PageSize int
}

// JobPatch is a partial update; nil fields are left untouched
type JobPatch struct {
	Title        *string   `json:"title,omitempty"`
	Slug         *string   `json:"slug,omitempty"`
	Status       *string   `json:"status,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Order        *int64    `json:"order,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Type         *string   `json:"type,omitempty"`
}

// JobPage is one page of a filtered job listing
type JobPage struct {
	Jobs       []Job `json:"jobs"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	// Fetch returns every job matching the filter's search/status restriction,
	// already sorted per filter.Sort. Pagination is applied by the caller.
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
	Put(ctx context.Context, job *Job) error
	BulkInsert(ctx context.Context, jobs []Job) error
	Count(ctx context.Context) (int, error)
	// Reorder sets the job's order to toOrder and shifts every job between
	// fromOrder and toOrder by one position, as a single atomic unit.
	Reorder(ctx context.Context, id string, fromOrder, toOrder int64) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, filter JobFilter) (*JobPage, error)
	CreateJob(ctx context.Context, job *Job) error
	UpdateJob(ctx context.Context, id string, patch JobPatch) (*Job, error)
	ReorderJob(ctx context.Context, id string, fromOrder, toOrder int64) error
}
