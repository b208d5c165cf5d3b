// Package sqlite is the durable keyed storage backend. Records are grouped
// by entity type into one table each, indexed by id plus the fields used for
// filtering and sorting. Nested payloads (tags, sections, responses) are
// stored as JSON columns.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store owns the database handle shared by the repositories
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates or opens the store under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(dataDir, "talentflow.db")

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The sqlite driver serializes writes; one connection avoids busy errors
	// from interleaved write transactions.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		status TEXT NOT NULL,
		tags TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		description TEXT,
		requirements TEXT,
		location TEXT,
		job_type TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status);
	CREATE INDEX IF NOT EXISTS idx_jobs_sort_order ON jobs(sort_order);

	CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		stage TEXT NOT NULL,
		job_id TEXT NOT NULL,
		phone TEXT,
		resume TEXT,
		notes TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates(stage);
	CREATE INDEX IF NOT EXISTS idx_candidates_job_id ON candidates(job_id);
	CREATE INDEX IF NOT EXISTS idx_candidates_created_at ON candidates(created_at);

	CREATE TABLE IF NOT EXISTS timeline (
		id TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		action TEXT NOT NULL,
		from_stage TEXT,
		to_stage TEXT,
		timestamp TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_timeline_candidate_id ON timeline(candidate_id);
	CREATE INDEX IF NOT EXISTS idx_timeline_timestamp ON timeline(timestamp);

	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sections TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assessment_responses (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		candidate_id TEXT NOT NULL,
		responses TEXT NOT NULL,
		submitted_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_job_id ON assessment_responses(job_id);
	CREATE INDEX IF NOT EXISTS idx_responses_candidate_id ON assessment_responses(candidate_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// marshalJSON encodes a nested payload column, mapping nil slices to "[]"
func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(data)
	if s == "null" {
		s = "[]"
	}
	return s, nil
}

func unmarshalJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}

// Fixed-width RFC3339 so string comparison in ORDER BY and index range scans
// matches chronological order. RFC3339Nano would strip trailing zeros and
// break the lexicographic ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
