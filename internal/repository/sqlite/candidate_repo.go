package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"talentflow/internal/domain"
)

type candidateRepo struct {
	store *Store
}

func NewCandidateRepository(store *Store) domain.CandidateRepository {
	return &candidateRepo{store: store}
}

const candidateColumns = `id, name, email, stage, job_id, phone, resume, notes, created_at, updated_at`

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return insertCandidate(ctx, r.store.db, candidate)
}

func insertCandidate(ctx context.Context, db execer, candidate *domain.Candidate) error {
	query := `INSERT OR REPLACE INTO candidates (` + candidateColumns + `)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query,
		candidate.ID, candidate.Name, candidate.Email, candidate.Stage, candidate.JobID,
		candidate.Phone, candidate.Resume, candidate.Notes,
		formatTime(candidate.CreatedAt), formatTime(candidate.UpdatedAt),
	)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = ?`
	candidate, err := scanCandidate(r.store.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// Fetch sorts by createdAt descending (newest first); candidates support no
// alternate sort keys. The name/email substring search is a scan, like the
// original store.
func (r *candidateRepo) Fetch(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates`
	var args []any
	if filter.Stage != "" && filter.Stage != "all" {
		query += ` WHERE stage = ?`
		args = append(args, filter.Stage)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	needle := strings.ToLower(filter.Search)
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(candidate.Name), needle) &&
			!strings.Contains(strings.ToLower(candidate.Email), needle) {
			continue
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) BulkInsert(ctx context.Context, candidates []domain.Candidate) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range candidates {
		if err := insertCandidate(ctx, tx, &candidates[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateWithTimeline writes the candidate and its timeline entry in one
// transaction, so a retried call can never observe the update without its
// history record.
func (r *candidateRepo) UpdateWithTimeline(ctx context.Context, candidate *domain.Candidate, entry *domain.TimelineEntry) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertCandidate(ctx, tx, candidate); err != nil {
		return err
	}
	if entry != nil {
		if err := insertTimelineEntry(ctx, tx, entry); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertTimelineEntry(ctx context.Context, db execer, entry *domain.TimelineEntry) error {
	query := `INSERT INTO timeline (id, candidate_id, action, from_stage, to_stage, timestamp, notes)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query,
		entry.ID, entry.CandidateID, entry.Action,
		entry.FromStage, entry.ToStage, formatTime(entry.Timestamp), entry.Notes,
	)
	return err
}

func (r *candidateRepo) GetTimeline(ctx context.Context, candidateID string) ([]domain.TimelineEntry, error) {
	query := `SELECT id, candidate_id, action, from_stage, to_stage, timestamp, notes
	          FROM timeline WHERE candidate_id = ? ORDER BY timestamp DESC`
	rows, err := r.store.db.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.TimelineEntry{}
	for rows.Next() {
		var entry domain.TimelineEntry
		var timestamp string
		if err := rows.Scan(&entry.ID, &entry.CandidateID, &entry.Action,
			&entry.FromStage, &entry.ToStage, &timestamp, &entry.Notes); err != nil {
			return nil, err
		}
		entry.Timestamp = parseTime(timestamp)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *candidateRepo) BulkInsertTimeline(ctx context.Context, entries []domain.TimelineEntry) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range entries {
		if err := insertTimelineEntry(ctx, tx, &entries[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	var candidate domain.Candidate
	var createdAt, updatedAt string

	err := row.Scan(
		&candidate.ID, &candidate.Name, &candidate.Email, &candidate.Stage, &candidate.JobID,
		&candidate.Phone, &candidate.Resume, &candidate.Notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	candidate.CreatedAt = parseTime(createdAt)
	candidate.UpdatedAt = parseTime(updatedAt)
	return &candidate, nil
}
