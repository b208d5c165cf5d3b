package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"talentflow/internal/domain"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

const jobColumns = `id, title, slug, status, tags, sort_order, description, requirements, location, job_type, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	return insertJob(ctx, r.store.db, job)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertJob(ctx context.Context, db execer, job *domain.Job) error {
	tags, err := marshalJSON(job.Tags)
	if err != nil {
		return err
	}
	requirements, err := marshalJSON(job.Requirements)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO jobs (` + jobColumns + `)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = db.ExecContext(ctx, query,
		job.ID, job.Title, job.Slug, job.Status, tags, job.Order,
		job.Description, requirements, job.Location, job.Type,
		formatTime(job.CreatedAt), formatTime(job.UpdatedAt),
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`
	job, err := scanJob(r.store.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Fetch applies the status restriction and sort in SQL; the substring search
// over title and tags is a scan, matching the original store's behavior.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if filter.Status != "" && filter.Status != "all" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	if filter.Sort == "title" {
		query += ` ORDER BY title COLLATE NOCASE ASC`
	} else {
		query += ` ORDER BY sort_order ASC`
	}

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		if filter.Search != "" && !jobMatches(job, filter.Search) {
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func jobMatches(job *domain.Job, search string) bool {
	needle := strings.ToLower(search)
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
	return insertJob(ctx, r.store.db, job)
}

func (r *jobRepo) BulkInsert(ctx context.Context, jobs []domain.Job) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range jobs {
		if err := insertJob(ctx, tx, &jobs[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *jobRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}

// Reorder runs the whole shift inside one transaction so a failure leaves the
// order sequence untouched.
func (r *jobRepo) Reorder(ctx context.Context, id string, fromOrder, toOrder int64) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE id = ?`, id).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `UPDATE jobs SET sort_order = ? WHERE id = ?`, toOrder, id); err != nil {
		return err
	}

	switch {
	case fromOrder < toOrder:
		// moving down: everything in (from, to] shifts one up
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET sort_order = sort_order - 1 WHERE id != ? AND sort_order > ? AND sort_order <= ?`,
			id, fromOrder, toOrder)
	case fromOrder > toOrder:
		// moving up: everything in [to, from) shifts one down
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET sort_order = sort_order + 1 WHERE id != ? AND sort_order >= ? AND sort_order < ?`,
			id, toOrder, fromOrder)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var tags, createdAt, updatedAt string
	var requirements sql.NullString

	err := row.Scan(
		&job.ID, &job.Title, &job.Slug, &job.Status, &tags, &job.Order,
		&job.Description, &requirements, &job.Location, &job.Type,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(tags, &job.Tags); err != nil {
		return nil, err
	}
	if requirements.Valid {
		if err := unmarshalJSON(requirements.String, &job.Requirements); err != nil {
			return nil, err
		}
	}
	job.CreatedAt = parseTime(createdAt)
	job.UpdatedAt = parseTime(updatedAt)
	return &job, nil
}
