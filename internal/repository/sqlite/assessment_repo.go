package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"talentflow/internal/domain"
)

type assessmentRepo struct {
	store *Store
}

func NewAssessmentRepository(store *Store) domain.AssessmentRepository {
	return &assessmentRepo{store: store}
}

const assessmentColumns = `id, job_id, title, description, sections, created_at, updated_at`

func (r *assessmentRepo) GetByJobID(ctx context.Context, jobID string) (*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE job_id = ?`
	assessment, err := scanAssessment(r.store.db.QueryRowContext(ctx, query, jobID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

func (r *assessmentRepo) Put(ctx context.Context, assessment *domain.Assessment) error {
	return insertAssessment(ctx, r.store.db, assessment)
}

func insertAssessment(ctx context.Context, db execer, assessment *domain.Assessment) error {
	sections, err := marshalJSON(assessment.Sections)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO assessments (` + assessmentColumns + `)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = db.ExecContext(ctx, query,
		assessment.ID, assessment.JobID, assessment.Title, assessment.Description,
		sections, formatTime(assessment.CreatedAt), formatTime(assessment.UpdatedAt),
	)
	return err
}

func (r *assessmentRepo) ListAll(ctx context.Context) ([]domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY job_id`
	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assessments := []domain.Assessment{}
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, *assessment)
	}
	return assessments, rows.Err()
}

func (r *assessmentRepo) BulkInsert(ctx context.Context, assessments []domain.Assessment) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range assessments {
		if err := insertAssessment(ctx, tx, &assessments[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *assessmentRepo) InsertResponse(ctx context.Context, response *domain.AssessmentResponse) error {
	return insertResponse(ctx, r.store.db, response)
}

func insertResponse(ctx context.Context, db execer, response *domain.AssessmentResponse) error {
	if response.Responses == nil {
		response.Responses = map[string]any{}
	}
	responses, err := json.Marshal(response.Responses)
	if err != nil {
		return err
	}
	query := `INSERT INTO assessment_responses (id, job_id, candidate_id, responses, submitted_at)
	          VALUES (?, ?, ?, ?, ?)`
	_, err = db.ExecContext(ctx, query,
		response.ID, response.JobID, response.CandidateID, string(responses), formatTime(response.SubmittedAt),
	)
	return err
}

func (r *assessmentRepo) ListResponses(ctx context.Context) ([]domain.AssessmentResponse, error) {
	query := `SELECT id, job_id, candidate_id, responses, submitted_at FROM assessment_responses ORDER BY submitted_at`
	rows, err := r.store.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []domain.AssessmentResponse{}
	for rows.Next() {
		var response domain.AssessmentResponse
		var payload, submittedAt string
		if err := rows.Scan(&response.ID, &response.JobID, &response.CandidateID, &payload, &submittedAt); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(payload, &response.Responses); err != nil {
			return nil, err
		}
		response.SubmittedAt = parseTime(submittedAt)
		responses = append(responses, response)
	}
	return responses, rows.Err()
}

func scanAssessment(row rowScanner) (*domain.Assessment, error) {
	var assessment domain.Assessment
	var sections, createdAt, updatedAt string

	err := row.Scan(
		&assessment.ID, &assessment.JobID, &assessment.Title, &assessment.Description,
		&sections, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(sections, &assessment.Sections); err != nil {
		return nil, err
	}
	assessment.CreatedAt = parseTime(createdAt)
	assessment.UpdatedAt = parseTime(updatedAt)
	return &assessment, nil
}
