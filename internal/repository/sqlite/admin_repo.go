package sqlite

import (
	"context"
	"database/sql"

	"talentflow/internal/domain"
)

type adminRepo struct {
	store *Store
}

func NewAdminRepository(store *Store) domain.AdminRepository {
	return &adminRepo{store: store}
}

var allTables = []string{"jobs", "candidates", "assessments", "timeline", "assessment_responses"}

func (r *adminRepo) Export(ctx context.Context) (*domain.Snapshot, error) {
	jobs, err := NewJobRepository(r.store).Fetch(ctx, domain.JobFilter{})
	if err != nil {
		return nil, err
	}
	candidates, err := NewCandidateRepository(r.store).Fetch(ctx, domain.CandidateFilter{})
	if err != nil {
		return nil, err
	}
	assessments, err := NewAssessmentRepository(r.store).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	timeline, err := r.listAllTimeline(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := NewAssessmentRepository(r.store).ListResponses(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Jobs:                jobs,
		Candidates:          candidates,
		Assessments:         assessments,
		Timeline:            timeline,
		AssessmentResponses: responses,
	}, nil
}

func (r *adminRepo) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := importSnapshot(ctx, tx, snapshot); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *adminRepo) Reset(ctx context.Context, snapshot *domain.Snapshot) error {
	tx, err := r.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range allTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	if snapshot != nil {
		if err := importSnapshot(ctx, tx, snapshot); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func importSnapshot(ctx context.Context, tx *sql.Tx, snapshot *domain.Snapshot) error {
	for i := range snapshot.Jobs {
		if err := insertJob(ctx, tx, &snapshot.Jobs[i]); err != nil {
			return err
		}
	}
	for i := range snapshot.Candidates {
		if err := insertCandidate(ctx, tx, &snapshot.Candidates[i]); err != nil {
			return err
		}
	}
	for i := range snapshot.Assessments {
		if err := insertAssessment(ctx, tx, &snapshot.Assessments[i]); err != nil {
			return err
		}
	}
	for i := range snapshot.Timeline {
		if err := insertTimelineEntry(ctx, tx, &snapshot.Timeline[i]); err != nil {
			return err
		}
	}
	for i := range snapshot.AssessmentResponses {
		if err := insertResponse(ctx, tx, &snapshot.AssessmentResponses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *adminRepo) listAllTimeline(ctx context.Context) ([]domain.TimelineEntry, error) {
	query := `SELECT id, candidate_id, action, from_stage, to_stage, timestamp, notes
	          FROM timeline ORDER BY timestamp`
	rows, err := r.store.db.QueryContext(ctx, query)
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
