package sqlite_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"talentflow/internal/domain"
	"talentflow/internal/repository/sqlite"
	"talentflow/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func insertJobs(t *testing.T, repo domain.JobRepository, n int) {
	t.Helper()
	jobs := make([]domain.Job, n)
	for i := range jobs {
		jobs[i] = domain.Job{
			ID:     strconv.Itoa(i + 1),
			Title:  "Job " + strconv.Itoa(i+1),
			Slug:   "job-" + strconv.Itoa(i+1),
			Status: domain.JobStatusActive,
			Tags:   []string{"Remote"},
			Order:  int64(i + 1),
		}
	}
	require.NoError(t, repo.BulkInsert(context.Background(), jobs))
}

func TestJobRoundTrip(t *testing.T) {
	store := newStore(t)
	repo := sqlite.NewJobRepository(store)
	ctx := context.Background()

	description := "Build the data layer"
	location := "Berlin"
	jobType := domain.JobTypeFullTime
	job := &domain.Job{
		ID:           "j1",
		Title:        "Backend Engineer",
		Slug:         "backend-engineer",
		Status:       domain.JobStatusActive,
		Tags:         []string{"Remote", "Senior"},
		Order:        42,
		Description:  &description,
		Requirements: []string{"Go", "SQL"},
		Location:     &location,
		Type:         &jobType,
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, job))

	got, err := repo.GetByID(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, job.Title, got.Title)
	assert.Equal(t, job.Tags, got.Tags)
	assert.Equal(t, job.Requirements, got.Requirements)
	assert.Equal(t, "Berlin", *got.Location)
	assert.WithinDuration(t, job.CreatedAt, got.CreatedAt, time.Millisecond)

	t.Run("Should replace on re-insert with the same id", func(t *testing.T) {
		job.Title = "Staff Engineer"
		require.NoError(t, repo.Put(ctx, job))
		got, err := repo.GetByID(ctx, "j1")
		require.NoError(t, err)
		assert.Equal(t, "Staff Engineer", got.Title)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Should report not found for an unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestJobFetchOrdering(t *testing.T) {
	store := newStore(t)
	repo := sqlite.NewJobRepository(store)
	ctx := context.Background()
	insertJobs(t, repo, 12)

	t.Run("Should order by rank by default", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{})
		require.NoError(t, err)
		require.Len(t, jobs, 12)
		for i := 1; i < len(jobs); i++ {
			assert.Less(t, jobs[i-1].Order, jobs[i].Order)
		}
	})

	t.Run("Should search title substrings", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{Search: "job 1"})
		require.NoError(t, err)
		// "Job 1", "Job 10", "Job 11", "Job 12"
		assert.Len(t, jobs, 4)
	})
}

func TestJobReorderAtomicity(t *testing.T) {
	store := newStore(t)
	repo := sqlite.NewJobRepository(store)
	ctx := context.Background()
	insertJobs(t, repo, 6)

	orders := func(t *testing.T) map[string]int64 {
		t.Helper()
		jobs, err := repo.Fetch(ctx, domain.JobFilter{})
		require.NoError(t, err)
		m := make(map[string]int64, len(jobs))
		for _, j := range jobs {
			m[j.ID] = j.Order
		}
		return m
	}

	t.Run("Should move down and shift the window left", func(t *testing.T) {
		require.NoError(t, repo.Reorder(ctx, "2", 2, 5))
		got := orders(t)
		assert.Equal(t, int64(5), got["2"])
		assert.Equal(t, int64(2), got["3"])
		assert.Equal(t, int64(3), got["4"])
		assert.Equal(t, int64(4), got["5"])
		assert.Equal(t, int64(6), got["6"])
	})

	t.Run("Should undo cleanly with the inverse move", func(t *testing.T) {
		require.NoError(t, repo.Reorder(ctx, "2", 5, 2))
		got := orders(t)
		for i := 1; i <= 6; i++ {
			assert.Equal(t, int64(i), got[strconv.Itoa(i)])
		}
	})

	t.Run("Should leave the ranking untouched for an unknown job", func(t *testing.T) {
		before := orders(t)
		assert.ErrorIs(t, repo.Reorder(ctx, "99", 1, 4), domain.ErrNotFound)
		assert.Equal(t, before, orders(t))
	})
}

func TestCandidateRepo(t *testing.T) {
	store := newStore(t)
	repo := sqlite.NewCandidateRepository(store)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.BulkInsert(ctx, []domain.Candidate{
		{ID: "1", Name: "Ada Lovelace", Email: "ada@email.com", Stage: domain.StageApplied, JobID: "1", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now},
		{ID: "2", Name: "Grace Hopper", Email: "grace@email.com", Stage: domain.StageScreen, JobID: "1", CreatedAt: now.Add(-1 * time.Hour), UpdatedAt: now},
	}))

	t.Run("Should list newest first", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.CandidateFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("Should filter by stage and search by email", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.CandidateFilter{Stage: domain.StageScreen})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Grace Hopper", got[0].Name)

		got, err = repo.Fetch(ctx, domain.CandidateFilter{Search: "ada@"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should write the candidate and timeline entry atomically", func(t *testing.T) {
		applied, tech := domain.StageApplied, domain.StageTech
		updated, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		updated.Stage = domain.StageTech

		require.NoError(t, repo.UpdateWithTimeline(ctx, updated, &domain.TimelineEntry{
			ID: "e1", CandidateID: "1", Action: domain.ActionStageChange,
			FromStage: &applied, ToStage: &tech, Timestamp: now, Notes: "Straight to tech",
		}))

		got, err := repo.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, domain.StageTech, got.Stage)

		entries, err := repo.GetTimeline(ctx, "1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.StageApplied, *entries[0].FromStage)
		assert.Equal(t, "Straight to tech", entries[0].Notes)
	})

	t.Run("Should return the timeline newest first", func(t *testing.T) {
		require.NoError(t, repo.BulkInsertTimeline(ctx, []domain.TimelineEntry{
			{ID: "e2", CandidateID: "1", Action: domain.ActionNoteAdded, Timestamp: now.Add(time.Minute)},
			{ID: "e3", CandidateID: "1", Action: domain.ActionNoteAdded, Timestamp: now.Add(-time.Minute)},
		}))
		entries, err := repo.GetTimeline(ctx, "1")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "e2", entries[0].ID)
		assert.Equal(t, "e3", entries[2].ID)
	})
}

func TestAssessmentRepo(t *testing.T) {
	store := newStore(t)
	repo := sqlite.NewAssessmentRepository(store)
	ctx := context.Background()
	now := time.Now()

	minLen := 10
	a := &domain.Assessment{
		ID: "a1", JobID: "1", Title: "Quiz",
		Sections: []domain.AssessmentSection{{
			ID: "s1", Title: "Basics",
			Questions: []domain.AssessmentQuestion{
				{
					ID: "q1", Type: domain.QuestionShortText, Question: "Why Go?", Required: true,
					Validation: &domain.QuestionValidation{MinLength: &minLen},
				},
				{
					ID: "q2", Type: domain.QuestionShortText, Question: "Which stdlib package?",
					ConditionalLogic: &domain.ConditionalLogic{DependsOn: "q1", Condition: domain.ConditionEquals, Value: "yes"},
				},
			},
		}},
		CreatedAt: now, UpdatedAt: now,
	}

	t.Run("Should report not found before any save", func(t *testing.T) {
		_, err := repo.GetByJobID(ctx, "1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should round-trip the nested schema", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, a))
		got, err := repo.GetByJobID(ctx, "1")
		require.NoError(t, err)
		require.Len(t, got.Sections, 1)
		require.Len(t, got.Sections[0].Questions, 2)
		assert.Equal(t, 10, *got.Sections[0].Questions[0].Validation.MinLength)
		assert.Equal(t, "q1", got.Sections[0].Questions[1].ConditionalLogic.DependsOn)
	})

	t.Run("Should overwrite the job's assessment on re-save", func(t *testing.T) {
		a.Title = "Quiz v2"
		require.NoError(t, repo.Put(ctx, a))
		got, err := repo.GetByJobID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Quiz v2", got.Title)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Should persist submission records", func(t *testing.T) {
		require.NoError(t, repo.InsertResponse(ctx, &domain.AssessmentResponse{
			ID: "r1", JobID: "1", CandidateID: "c1",
			Responses:   map[string]any{"q1": "for the tooling"},
			SubmittedAt: now,
		}))
		responses, err := repo.ListResponses(ctx)
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "for the tooling", responses[0].Responses["q1"])
	})
}

func TestAdminRepo(t *testing.T) {
	store := newStore(t)
	jobRepo := sqlite.NewJobRepository(store)
	adminRepo := sqlite.NewAdminRepository(store)
	ctx := context.Background()

	t.Run("Should import and export the seed snapshot intact", func(t *testing.T) {
		data := seed.Generate(20)
		require.NoError(t, adminRepo.Import(ctx, data))

		exported, err := adminRepo.Export(ctx)
		require.NoError(t, err)
		assert.Len(t, exported.Jobs, 25)
		assert.Len(t, exported.Candidates, 20)
		assert.Len(t, exported.Assessments, 3)
		assert.Len(t, exported.Timeline, len(data.Timeline))
	})

	t.Run("Should wipe everything before reinserting on reset", func(t *testing.T) {
		require.NoError(t, adminRepo.Reset(ctx, &domain.Snapshot{
			Jobs: []domain.Job{{ID: "only", Title: "Only Job", Slug: "only-job", Status: domain.JobStatusActive, Order: 1}},
		}))

		count, err := jobRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		exported, err := adminRepo.Export(ctx)
		require.NoError(t, err)
		assert.Empty(t, exported.Candidates)
		assert.Empty(t, exported.Timeline)
		assert.Empty(t, exported.Assessments)
	})
}
