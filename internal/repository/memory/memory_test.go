package memory_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"talentflow/internal/domain"
	"talentflow/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJobs(t *testing.T, repo domain.JobRepository, n int) {
	t.Helper()
	jobs := make([]domain.Job, n)
	for i := range jobs {
		title := "Engineer " + strconv.Itoa(i+1)
		if i%2 == 0 {
			title = "Designer " + strconv.Itoa(i+1)
		}
		status := domain.JobStatusActive
		if i%5 == 0 {
			status = domain.JobStatusArchived
		}
		jobs[i] = domain.Job{
			ID:     strconv.Itoa(i + 1),
			Title:  title,
			Status: status,
			Tags:   []string{"Remote"},
			Order:  int64(i + 1),
		}
	}
	require.NoError(t, repo.BulkInsert(context.Background(), jobs))
}

func TestJobFetch(t *testing.T) {
	repo := memory.NewJobRepository(memory.NewStore())
	seedJobs(t, repo, 10)
	ctx := context.Background()

	t.Run("Should sort by order when no sort is given", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{})
		assert.NoError(t, err)
		require.Len(t, jobs, 10)
		for i := 1; i < len(jobs); i++ {
			assert.Less(t, jobs[i-1].Order, jobs[i].Order)
		}
	})

	t.Run("Should sort lexicographically on title", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{Sort: "title"})
		assert.NoError(t, err)
		require.NotEmpty(t, jobs)
		assert.Contains(t, jobs[0].Title, "Designer")
	})

	t.Run("Should restrict by status", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{Status: domain.JobStatusArchived})
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("Should treat status all as no restriction", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{Status: "all"})
		assert.NoError(t, err)
		assert.Len(t, jobs, 10)
	})

	t.Run("Should match title and tag substrings case-insensitively", func(t *testing.T) {
		jobs, err := repo.Fetch(ctx, domain.JobFilter{Search: "designer"})
		assert.NoError(t, err)
		assert.Len(t, jobs, 5)

		jobs, err = repo.Fetch(ctx, domain.JobFilter{Search: "remote"})
		assert.NoError(t, err)
		assert.Len(t, jobs, 10)
	})
}

func TestJobReorder(t *testing.T) {
	ctx := context.Background()

	orders := func(t *testing.T, repo domain.JobRepository) map[string]int64 {
		t.Helper()
		jobs, err := repo.Fetch(ctx, domain.JobFilter{})
		require.NoError(t, err)
		m := make(map[string]int64, len(jobs))
		for _, j := range jobs {
			m[j.ID] = j.Order
		}
		return m
	}

	t.Run("Should shift intermediate jobs when moving down", func(t *testing.T) {
		repo := memory.NewJobRepository(memory.NewStore())
		seedJobs(t, repo, 5)

		require.NoError(t, repo.Reorder(ctx, "2", 2, 4))
		got := orders(t, repo)
		assert.Equal(t, int64(4), got["2"])
		assert.Equal(t, int64(2), got["3"])
		assert.Equal(t, int64(3), got["4"])
		assert.Equal(t, int64(1), got["1"])
		assert.Equal(t, int64(5), got["5"])
	})

	t.Run("Should shift intermediate jobs when moving up", func(t *testing.T) {
		repo := memory.NewJobRepository(memory.NewStore())
		seedJobs(t, repo, 5)

		require.NoError(t, repo.Reorder(ctx, "4", 4, 2))
		got := orders(t, repo)
		assert.Equal(t, int64(2), got["4"])
		assert.Equal(t, int64(3), got["2"])
		assert.Equal(t, int64(4), got["3"])
	})

	t.Run("Should restore the original ranking after the inverse move", func(t *testing.T) {
		repo := memory.NewJobRepository(memory.NewStore())
		seedJobs(t, repo, 8)
		before := orders(t, repo)

		require.NoError(t, repo.Reorder(ctx, "3", 3, 7))
		require.NoError(t, repo.Reorder(ctx, "3", 7, 3))
		assert.Equal(t, before, orders(t, repo))
	})

	t.Run("Should report not found for an unknown job", func(t *testing.T) {
		repo := memory.NewJobRepository(memory.NewStore())
		seedJobs(t, repo, 3)
		assert.ErrorIs(t, repo.Reorder(ctx, "99", 1, 2), domain.ErrNotFound)
	})
}

func TestCandidateFetchAndTimeline(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewCandidateRepository(store)
	ctx := context.Background()
	now := time.Now()

	candidates := []domain.Candidate{
		{ID: "1", Name: "Ada Lovelace", Email: "ada@email.com", Stage: domain.StageApplied, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "2", Name: "Grace Hopper", Email: "grace@email.com", Stage: domain.StageScreen, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "3", Name: "Alan Turing", Email: "alan@email.com", Stage: domain.StageApplied, CreatedAt: now.Add(-2 * time.Hour)},
	}
	require.NoError(t, repo.BulkInsert(ctx, candidates))

	t.Run("Should list newest first", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.CandidateFilter{})
		assert.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
		assert.Equal(t, "1", got[2].ID)
	})

	t.Run("Should filter by stage", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.CandidateFilter{Stage: domain.StageApplied})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Should search name and email", func(t *testing.T) {
		got, err := repo.Fetch(ctx, domain.CandidateFilter{Search: "hopper"})
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)

		got, err = repo.Fetch(ctx, domain.CandidateFilter{Search: "alan@"})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Should persist the candidate and entry together", func(t *testing.T) {
		screen := domain.StageScreen
		applied := domain.StageApplied
		updated := candidates[0]
		updated.Stage = domain.StageScreen

		err := repo.UpdateWithTimeline(ctx, &updated, &domain.TimelineEntry{
			ID: "e1", CandidateID: "1", Action: domain.ActionStageChange,
			FromStage: &applied, ToStage: &screen, Timestamp: now,
		})
		assert.NoError(t, err)

		got, err := repo.GetByID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StageScreen, got.Stage)

		entries, err := repo.GetTimeline(ctx, "1")
		assert.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.ActionStageChange, entries[0].Action)
	})

	t.Run("Should return the timeline newest first", func(t *testing.T) {
		require.NoError(t, repo.BulkInsertTimeline(ctx, []domain.TimelineEntry{
			{ID: "e2", CandidateID: "1", Action: domain.ActionNoteAdded, Timestamp: now.Add(time.Minute)},
			{ID: "e3", CandidateID: "1", Action: domain.ActionNoteAdded, Timestamp: now.Add(-time.Minute)},
		}))

		entries, err := repo.GetTimeline(ctx, "1")
		assert.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "e2", entries[0].ID)
		assert.Equal(t, "e3", entries[2].ID)
	})
}

func TestAssessmentRepo(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAssessmentRepository(store)
	ctx := context.Background()

	t.Run("Should report not found before any save", func(t *testing.T) {
		_, err := repo.GetByJobID(ctx, "1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should keep a single assessment per job", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, &domain.Assessment{ID: "a1", JobID: "1", Title: "First"}))
		require.NoError(t, repo.Put(ctx, &domain.Assessment{ID: "a1", JobID: "1", Title: "Second"}))

		got, err := repo.GetByJobID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, "Second", got.Title)

		all, err := repo.ListAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Should append submission records", func(t *testing.T) {
		require.NoError(t, repo.InsertResponse(ctx, &domain.AssessmentResponse{ID: "r1", JobID: "1", CandidateID: "c1"}))
		responses, err := repo.ListResponses(ctx)
		assert.NoError(t, err)
		assert.Len(t, responses, 1)
	})
}

func TestAdminRepo(t *testing.T) {
	store := memory.NewStore()
	jobRepo := memory.NewJobRepository(store)
	adminRepo := memory.NewAdminRepository(store)
	ctx := context.Background()

	snapshot := &domain.Snapshot{
		Jobs:        []domain.Job{{ID: "1", Title: "Engineer", Order: 1}, {ID: "2", Title: "Designer", Order: 2}},
		Candidates:  []domain.Candidate{{ID: "c1", Name: "Ada", Email: "ada@email.com", Stage: domain.StageApplied}},
		Assessments: []domain.Assessment{{ID: "a1", JobID: "1", Title: "Quiz"}},
		Timeline:    []domain.TimelineEntry{{ID: "e1", CandidateID: "c1", Action: domain.ActionNoteAdded}},
	}

	t.Run("Should import every collection", func(t *testing.T) {
		require.NoError(t, adminRepo.Import(ctx, snapshot))
		count, err := jobRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Should export a complete ordered snapshot", func(t *testing.T) {
		exported, err := adminRepo.Export(ctx)
		assert.NoError(t, err)
		require.Len(t, exported.Jobs, 2)
		assert.Equal(t, "1", exported.Jobs[0].ID)
		assert.Len(t, exported.Candidates, 1)
		assert.Len(t, exported.Assessments, 1)
		assert.Len(t, exported.Timeline, 1)
	})

	t.Run("Should wipe before inserting on reset", func(t *testing.T) {
		fresh := &domain.Snapshot{Jobs: []domain.Job{{ID: "9", Title: "Analyst", Order: 1}}}
		require.NoError(t, adminRepo.Reset(ctx, fresh))

		count, err := jobRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		exported, err := adminRepo.Export(ctx)
		assert.NoError(t, err)
		assert.Empty(t, exported.Candidates)
		assert.Empty(t, exported.Timeline)
	})
}
