package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/repositories/inmemory"
	"jobboard/internal/wages"
)

func newTestService() (*JobService, *inmemory.JobsRepository) {
	repo := inmemory.NewJobsRepository()
	validator := wages.NewValidator(config.WageFloors{
		FullTimeMonthly: config.DefaultMinWageFullTime,
		PartTimeHourly:  config.DefaultMinWagePartTimeHourly,
	})
	return NewJobService(repo, validator, zap.NewNop()), repo
}

func pay(v float64) *float64 {
	return &v
}

func seedJob(t *testing.T, repo *inmemory.JobsRepository, title string, category models.Category, createdAt time.Time) models.Job {
	t.Helper()
	job := models.Job{
		Title:           title,
		Category:        category,
		WorkArrangement: models.ArrangementAccommodation,
		CreatedAt:       createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), &job))
	return job
}

func TestListJobsFilterComposition(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seedJob(t, repo, "Night Maid", models.CategoryMaid, base)
	seedJob(t, repo, "Day Maid", models.CategoryMaid, base.Add(time.Minute))
	seedJob(t, repo, "Gardener", models.CategoryLandscaper, base.Add(2*time.Minute))

	resp, err := svc.ListJobs(ctx, &dtos.ListJobsQuery{Category: "Maid", Title: "night", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Night Maid", resp.Jobs[0].Title)
	assert.Equal(t, int64(1), resp.TotalJobs)

	resp, err = svc.ListJobs(ctx, &dtos.ListJobsQuery{Category: "Landscaper", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Gardener", resp.Jobs[0].Title)

	// no filter: everything, newest first
	resp, err = svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 3)
	assert.Equal(t, "Gardener", resp.Jobs[0].Title)
	assert.Equal(t, "Day Maid", resp.Jobs[1].Title)
	assert.Equal(t, "Night Maid", resp.Jobs[2].Title)
}

func TestListJobsCaseInsensitiveSubstrings(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	now := time.Now()

	job := models.Job{
		Title:           "Live-in Housekeeper",
		Location:        "Cape Town",
		Type:            "Permanent",
		Description:     "General cleaning and laundry",
		Category:        models.CategoryMaid,
		WorkArrangement: models.ArrangementAccommodation,
		CreatedAt:       now,
	}
	require.NoError(t, repo.Create(ctx, &job))

	for _, query := range []*dtos.ListJobsQuery{
		{Title: "HOUSEKEEPER", Page: 1, Limit: 10},
		{Location: "cape", Page: 1, Limit: 10},
		{Type: "perm", Page: 1, Limit: 10},
		{Description: "Laundry", Page: 1, Limit: 10},
	} {
		resp, err := svc.ListJobs(ctx, query)
		require.NoError(t, err)
		assert.Len(t, resp.Jobs, 1, "query %+v", query)
	}

	resp, err := svc.ListJobs(ctx, &dtos.ListJobsQuery{Title: "gardener", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
	assert.Equal(t, int64(0), resp.TotalJobs)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestListJobsPagination(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 25; i++ {
		seedJob(t, repo, fmt.Sprintf("Job %02d", i), models.CategoryMaid, base.Add(time.Duration(i)*time.Minute))
	}

	resp, err := svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 10)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(25), resp.TotalJobs)
	assert.Equal(t, "Job 24", resp.Jobs[0].Title)

	resp, err = svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Jobs, 5)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "Job 00", resp.Jobs[4].Title)

	// a page past the end is empty, not an error
	resp, err = svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
	assert.Equal(t, 4, resp.CurrentPage)
}

func TestListJobsTieBreakOnEqualTimestamps(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := seedJob(t, repo, "First", models.CategoryMaid, ts)
	second := seedJob(t, repo, "Second", models.CategoryMaid, ts)

	resp, err := svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, second.ID, resp.Jobs[0].ID)
	assert.Equal(t, first.ID, resp.Jobs[1].ID)
}

func TestCreateJobRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := &dtos.JobCreationRequest{
		Title:           "Housekeeper",
		Description:     "Daily cleaning",
		Location:        "Durban",
		Pay:             pay(6000),
		Type:            "permanent",
		Category:        "Maid",
		WorkArrangement: "full-time",
		PostedBy:        "agency-7",
	}
	created, err := svc.CreateJob(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := svc.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, req.Title, fetched.Title)
	assert.Equal(t, req.Description, fetched.Description)
	assert.Equal(t, req.Location, fetched.Location)
	assert.Equal(t, req.Pay, fetched.Pay)
	assert.Equal(t, req.Type, fetched.Type)
	assert.Equal(t, models.CategoryMaid, fetched.Category)
	assert.Equal(t, models.ArrangementFullTime, fetched.WorkArrangement)
	assert.Equal(t, req.PostedBy, fetched.PostedBy)

	// server-generated fields stay stable across reads
	again, err := svc.GetJob(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fetched.CreatedAt, again.CreatedAt)
}

func TestCreateJobWageViolationNotPersisted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, &dtos.JobCreationRequest{
		Title:           "Underpaid",
		Category:        "Maid",
		WorkArrangement: "full-time",
		Pay:             pay(100),
	})
	var violation *wages.ViolationError
	require.ErrorAs(t, err, &violation)

	resp, err := svc.ListJobs(ctx, &dtos.ListJobsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
}

func TestUpdateJobMergesFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, &dtos.JobCreationRequest{
		Title:           "Gardener",
		Location:        "Pretoria",
		Pay:             pay(6000),
		Category:        "Landscaper",
		WorkArrangement: "full-time",
	})
	require.NoError(t, err)

	title := "Senior Gardener"
	updated, err := svc.UpdateJob(ctx, created.ID, &dtos.JobUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Senior Gardener", updated.Title)
	assert.Equal(t, "Pretoria", updated.Location)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, models.CategoryLandscaper, updated.Category)
}

func TestUpdateJobSkipsWageValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, &dtos.JobCreationRequest{
		Title:           "Gardener",
		Pay:             pay(6000),
		Category:        "Landscaper",
		WorkArrangement: "full-time",
	})
	require.NoError(t, err)

	// dropping pay below the floor succeeds: the compliance check only
	// runs at creation time
	updated, err := svc.UpdateJob(ctx, created.ID, &dtos.JobUpdateRequest{Pay: pay(10)})
	require.NoError(t, err)
	assert.Equal(t, 10.0, *updated.Pay)
}

func TestUpdateAndDeleteMissingJob(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	title := "Anything"
	_, err := svc.UpdateJob(ctx, 999, &dtos.JobUpdateRequest{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)

	assert.ErrorIs(t, svc.DeleteJob(ctx, 999), repositories.ErrJobNotFound)

	_, err = svc.GetJob(ctx, 999)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestDeleteJobRemovesRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateJob(ctx, &dtos.JobCreationRequest{
		Title:           "Gardener",
		Category:        "Landscaper",
		WorkArrangement: "accommodation",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(ctx, created.ID))

	_, err = svc.GetJob(ctx, created.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}
