package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

// JobsRepository keeps jobs in a mutex-guarded map. It mirrors the
// observable semantics of the Postgres repository and backs the tests.
type JobsRepository struct {
	mu     sync.RWMutex
	jobs   map[uint]models.Job
	nextID uint
}

func NewJobsRepository() *JobsRepository {
	return &JobsRepository{
		jobs:   make(map[uint]models.Job),
		nextID: 1,
	}
}

func (r *JobsRepository) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = r.nextID
	r.nextID++
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *JobsRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return &job, nil
}

func (r *JobsRepository) Save(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.jobs[job.ID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.CreatedAt = stored.CreatedAt
	r.jobs[job.ID] = *job
	return nil
}

func (r *JobsRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *JobsRepository) List(ctx context.Context, filter repositories.JobFilter, offset, limit int) ([]models.Job, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if matches(job, filter) {
			matched = append(matched, job)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.Job{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func matches(job models.Job, f repositories.JobFilter) bool {
	if !containsFold(job.Title, f.Title) {
		return false
	}
	if !containsFold(job.Location, f.Location) {
		return false
	}
	if !containsFold(job.Type, f.Type) {
		return false
	}
	if !containsFold(job.Description, f.Description) {
		return false
	}
	if f.Category != "" && string(job.Category) != f.Category {
		return false
	}
	if f.WorkArrangement != "" && string(job.WorkArrangement) != f.WorkArrangement {
		return false
	}
	return true
}

func containsFold(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
