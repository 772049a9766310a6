package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobboard/internal/models"
	"jobboard/internal/repositories"
)

type JobsRepository struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *JobsRepository {
	return &JobsRepository{db: db}
}

func (r *JobsRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

func (r *JobsRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return &job, nil
}

// Save writes the full record back. The caller is expected to have loaded
// it first, so a vanished row surfaces as not-found rather than an insert.
func (r *JobsRepository) Save(ctx context.Context, job *models.Job) error {
	res := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":            job.Title,
		"description":      job.Description,
		"location":         job.Location,
		"pay":              job.Pay,
		"type":             job.Type,
		"category":         job.Category,
		"work_arrangement": job.WorkArrangement,
		"posted_by":        job.PostedBy,
	})
	if res.Error != nil {
		return fmt.Errorf("update job %d: %w", job.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrJobNotFound
	}
	return nil
}

func (r *JobsRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Job{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete job %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrJobNotFound
	}
	return nil
}

func (r *JobsRepository) List(ctx context.Context, filter repositories.JobFilter, offset, limit int) ([]models.Job, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})
	if filter.Title != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Type != "" {
		q = q.Where("type ILIKE ?", "%"+filter.Type+"%")
	}
	if filter.Description != "" {
		q = q.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.WorkArrangement != "" {
		q = q.Where("work_arrangement = ?", filter.WorkArrangement)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	var jobs []models.Job
	// id breaks ties so pages stay stable when createdAt collides
	err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, total, nil
}
