package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
	"jobboard/internal/repositories"
	"jobboard/internal/wages"
)

type JobRepositoryInterface interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	Save(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repositories.JobFilter, offset, limit int) ([]models.Job, int64, error)
}

type JobServiceInterface interface {
	CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error)
	ListJobs(ctx context.Context, query *dtos.ListJobsQuery) (*dtos.JobListResponse, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	UpdateJob(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
}

type JobService struct {
	repo      JobRepositoryInterface
	validator *wages.Validator
	log       *zap.Logger
}

func NewJobService(repo JobRepositoryInterface, validator *wages.Validator, log *zap.Logger) *JobService {
	return &JobService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// CreateJob runs the wage-compliance check and persists the submission.
// This is the only place the check runs; updates deliberately skip it.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	category := models.Category(req.Category)
	arrangement := models.WorkArrangement(req.WorkArrangement)

	if err := s.validator.Check(category, arrangement, req.Pay); err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Pay:             req.Pay,
		Type:            req.Type,
		Category:        category,
		WorkArrangement: arrangement,
		PostedBy:        req.PostedBy,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	s.log.Info("job created",
		zap.Uint("job_id", job.ID),
		zap.String("category", req.Category),
		zap.String("work_arrangement", req.WorkArrangement))
	return job, nil
}

// ListJobs builds the filter and pagination window from the query and
// shapes the paginated envelope. The page/limit bounds are enforced at the
// binding boundary, so both are positive here.
func (s *JobService) ListJobs(ctx context.Context, query *dtos.ListJobsQuery) (*dtos.JobListResponse, error) {
	filter := repositories.JobFilter{
		Title:           query.Title,
		Location:        query.Location,
		Type:            query.Type,
		Description:     query.Description,
		Category:        query.Category,
		WorkArrangement: query.WorkArrangement,
	}
	offset := (query.Page - 1) * query.Limit

	jobs, total, err := s.repo.List(ctx, filter, offset, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	totalPages := int((total + int64(query.Limit) - 1) / int64(query.Limit))

	return &dtos.JobListResponse{
		Jobs:        jobs,
		CurrentPage: query.Page,
		TotalPages:  totalPages,
		TotalJobs:   total,
	}, nil
}

func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateJob merges the supplied fields into the stored record and writes it
// back. Schema constraints are re-checked at the binding boundary; the wage
// validator is not re-invoked on update.
func (s *JobService) UpdateJob(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Category != nil {
		job.Category = models.Category(*req.Category)
	}
	if req.WorkArrangement != nil {
		job.WorkArrangement = models.WorkArrangement(*req.WorkArrangement)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Pay != nil {
		job.Pay = req.Pay
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.PostedBy != nil {
		job.PostedBy = *req.PostedBy
	}

	if err := s.repo.Save(ctx, job); err != nil {
		return nil, err
	}
	s.log.Info("job updated", zap.Uint("job_id", id))
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("job deleted", zap.Uint("job_id", id))
	return nil
}
