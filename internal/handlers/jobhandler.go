package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard/internal/dtos"
	"jobboard/internal/repositories"
	"jobboard/internal/services"
	"jobboard/internal/wages"
)

type JobHandler struct {
	log        *zap.Logger
	jobService services.JobServiceInterface
}

func NewJobHandler(log *zap.Logger, jobService services.JobServiceInterface) *JobHandler {
	return &JobHandler{
		log:        log,
		jobService: jobService,
	}
}

// CreateJob is POST /jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidation, "Invalid job payload: "+err.Error())
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetJobs is GET /jobs with optional filtering and pagination.
func (h *JobHandler) GetJobs(c *gin.Context) {
	var query dtos.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, KindValidation, "Invalid query parameters: page and limit must be positive integers")
		return
	}

	resp, err := h.jobService.ListJobs(c.Request.Context(), &query)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID is GET /jobs/:id.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := h.parseJobID(c)
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateJob is PUT /jobs/:id. Only fields present in the body are merged.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := h.parseJobID(c)
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, KindValidation, "Invalid job payload: "+err.Error())
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is DELETE /jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := h.parseJobID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// parseJobID rejects identifiers that cannot reach the store. A malformed
// id is a distinct failure from a well-formed id with no record.
func (h *JobHandler) parseJobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, KindInvalidID, "Invalid job ID format")
		return 0, false
	}
	return uint(id), true
}

func (h *JobHandler) respondServiceError(c *gin.Context, err error) {
	var violation *wages.ViolationError
	switch {
	case errors.As(err, &violation):
		respondError(c, http.StatusBadRequest, KindValidation, violation.Error())
	case errors.Is(err, repositories.ErrJobNotFound):
		respondError(c, http.StatusNotFound, KindNotFound, "Job not found")
	default:
		h.log.Error("store failure", zap.Error(err))
		respondError(c, http.StatusInternalServerError, KindStore, err.Error())
	}
}
