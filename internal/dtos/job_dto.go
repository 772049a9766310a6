package dtos

import "jobboard/internal/models"

// JobCreationRequest is the POST /jobs body. Enum membership and required
// fields are enforced here, before any business rule runs.
type JobCreationRequest struct {
	Title           string `json:"title" binding:"required"`
	Category        string `json:"category" binding:"required,oneof=Maid Landscaper"`
	WorkArrangement string `json:"workArrangement" binding:"required,oneof=accommodation part-time full-time"`

	// Optional Fields
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Pay         *float64 `json:"pay"`
	Type        string   `json:"type"`
	PostedBy    string   `json:"postedBy"`
}

// JobUpdateRequest is the PUT /jobs/:id body. Every field is optional;
// only the ones present in the JSON are merged into the stored record.
type JobUpdateRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=1"`
	Category        *string  `json:"category" binding:"omitempty,oneof=Maid Landscaper"`
	WorkArrangement *string  `json:"workArrangement" binding:"omitempty,oneof=accommodation part-time full-time"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location"`
	Pay             *float64 `json:"pay"`
	Type            *string  `json:"type"`
	PostedBy        *string  `json:"postedBy"`
}

// ListJobsQuery carries the GET /jobs query parameters. Unknown parameters
// are ignored by binding; page and limit must be positive.
type ListJobsQuery struct {
	Title           string `form:"title"`
	Location        string `form:"location"`
	Type            string `form:"type"`
	Description     string `form:"description"`
	Category        string `form:"category"`
	WorkArrangement string `form:"workArrangement"`
	Page            int    `form:"page,default=1" binding:"min=1"`
	Limit           int    `form:"limit,default=10" binding:"min=1"`
}

// JobListResponse is the paginated GET /jobs envelope.
type JobListResponse struct {
	Jobs        []models.Job `json:"jobs"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalJobs   int64        `json:"totalJobs"`
}
