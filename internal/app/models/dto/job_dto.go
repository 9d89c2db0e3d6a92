package dto

// JobResponse represents basic job information
type JobResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"job"`
}

// CreateJobRequest represents job creation data.
// IDs come from the source system, so they are part of the payload.
type CreateJobRequest struct {
	ID    int64  `json:"id" binding:"required,gt=0"`
	Title string `json:"job" binding:"required"`
}

// UpdateJobRequest represents job update data
type UpdateJobRequest struct {
	Title string `json:"job" binding:"required"`
}

// JobListResponse represents a list of jobs
type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}
