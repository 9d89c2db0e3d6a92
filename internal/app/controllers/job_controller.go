package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
	"github.com/JuanS3/globant-data-eng/internal/pkg/helpers"
)

// JobController handles job-related operations
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// CreateJob handles job creation
// @Summary Create a new job
// @Description Creates a job with the id supplied by the source system
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Job created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Job already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job := models.Job{ID: req.ID, Title: req.Title}
	if err := c.jobService.CreateJob(ctx, &job); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.JobResponse{ID: job.ID, Title: job.Title}))
}

// GetJobByID retrieves a job by ID
// @Summary Get job by ID
// @Description Retrieves a specific job by its ID
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetJobByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")
		errorDetail = errorDetail.WithDetails("Job ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.GetJobByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobResponse{ID: job.ID, Title: job.Title}))
}

// GetAllJobs retrieves jobs with pagination
// @Summary Get all jobs
// @Description Retrieves a paginated list of jobs ordered by title
// @Tags jobs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]dto.JobResponse} "Jobs retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) GetAllJobs(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	jobs, total, err := c.jobService.GetAllJobs(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.JobResponse{ID: job.ID, Title: job.Title})
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(responses, pagination))
}

// UpdateJob updates an existing job
// @Summary Update a job
// @Description Updates the title of an existing job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Updated job information"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")
		errorDetail = errorDetail.WithDetails("Job ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job := models.Job{ID: id, Title: req.Title}
	if err := c.jobService.UpdateJob(ctx, &job); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobResponse{ID: job.ID, Title: job.Title}))
}

// DeleteJob deletes a job
// @Summary Delete a job
// @Description Deletes a job that no employee references
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 204 "Job deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Job is referenced by employees"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")
		errorDetail = errorDetail.WithDetails("Job ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.jobService.DeleteJob(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
