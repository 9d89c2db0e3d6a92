package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
)

// ReportController handles the fixed hiring reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// parseYear parses the year path parameter shared by both reports.
func parseYear(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year")
		errorDetail = errorDetail.WithDetails("Year must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return year, true
}

// GetHiresByQuarter reports hires per department, job and quarter
// @Summary Hires by quarter
// @Description Returns the number of employees hired for each department and job in each calendar quarter of the given year, ordered by department and job
// @Tags reports
// @Accept json
// @Produce json
// @Param year path int true "Hire year"
// @Success 200 {array} dto.HiresByQuarterResponse "Quarterly hire counts"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/hires/departments/q/{year} [get]
func (c *ReportController) GetHiresByQuarter(ctx *gin.Context) {
	year, ok := parseYear(ctx)
	if !ok {
		return
	}

	hires, err := c.reportService.HiresByQuarter(ctx, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.HiresByQuarterResponse, 0, len(hires))
	for _, row := range hires {
		responses = append(responses, dto.HiresByQuarterResponse{
			Department: row.Department,
			Job:        row.Job,
			Q1:         row.Q1,
			Q2:         row.Q2,
			Q3:         row.Q3,
			Q4:         row.Q4,
		})
	}

	ctx.JSON(http.StatusOK, responses)
}

// GetDepartmentsAboveMean reports departments hiring above the mean
// @Summary Departments above mean hires
// @Description Returns departments whose hire count for the given year strictly exceeds the mean across departments that hired, ordered by hire count descending
// @Tags reports
// @Accept json
// @Produce json
// @Param year path int true "Hire year"
// @Success 200 {array} dto.DepartmentHiresResponse "Departments above the mean"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/hires/departments/mean/{year} [get]
func (c *ReportController) GetDepartmentsAboveMean(ctx *gin.Context) {
	year, ok := parseYear(ctx)
	if !ok {
		return
	}

	hires, err := c.reportService.DepartmentsAboveMeanHires(ctx, year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.DepartmentHiresResponse, 0, len(hires))
	for _, row := range hires {
		responses = append(responses, dto.DepartmentHiresResponse{
			ID:         row.ID,
			Department: row.Department,
			Hired:      row.Hired,
		})
	}

	ctx.JSON(http.StatusOK, responses)
}
