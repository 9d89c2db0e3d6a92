package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/models"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// parseHireDatetime parses the optional RFC3339 hire timestamp of a
// create or update request.
func parseHireDatetime(value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}

	ts, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, false
	}
	return &ts, true
}

// CreateEmployee handles employee creation
// @Summary Create a new employee
// @Description Creates an employee; name, hire timestamp and references are optional
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEmployeeRequest true "Employee information"
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 409 {object} dto.ErrorResponse "Employee already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	hireDatetime, ok := parseHireDatetime(req.Datetime)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hire timestamp")
		errorDetail = errorDetail.WithDetails("datetime must be an RFC3339 timestamp")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee := models.Employee{
		ID:           req.ID,
		Name:         req.Name,
		HireDatetime: hireDatetime,
		DepartmentID: req.DepartmentID,
		JobID:        req.JobID,
	}
	if err := c.employeeService.CreateEmployee(ctx, &employee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromEmployee(&employee)))
}

// GetEmployeeByID retrieves an employee by ID
// @Summary Get employee by ID
// @Description Retrieves a specific employee by their ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [get]
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee ID")
		errorDetail = errorDetail.WithDetails("Employee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromEmployee(employee)))
}

// GetAllEmployees retrieves employees with filtering and pagination
// @Summary Get all employees
// @Description Retrieves a paginated list of employees, optionally filtered by department, job or hire year
// @Tags employees
// @Accept json
// @Produce json
// @Param departmentId query int false "Filter by department ID"
// @Param jobId query int false "Filter by job ID"
// @Param year query int false "Filter by hire year"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeListResponse} "Employees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) GetAllEmployees(ctx *gin.Context) {
	var filter dto.EmployeeFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.employeeService.GetAllEmployees(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdateEmployee updates an existing employee
// @Summary Update an employee
// @Description Updates an existing employee; omitted optional fields are cleared
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Updated employee information"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse} "Employee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee ID")
		errorDetail = errorDetail.WithDetails("Employee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	hireDatetime, ok := parseHireDatetime(req.Datetime)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hire timestamp")
		errorDetail = errorDetail.WithDetails("datetime must be an RFC3339 timestamp")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	employee := models.Employee{
		ID:           id,
		Name:         req.Name,
		HireDatetime: hireDatetime,
		DepartmentID: req.DepartmentID,
		JobID:        req.JobID,
	}
	if err := c.employeeService.UpdateEmployee(ctx, &employee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromEmployee(&employee)))
}

// DeleteEmployee deletes an employee
// @Summary Delete an employee
// @Description Deletes an existing employee by their ID
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 204 "Employee deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{id} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid employee ID")
		errorDetail = errorDetail.WithDetails("Employee ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
