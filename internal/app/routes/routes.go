package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JuanS3/globant-data-eng/internal/app/controllers"
	"github.com/JuanS3/globant-data-eng/internal/app/models/dto"
	"github.com/JuanS3/globant-data-eng/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	jobController *controllers.JobController,
	employeeController *controllers.EmployeeController,
	uploadController *controllers.UploadController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Ingestion and report surface (fixed paths) ---
	router.POST("/upload/csv/:model", authMiddleware.JWTAuth(), uploadController.UploadCSV)

	reports := router.Group("/reports/hires/departments")
	{
		reports.GET("/q/:year", reportController.GetHiresByQuarter)
		reports.GET("/mean/:year", reportController.GetDepartmentsAboveMean)
	}

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/token", authController.IssueToken)
	}

	// --- Public read routes ---
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobController.GetAllJobs)
		jobs.GET("/:id", jobController.GetJobByID)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeController.GetAllEmployees)
		employees.GET("/:id", employeeController.GetEmployeeByID)
	}

	uploads := v1.Group("/uploads")
	{
		uploads.GET("/batches", uploadController.GetAllBatches)
		uploads.GET("/batches/:id", uploadController.GetBatchByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		departmentsProtected := authenticated.Group("/departments")
		{
			departmentsProtected.POST("", departmentController.CreateDepartment)
			departmentsProtected.PUT("/:id", departmentController.UpdateDepartment)
			departmentsProtected.DELETE("/:id", departmentController.DeleteDepartment)
		}

		jobsProtected := authenticated.Group("/jobs")
		{
			jobsProtected.POST("", jobController.CreateJob)
			jobsProtected.PUT("/:id", jobController.UpdateJob)
			jobsProtected.DELETE("/:id", jobController.DeleteJob)
		}

		employeesProtected := authenticated.Group("/employees")
		{
			employeesProtected.POST("", employeeController.CreateEmployee)
			employeesProtected.PUT("/:id", employeeController.UpdateEmployee)
			employeesProtected.DELETE("/:id", employeeController.DeleteEmployee)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap.go already
}
