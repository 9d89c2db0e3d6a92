package services

// Services defined in this package:
// - AuthService: Exchanges the configured API key for access tokens
// - DepartmentService: Handles operations related to departments
// - JobService: Handles operations related to jobs
// - EmployeeService: Handles operations related to employees
// - UploadService: Ingests CSV batches and tracks upload audit records
// - ReportService: Builds the two fixed hiring reports
