package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/JuanS3/globant-data-eng/internal/app/controllers"
	appMigrations "github.com/JuanS3/globant-data-eng/internal/app/migrations"
	appRepos "github.com/JuanS3/globant-data-eng/internal/app/repositories"
	appRoutes "github.com/JuanS3/globant-data-eng/internal/app/routes"
	appServices "github.com/JuanS3/globant-data-eng/internal/app/services"
	"github.com/JuanS3/globant-data-eng/internal/config"
	"github.com/JuanS3/globant-data-eng/internal/db"
	appMiddleware "github.com/JuanS3/globant-data-eng/internal/middleware"
	pkgAuth "github.com/JuanS3/globant-data-eng/internal/pkg/auth"
	"github.com/JuanS3/globant-data-eng/internal/pkg/filestorage"
	"github.com/JuanS3/globant-data-eng/internal/pkg/helpers"
	"github.com/JuanS3/globant-data-eng/internal/pkg/logger"
	"github.com/JuanS3/globant-data-eng/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	DepartmentService    appServices.DepartmentService
	JobService           appServices.JobService
	EmployeeService      appServices.EmployeeService
	UploadService        appServices.UploadService
	ReportService        appServices.ReportService
	AuthController       *appControllers.AuthController
	DepartmentController *appControllers.DepartmentController
	JobController        *appControllers.JobController
	EmployeeController   *appControllers.EmployeeController
	UploadController     *appControllers.UploadController
	ReportController     *appControllers.ReportController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
	FileStorage          *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedDevData {
		if err := seed.CreateDevFixtures(context.Background(), database.Pool, lgr); err != nil {
			// Seeding is best-effort, a partial seed must not block startup
			lgr.Error().Err(err).Msg("Failed to seed development fixtures, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Security.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.Security.TokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.Security.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.JWTService, cfg.Security.APIKeyHash)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository)
	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository)
	deps.UploadService = appServices.NewUploadService(
		database,
		deps.Repos.DepartmentRepository,
		deps.Repos.JobRepository,
		deps.Repos.EmployeeRepository,
		deps.Repos.UploadBatchRepository,
		deps.FileStorage,
	)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Security.AuthEnabled)
	if !cfg.Security.AuthEnabled {
		lgr.Warn().Msg("Token authentication is disabled, all endpoints are open")
	}

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.UploadController = appControllers.NewUploadController(deps.UploadService, cfg.MaxUploadSizeBytes())
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DepartmentController,
		deps.JobController,
		deps.EmployeeController,
		deps.UploadController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
