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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kritsada/alumnihub/docs" // Import generated swagger docs
	appControllers "github.com/kritsada/alumnihub/internal/app/controllers"
	appMigrations "github.com/kritsada/alumnihub/internal/app/migrations"
	appRepos "github.com/kritsada/alumnihub/internal/app/repositories"
	appRoutes "github.com/kritsada/alumnihub/internal/app/routes"
	appServices "github.com/kritsada/alumnihub/internal/app/services"
	"github.com/kritsada/alumnihub/internal/config"
	"github.com/kritsada/alumnihub/internal/db"
	appMiddleware "github.com/kritsada/alumnihub/internal/middleware"
	pkgAuth "github.com/kritsada/alumnihub/internal/pkg/auth"
	"github.com/kritsada/alumnihub/internal/pkg/helpers"
	"github.com/kritsada/alumnihub/internal/pkg/logger"
	"github.com/kritsada/alumnihub/internal/pkg/printjob"
	"github.com/kritsada/alumnihub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	AlumniService          *appServices.AlumniService
	ShippingService        *appServices.ShippingService
	LabelService           *appServices.LabelService
	ReportService          *appServices.ReportService
	NotificationService    *appServices.NotificationService
	AuthController         *appControllers.AuthController
	AlumniController       *appControllers.AlumniController
	ShippingController     *appControllers.ShippingController
	LabelController        *appControllers.LabelController
	ReportController       *appControllers.ReportController
	NotificationController *appControllers.NotificationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	PrintJobs              *printjob.Manager
	Scheduler              *cron.Cron
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// Load .env if present; real env vars still win
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 8*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	labelStagger := helpers.ParseDuration(cfg.Shipping.LabelStagger, 800*time.Millisecond)
	deps.PrintJobs = printjob.NewManager(labelStagger, cfg.Shipping.PrintJobRetention, lgr)

	notificationRetention := helpers.ParseDuration(cfg.Notifications.Retention, 720*time.Hour)

	// Services
	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Repos.AlumniRepository,
		notificationRetention,
		lgr,
	)
	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, deps.JWTService, lgr)
	deps.AlumniService = appServices.NewAlumniService(deps.Repos.AlumniRepository, deps.NotificationService, lgr)
	deps.ShippingService = appServices.NewShippingService(deps.Repos.AlumniRepository, lgr)
	deps.LabelService = appServices.NewLabelService(deps.Repos.AlumniRepository, deps.PrintJobs, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.AlumniRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AlumniController = appControllers.NewAlumniController(deps.AlumniService, lgr)
	deps.ShippingController = appControllers.NewShippingController(deps.ShippingService, lgr)
	deps.LabelController = appControllers.NewLabelController(deps.LabelService, lgr)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)

	// Periodic pending-registration sweep
	sweepInterval := helpers.ParseDuration(cfg.Notifications.SweepInterval, 30*time.Second)
	deps.Scheduler = cron.New()
	_, err := deps.Scheduler.AddFunc(fmt.Sprintf("@every %s", sweepInterval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepInterval)
		defer cancel()
		deps.NotificationService.RunPendingSweep(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule notification sweep: %w", err)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AlumniController,
		deps.ShippingController,
		deps.LabelController,
		deps.ReportController,
		deps.NotificationController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
