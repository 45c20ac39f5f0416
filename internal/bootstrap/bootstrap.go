package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/hexadigitall/platform/internal/app/controllers"
	appMigrations "github.com/hexadigitall/platform/internal/app/migrations"
	appRepos "github.com/hexadigitall/platform/internal/app/repositories"
	appRoutes "github.com/hexadigitall/platform/internal/app/routes"
	appServices "github.com/hexadigitall/platform/internal/app/services"
	"github.com/hexadigitall/platform/internal/config"
	"github.com/hexadigitall/platform/internal/db"
	"github.com/hexadigitall/platform/internal/jobs"
	appMiddleware "github.com/hexadigitall/platform/internal/middleware"
	pkgAuth "github.com/hexadigitall/platform/internal/pkg/auth"
	"github.com/hexadigitall/platform/internal/pkg/email"
	"github.com/hexadigitall/platform/internal/pkg/helpers"
	"github.com/hexadigitall/platform/internal/pkg/logger"
	"github.com/hexadigitall/platform/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	EnrollmentService    *appServices.EnrollmentService
	AssignmentService    *appServices.CourseAssignmentService
	AnalyticsService     *appServices.AnalyticsService
	ContactService       *appServices.ContactService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	EnrollmentController *appControllers.EnrollmentController
	CourseController     *appControllers.CourseController
	TeacherController    *appControllers.TeacherController
	StudentController    *appControllers.StudentController
	SiteController       *appControllers.SiteController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	EmailService         email.EmailService
	Sweeper              *jobs.AssignmentSweeper
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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
		// Partial seed data is not fatal
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.TokenSecret,
		TokenExp:    helpers.ParseDuration(cfg.Auth.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.Auth.TokenIssuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:             cfg.SMTP.Host,
		Port:             cfg.SMTP.Port,
		Username:         cfg.SMTP.Username,
		Password:         cfg.SMTP.Password,
		FromName:         cfg.SMTP.FromName,
		FromEmail:        cfg.SMTP.FromEmail,
		ContactRecipient: cfg.SMTP.ContactRecipient,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		appServices.BootstrapAdmin{
			Username: cfg.Auth.BootstrapAdminUsername,
			Password: cfg.Auth.BootstrapAdminPassword,
		},
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.AssignmentService = appServices.NewCourseAssignmentService(
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Repos.AnalyticsRepository, lgr)
	deps.ContactService = appServices.NewContactService(deps.EmailService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.JWTService,
		deps.Repos.UserRepository,
		cfg.Auth.BootstrapAdminUsername,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.AssignmentService, lgr)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.Repos.CourseRepository)
	deps.TeacherController = appControllers.NewTeacherController(deps.Repos.CourseRepository, deps.EnrollmentService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.EnrollmentService, lgr)
	deps.SiteController = appControllers.NewSiteController(deps.ContactService, deps.AnalyticsService, lgr)

	deps.Sweeper = jobs.NewAssignmentSweeper(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		cfg.Jobs.AssignmentSweepSchedule,
		lgr,
	)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.EnrollmentController,
		deps.CourseController,
		deps.TeacherController,
		deps.StudentController,
		deps.SiteController,
		deps.AuthMiddleware,
	)

	return router
}
