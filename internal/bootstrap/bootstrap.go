package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/cohorttools/cohort-tools-api/internal/app/controllers"
	appMigrations "github.com/cohorttools/cohort-tools-api/internal/app/migrations"
	appRepos "github.com/cohorttools/cohort-tools-api/internal/app/repositories"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories/memory"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories/mongodb"
	"github.com/cohorttools/cohort-tools-api/internal/app/repositories/postgres"
	appRoutes "github.com/cohorttools/cohort-tools-api/internal/app/routes"
	appServices "github.com/cohorttools/cohort-tools-api/internal/app/services"
	"github.com/cohorttools/cohort-tools-api/internal/config"
	"github.com/cohorttools/cohort-tools-api/internal/db"
	appMiddleware "github.com/cohorttools/cohort-tools-api/internal/middleware"
	pkgAuth "github.com/cohorttools/cohort-tools-api/internal/pkg/auth"
	"github.com/cohorttools/cohort-tools-api/internal/pkg/logger"
	"github.com/cohorttools/cohort-tools-api/internal/seed"
	schema "github.com/cohorttools/cohort-tools-api/migrations"
)

// DefaultConfigPath is where the server and CLI look for the YAML config
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	CohortService     appServices.CohortService
	StudentService    appServices.StudentService
	UserService       appServices.UserService
	CohortController  *appControllers.CohortController
	StudentController *appControllers.StudentController
	UserController    *appControllers.UserController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))

	lgr := logger.Logger()
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured backend and returns repositories bound to it.
// Postgres migrations run here.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")

	switch cfg.Database.Driver {
	case config.DriverMongo:
		database, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, database.Database); err != nil {
			_ = database.Close(context.Background())
			return nil, err
		}
		return appRepos.NewRepositories(
			mongodb.NewCohortRepository(database.Database),
			mongodb.NewStudentRepository(database.Database),
			mongodb.NewUserRepository(database.Database),
			database.Close,
		), nil

	case config.DriverPostgres:
		database, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, schema.Files); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return appRepos.NewRepositories(
			postgres.NewCohortRepository(database),
			postgres.NewStudentRepository(database),
			postgres.NewUserRepository(database),
			func(context.Context) error {
				database.Close()
				return nil
			},
		), nil

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage; data is lost on shutdown")
		return NewMemoryRepositories(), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// NewMemoryRepositories returns empty in-memory repositories
func NewMemoryRepositories() *appRepos.Repositories {
	return appRepos.NewRepositories(
		memory.NewCohortRepository(),
		memory.NewStudentRepository(),
		memory.NewUserRepository(),
		memory.Close,
	)
}

// SeedIfEnabled loads the bundled sample data when seeding is switched on.
// Seed failures are logged and do not stop startup.
func SeedIfEnabled(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) {
	if !cfg.Seed.Enabled {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := seed.Run(ctx, repos, cfg.Seed.AdminEmail, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to load seed data, proceeding anyway...")
	}
}

// NewJWTService builds the token service from configuration
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	deps.JWTService = NewJWTService(cfg)

	resolver := appServices.NewCohortResolver(repos.CohortRepository, lgr)
	deps.CohortService = appServices.NewCohortService(repos.CohortRepository, lgr)
	deps.StudentService = appServices.NewStudentService(repos.StudentRepository, resolver, lgr)
	deps.UserService = appServices.NewUserService(repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CohortController = appControllers.NewCohortController(deps.CohortService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(cors.New(corsConfig(cfg.Server.CORSOrigins)))
	router.Use(appMiddleware.RequestTimeout(cfg.RequestTimeout()))
	router.Use(appMiddleware.StatusCodePolicy(cfg.Server.LegacyStatusCodes))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CohortController,
		deps.StudentController,
		deps.UserController,
		deps.AuthMiddleware,
		cfg.Database.Driver,
	)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
