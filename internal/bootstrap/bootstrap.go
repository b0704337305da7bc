package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/studentregistry/internal/app/controllers"
	appMigrations "github.com/yigit/studentregistry/internal/app/migrations"
	appRepos "github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/app/repositories/memory"
	appRoutes "github.com/yigit/studentregistry/internal/app/routes"
	appServices "github.com/yigit/studentregistry/internal/app/services"
	"github.com/yigit/studentregistry/internal/config"
	"github.com/yigit/studentregistry/internal/db"
	appMiddleware "github.com/yigit/studentregistry/internal/middleware"
	"github.com/yigit/studentregistry/internal/pkg/cache"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	StudentController    *appControllers.StudentController
	DepartmentController *appControllers.DepartmentController
	ProgramController    *appControllers.ProgramController
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

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured record store. For PostgreSQL the schema migrations
// are applied before the repositories are returned. The returned func releases the store.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, func(), error) {
	if cfg.UsesMemoryStore() {
		lgr.Warn().Msg("Using the in-memory store, data is lost on restart")
		return memory.NewStore().Repositories(), func() {}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return appRepos.NewRepositories(database.Pool), database.Close, nil
}

// SetupCache connects the catalog cache. A disabled or unreachable Redis falls back to
// no caching so the API keeps serving from storage.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (cache.Cache, time.Duration, func()) {
	ttl := helpers.ParseDuration(cfg.Cache.TTL, 10*time.Minute)
	if !cfg.Cache.Enabled {
		return cache.Nop{}, ttl, func() {}
	}

	redisCache, err := cache.NewRedisCache(cache.Config{
		Host:     cfg.Cache.Host,
		Port:     cfg.Cache.Port,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		lgr.Warn().Err(err).Msg("Catalog cache unavailable, continuing without it")
		return cache.Nop{}, ttl, func() {}
	}

	lgr.Info().Str("host", cfg.Cache.Host).Dur("ttl", ttl).Msg("Catalog cache connected")
	return redisCache, ttl, func() {
		if err := redisCache.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close catalog cache")
		}
	}
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(repos *appRepos.Repositories, c cache.Cache, ttl time.Duration, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:    repos,
		Services: appServices.NewServices(repos, c, ttl),
		Logger:   lgr,
	}

	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.Services.DepartmentService)
	deps.ProgramController = appControllers.NewProgramController(deps.Services.ProgramService)

	return deps
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

	return NewRouter(deps)
}

// NewRouter builds the engine without touching the global gin mode
func NewRouter(deps *Dependencies) *gin.Engine {
	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.AccessLog())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.DepartmentController,
		deps.ProgramController,
	)

	return router
}
