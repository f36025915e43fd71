package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/conexao/internal/app/auth"
	appControllers "github.com/yigit/conexao/internal/app/controllers"
	appRepos "github.com/yigit/conexao/internal/app/repositories"
	appRoutes "github.com/yigit/conexao/internal/app/routes"
	appServices "github.com/yigit/conexao/internal/app/services"
	"github.com/yigit/conexao/internal/config"
	appMiddleware "github.com/yigit/conexao/internal/middleware"
	pkgAuth "github.com/yigit/conexao/internal/pkg/auth"
	"github.com/yigit/conexao/internal/pkg/helpers"
	"github.com/yigit/conexao/internal/pkg/logger"
	"github.com/yigit/conexao/internal/pkg/simulate"
	"github.com/yigit/conexao/internal/pkg/validation"
	"github.com/yigit/conexao/internal/seed"
	"github.com/yigit/conexao/internal/views"
)

// ConfigPathEnv overrides the default configs/config.yaml location.
const ConfigPathEnv = "CONEXAO_CONFIG"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	Sessions     *pkgAuth.SessionService
	Backend      *simulate.Backend
	AuthzService *appAuth.AuthorizationService

	AuthService         *appServices.AuthService
	NotificationService appServices.NotificationService
	FavorService        appServices.FavorService
	CommunityService    appServices.CommunityService
	UserService         appServices.UserService
	ReportService       appServices.ReportService
	MissionService      appServices.MissionService
	AdminService        appServices.AdminService

	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    *appRoutes.Controllers
	Renderer       *views.Renderer
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv(ConfigPathEnv); p != "" {
		configPath = p
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	lgr.Debug().Strs("envOverrides", config.EnvVars()).Msg("Environment variables honoured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the in-memory repositories, loads the demo
// data set and wires services, middleware and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()
	if err := seed.CreateDefaultData(ctx, deps.Repos, component(lgr, "seed")); err != nil {
		return nil, fmt.Errorf("failed to load fixture data: %w", err)
	}

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		TTL:       cfg.Session.TTL,
		Issuer:    cfg.Session.Issuer,
	})
	deps.Backend = simulate.NewBackend(simulate.Config{
		Delay:       cfg.Simulation.Delay,
		FailureRate: cfg.Simulation.FailureRate,
	}, component(lgr, "backend"))

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Sessions,
		deps.Backend,
		component(lgr, "auth"),
	)
	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Backend,
		component(lgr, "notifications"),
	)
	deps.FavorService = appServices.NewFavorService(
		deps.Repos.FavorRepository,
		deps.Repos.UserRepository,
		deps.Repos.CommunityRepository,
		deps.NotificationService,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "favors"),
	)
	deps.CommunityService = appServices.NewCommunityService(
		deps.Repos.CommunityRepository,
		deps.Repos.FavorRepository,
		deps.Repos.UserRepository,
		deps.NotificationService,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "communities"),
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.FavorRepository,
		deps.Repos.CommunityRepository,
		deps.Repos.NotificationRepository,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "users"),
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.ReportRepository,
		deps.Repos.FavorRepository,
		deps.Repos.UserRepository,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "reports"),
	)
	deps.MissionService = appServices.NewMissionService(
		deps.Repos.MissionRepository,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "missions"),
	)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos,
		seed.DefaultSnapshot,
		deps.AuthzService,
		deps.Backend,
		component(lgr, "admin"),
	)

	renderer, err := views.NewRenderer(helpers.NewFormatter(cfg.UI.Locale))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to parse page templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	deps.Renderer = renderer

	stylesheet, err := views.Stylesheet(cfg.UI.MinifyAssets)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to prepare stylesheet")
		return nil, fmt.Errorf("failed to prepare stylesheet: %w", err)
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(
		deps.AuthService,
		deps.NotificationService,
		cfg.Session.CookieName,
		cfg.Session.Secure,
		component(lgr, "session"),
	)

	pageSize := cfg.UI.PageSize
	deps.Controllers = &appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, deps.AuthMiddleware, component(lgr, "auth")),
		Page:         appControllers.NewPageController(deps.UserService, deps.Repos, stylesheet, component(lgr, "pages")),
		Favor:        appControllers.NewFavorController(deps.FavorService, deps.CommunityService, deps.ReportService, pageSize, component(lgr, "favors")),
		Community:    appControllers.NewCommunityController(deps.CommunityService, pageSize, component(lgr, "communities")),
		User:         appControllers.NewUserController(deps.UserService, deps.ReportService, component(lgr, "users")),
		Notification: appControllers.NewNotificationController(deps.NotificationService, component(lgr, "notifications")),
		Mission:      appControllers.NewMissionController(deps.MissionService, component(lgr, "missions")),
		Admin: appControllers.NewAdminController(
			deps.AdminService,
			deps.UserService,
			deps.FavorService,
			deps.CommunityService,
			deps.ReportService,
			deps.MissionService,
			pageSize,
			component(lgr, "admin"),
		),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	router := gin.New()
	router.HTMLRender = deps.Renderer
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(component(lgr, "http")),
		appMiddleware.Theme(cfg.UI.DefaultTheme),
		deps.AuthMiddleware.Session(),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router, nil
}

func component(lgr zerolog.Logger, name string) zerolog.Logger {
	return lgr.With().Str("component", name).Logger()
}
