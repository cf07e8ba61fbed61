package server

import (
	"context"
	"fmt"
	"log/slog"

	"medication-dashboard/internal/config"
	"medication-dashboard/internal/database"
	"medication-dashboard/internal/handlers"
	"medication-dashboard/internal/middleware"
	"medication-dashboard/internal/models"
	"medication-dashboard/internal/repositories"
	"medication-dashboard/internal/services"
	"medication-dashboard/internal/wordcloud"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the dashboard services to the HTTP routes
type Server struct {
	cfg       *config.Config
	claimRepo repositories.ClaimRepositoryInterface

	filterService     services.FilterServiceInterface
	comparisonService services.ComparisonServiceInterface
	wordCloudService  services.WordCloudServiceInterface
}

// NewServer builds the service graph over an already populated store
func NewServer(cfg *config.Config, claimRepo repositories.ClaimRepositoryInterface, metrics services.MetricsRecorderInterface) *Server {
	logger := services.NewDashboardLogger(slog.Default())
	filterService := services.NewFilterService(claimRepo, logger)

	return &Server{
		cfg:               cfg,
		claimRepo:         claimRepo,
		filterService:     filterService,
		comparisonService: services.NewComparisonService(claimRepo, filterService, metrics, logger),
		wordCloudService: services.NewWordCloudService(
			claimRepo, WordCloudOptions(cfg.WordCloud), cfg.WordCloud.CacheSize, metrics, logger,
		),
	}
}

// WordCloudOptions applies the configured canvas to the default layout options
func WordCloudOptions(cfg config.WordCloudConfig) wordcloud.Options {
	opts := wordcloud.DefaultOptions()
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	if cfg.MaxWords > 0 {
		opts.MaxWords = cfg.MaxWords
	}
	return opts
}

// SetupRoutes registers middleware and routes. ctx bounds background work
// started by middleware.
func (s *Server) SetupRoutes(ctx context.Context) (*echo.Echo, error) {
	renderer, err := handlers.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.IPExtractor = middleware.IPExtractor(s.cfg.Security.TrustProxyHeaders)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(ctx,
		float64(s.cfg.Security.RateLimitPerSecond),
		s.cfg.Security.RateLimitBurst,
	))

	dashboardHandler := handlers.NewDashboardHandler(s.filterService, s.comparisonService, s.wordCloudService)
	comparisonHandler := handlers.NewComparisonHandler(s.filterService, s.comparisonService, s.wordCloudService)
	healthHandler := handlers.NewHealthCheckHandler(s.claimRepo)

	e.GET("/", dashboardHandler.Index)
	e.POST("/compare", dashboardHandler.Compare)
	e.GET(services.DefaultWordCloudPath, dashboardHandler.WordCloud)
	e.GET(handlers.DashboardScriptPath, handlers.DashboardScript)

	api := e.Group("/api/v1")
	api.GET("/filters", comparisonHandler.GetFilters)
	api.GET("/dashboard", comparisonHandler.GetDashboard)
	api.POST("/comparisons", comparisonHandler.CreateComparison)
	api.GET("/comparisons/wordcloud", comparisonHandler.GetWordCloud)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}

// OpenStore returns the claim store selected by DATASET_BACKEND. The returned
// close function releases the SQLite connection when one was opened.
func OpenStore(ctx context.Context, cfg config.DatasetConfig, ds *models.Dataset, verbose bool) (repositories.ClaimRepositoryInterface, func() error, error) {
	if cfg.Backend != config.BackendSQLite {
		return repositories.NewMemoryClaimRepository(ds), func() error { return nil }, nil
	}

	db, err := database.Initialize(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	if err := repositories.ImportDataset(ctx, db.DB, ds); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to import dataset: %w", err)
	}
	slog.Info("dataset imported into sqlite", "rows", ds.Len())
	return repositories.NewClaimRepository(db.DB), db.Close, nil
}
