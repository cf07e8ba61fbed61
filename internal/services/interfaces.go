package services

import (
	"context"
	"time"

	"medication-dashboard/internal/models"
)

// FilterServiceInterface builds the multi-select options and checks selections against them
type FilterServiceInterface interface {
	Options(ctx context.Context) (models.FilterOptions, error)
	DefaultSelection(ctx context.Context) (models.FilterSelection, error)
	Normalize(ctx context.Context, selection models.FilterSelection) (models.FilterSelection, error)
}

// ComparisonServiceInterface renders the dashboard in its idle or rendered state
type ComparisonServiceInterface interface {
	// Idle returns the view shown before the confirm action
	Idle(ctx context.Context, selection models.FilterSelection) (*models.DashboardView, error)
	// Compare runs the confirm action: one tab per (treatment, provider) pair
	Compare(ctx context.Context, selection models.FilterSelection) (*models.DashboardView, error)
	// FilteredView returns the lines matching one pair
	FilteredView(ctx context.Context, pair models.ComparisonPair) (models.FilteredView, error)
}

// WordCloudServiceInterface renders word-cloud images for comparison pairs
type WordCloudServiceInterface interface {
	RenderPNG(ctx context.Context, pair models.ComparisonPair) ([]byte, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type DashboardLoggerInterface interface {
	LogComparisonRequested(ctx context.Context, selection models.FilterSelection, pairs int)
	LogComparisonCompleted(ctx context.Context, tabs, emptyTabs int, durationMs int64)
	LogComparisonSkipped(ctx context.Context, reason string)
	LogWordCloudRendered(ctx context.Context, label string, words int, cached bool, durationMs int64)
	LogSelectionRejected(ctx context.Context, dimension string, value string)
}
