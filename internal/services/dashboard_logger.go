package services

import (
	"context"
	"log/slog"
	"time"

	"medication-dashboard/internal/models"
)

type requestIDKey struct{}

// WithRequestID stores the request trace ID for structured logs further down the call chain
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// DashboardLogger provides structured logging for dashboard interactions
type DashboardLogger struct {
	logger *slog.Logger
}

// NewDashboardLogger creates a new dashboard logger
func NewDashboardLogger(logger *slog.Logger) DashboardLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardLogger{
		logger: logger,
	}
}

// LogComparisonRequested logs a confirm action and the size of its cross product
func (dl *DashboardLogger) LogComparisonRequested(ctx context.Context, selection models.FilterSelection, pairs int) {
	dl.logger.InfoContext(ctx, "comparison requested",
		slog.String("event_type", "comparison_requested"),
		slog.Int("treatments", len(selection.Treatments)),
		slog.Int("providers", len(selection.Providers)),
		slog.Int("pairs", pairs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogComparisonCompleted(ctx context.Context, tabs, emptyTabs int, durationMs int64) {
	dl.logger.InfoContext(ctx, "comparison completed",
		slog.String("event_type", "comparison_completed"),
		slog.Int("tabs", tabs),
		slog.Int("empty_tabs", emptyTabs),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogComparisonSkipped logs a confirm action that rendered no tabs
func (dl *DashboardLogger) LogComparisonSkipped(ctx context.Context, reason string) {
	dl.logger.WarnContext(ctx, "comparison skipped",
		slog.String("event_type", "comparison_skipped"),
		slog.String("reason", reason),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogWordCloudRendered(ctx context.Context, label string, words int, cached bool, durationMs int64) {
	dl.logger.DebugContext(ctx, "word cloud rendered",
		slog.String("event_type", "wordcloud_rendered"),
		slog.String("pair", label),
		slog.Int("words", words),
		slog.Bool("cached", cached),
		slog.Int64("duration_ms", durationMs),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (dl *DashboardLogger) LogSelectionRejected(ctx context.Context, dimension string, value string) {
	dl.logger.WarnContext(ctx, "selection rejected",
		slog.String("event_type", "selection_rejected"),
		slog.String("dimension", dimension),
		slog.String("value", value),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// RequestIDFromContext returns the trace ID stored by WithRequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
