package analytics

import "context"

// AnalyticsService defines the interface for productivity analytics
type AnalyticsService interface {
	// Compute a metrics snapshot for one period
	GetMetrics(ctx context.Context, req MetricsRequest) (MetricsSnapshot, error)

	// Build a rolling multi-period trend series
	GetTrend(ctx context.Context, req TrendRequest) ([]TrendPoint, error)

	// Shape a snapshot plus raw records into a downloadable payload
	GetExport(ctx context.Context, req ExportRequest) (ExportPayload, error)
}
