package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	// GetMetrics returns the productivity snapshot for one period
	GetMetrics(w http.ResponseWriter, r *http.Request)
	// GetTrend returns a rolling multi-month trend series
	GetTrend(w http.ResponseWriter, r *http.Request)
	// Export streams the shaped report in the requested format
	Export(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
	trendMonths      int
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService, trendMonths int) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
		trendMonths:      trendMonths,
	}
}

func projectIDParam(r *http.Request) *string {
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		return &projectID
	}
	return nil
}

// GetMetrics handles GET /analytics/metrics
func (h *analyticsHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	req := analytics.MetricsRequest{
		Period:    r.URL.Query().Get("period"),
		Year:      time.Now().Year(),
		ProjectID: projectIDParam(r),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	snapshot, err := h.analyticsService.GetMetrics(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// GetTrend handles GET /analytics/trend
func (h *analyticsHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	req := analytics.TrendRequest{
		Months:    h.trendMonths,
		ProjectID: projectIDParam(r),
	}
	if m := r.URL.Query().Get("months"); m != "" {
		months, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(w, "months must be a number", nil)
			return
		}
		req.Months = months
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	trend, err := h.analyticsService.GetTrend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trend)
}
