package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
	"github.com/worklens/worklens-backend-go/internal/pkg/export"
	"github.com/worklens/worklens-backend-go/internal/pkg/metrics"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

// exportFormats is the closed set of download formats.
var exportFormats = []string{"json", "csv", "xlsx"}

// Export handles GET /analytics/export
func (h *analyticsHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := analytics.ExportRequest{
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

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if !validator.IsInSlice(format, exportFormats) {
		response.BadRequest(w, "format must be one of json, csv, xlsx", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	payload, err := h.analyticsService.GetExport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	metrics.ExportsTotal.WithLabelValues(format).Inc()
	filename := fmt.Sprintf("productivity-%s-%d", req.Period, req.Year)

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
		if err := export.WriteCSV(w, payload); err != nil {
			slog.Error("Export CSV write error", "error", err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".xlsx"))
		if err := export.WriteXLSX(w, payload); err != nil {
			slog.Error("Export XLSX write error", "error", err)
		}
	default:
		response.Success(w, payload)
	}
}
