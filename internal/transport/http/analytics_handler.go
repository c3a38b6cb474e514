package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"cashflowstory/internal/analytics"
	apierrors "cashflowstory/internal/errors"
	"cashflowstory/internal/exporter"
	"cashflowstory/internal/middleware"
	"cashflowstory/internal/services"
	api "cashflowstory/pkg/contracts/api/v1"
)

// AnalyticsHandler handles calculation, demo and metric reference requests
type AnalyticsHandler struct {
	service      AnalyticsServiceInterface
	validator    *middleware.Validator
	query        *middleware.QueryParamValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewAnalyticsHandler creates a new analytics handler with RFC 7807 error handling
func NewAnalyticsHandler(service AnalyticsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:      service,
		validator:    middleware.NewValidator(logger),
		query:        middleware.NewQueryParamValidator(logger),
		logger:       logger.With(slog.String("component", "analytics_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the analytics routes, mounted under /api
func (h *AnalyticsHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/calculate", func(r chi.Router) {
		r.Use(middleware.ContentTypeValidator("application/json"))
		r.Post("/", h.Calculate)
		r.Post("/batch", h.CalculateBatch)
		r.Post("/batch/export", h.ExportBatch)
	})

	r.Route("/demo/rebeccas", func(r chi.Router) {
		r.Get("/", h.Demo)
		r.Get("/summary", h.DemoSummary)
		r.Get("/export", h.ExportDemo)
	})

	r.Get("/metrics", h.ListMetrics)
	r.Get("/metrics/{name}", h.ExplainMetric)

	return r
}

// Calculate handles POST /api/calculate
func (h *AnalyticsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req api.CalculateRequest
	if err := h.validator.DecodeAndValidate(r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	current := toPeriodRecord(req.Data)
	var previous *analytics.PeriodRecord
	if req.PreviousPeriod != nil {
		p := toPeriodRecord(*req.PreviousPeriod)
		previous = &p
	}

	result, err := h.service.Calculate(r.Context(), current, previous)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, toAnalyticsResponse(result.Record, result.CalculatedAt))
}

// CalculateBatch handles POST /api/calculate/batch
func (h *AnalyticsHandler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	result, ok := h.calculateBatch(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "batch calculated",
		slog.String("company", result.CompanyName),
		slog.Int("periods", len(result.Records)),
	)

	render.JSON(w, r, toBatchResponse(result))
}

// ExportBatch handles POST /api/calculate/batch/export?format=csv|xlsx
func (h *AnalyticsHandler) ExportBatch(w http.ResponseWriter, r *http.Request) {
	format, err := h.query.ValidateEnum(r, "format", exporter.SupportedFormats(), string(exporter.FormatCSV))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, ok := h.calculateBatch(w, r)
	if !ok {
		return
	}

	h.writeExport(w, r, result, format)
}

func (h *AnalyticsHandler) calculateBatch(w http.ResponseWriter, r *http.Request) (*services.BatchResult, bool) {
	var req api.BatchCalculationRequest
	if err := h.validator.DecodeAndValidate(r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return nil, false
	}

	result, err := h.service.CalculateBatch(r.Context(), req.CompanyName, toPeriodRecords(req.Periods))
	if err != nil {
		h.handleServiceError(w, r, err)
		return nil, false
	}
	return result, true
}

// Demo handles GET /api/demo/rebeccas
func (h *AnalyticsHandler) Demo(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Demo(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	render.JSON(w, r, toBatchResponse(result))
}

// DemoSummary handles GET /api/demo/rebeccas/summary
func (h *AnalyticsHandler) DemoSummary(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.DemoSummary(r.Context()))
}

// ExportDemo handles GET /api/demo/rebeccas/export?format=csv|xlsx
func (h *AnalyticsHandler) ExportDemo(w http.ResponseWriter, r *http.Request) {
	format, err := h.query.ValidateEnum(r, "format", exporter.SupportedFormats(), string(exporter.FormatCSV))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	result, err := h.service.Demo(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeExport(w, r, result, format)
}

// ListMetrics handles GET /api/metrics
func (h *AnalyticsHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	defs := h.service.Definitions(r.Context())
	render.JSON(w, r, map[string]interface{}{
		"metrics": toDefinitionResponses(defs),
		"count":   len(defs),
	})
}

// ExplainMetric handles GET /api/metrics/{name}
func (h *AnalyticsHandler) ExplainMetric(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	explanation, err := h.service.Explain(r.Context(), name)
	if err != nil {
		if errors.Is(err, services.ErrUnknownMetric) {
			h.errorHandler.HandleError(w, r, apierrors.NotFoundError("Metric", api.MetricExplanationResponse{
				Metric:      name,
				Explanation: explanation,
			}))
			return
		}
		h.handleServiceError(w, r, err)
		return
	}

	render.JSON(w, r, api.MetricExplanationResponse{
		Metric:      name,
		Explanation: explanation,
	})
}

// writeExport renders the series into memory first so a failure can still
// be reported as a problem document
func (h *AnalyticsHandler) writeExport(w http.ResponseWriter, r *http.Request, result *services.BatchResult, format string) {
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), result.Records, format, &buf); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	f := exporter.Format(format)
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, f.Filename(result.CompanyName)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WarnContext(r.Context(), "failed to write export",
			slog.String("format", format),
			slog.String("error", err.Error()),
		)
	}
}

// handleServiceError maps service errors to API errors. Validation and
// context errors are understood by the error handler directly; anything
// unexpected becomes a calculation error.
func (h *AnalyticsHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *analytics.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, services.ErrEmptySeries),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		h.errorHandler.HandleError(w, r, err)
	case errors.Is(err, services.ErrTooManyPeriods):
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("periods", err.Error()))
	case errors.Is(err, services.ErrUnsupportedFormat):
		h.errorHandler.HandleError(w, r, apierrors.UnsupportedFormatError(r.URL.Query().Get("format"), exporter.SupportedFormats()))
	case errors.Is(err, services.ErrUnknownMetric):
		h.errorHandler.HandleError(w, r, apierrors.NotFoundError("Metric", nil))
	default:
		h.logger.ErrorContext(r.Context(), "calculation failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		h.errorHandler.HandleError(w, r, apierrors.CalculationError(err))
	}
}
