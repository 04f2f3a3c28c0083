package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"shortlink/internal/analytics/usecase"
	"shortlink/internal/urlservice/domain"
	"shortlink/pkg/problemdetails"
)

const dateLayout = "2006-01-02"

type Handler struct {
	analyticsService *usecase.AnalyticsService
	logger           *zap.Logger
}

func NewHandler(analyticsService *usecase.AnalyticsService, logger *zap.Logger) *Handler {
	return &Handler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// RegisterRoutes mounts the statistics endpoints on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stats/{code}", h.GetStats)
	r.Get("/stats/{code}/summary", h.GetSummary)
}

// GetStats handles GET /stats/{code}?limit&cursor
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			badRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	stats, err := h.analyticsService.Stats(r.Context(), code, query.Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, code, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// GetSummary handles GET /stats/{code}/summary?from&to
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	from, to, err := parseTimeRange(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), code, from, to)
	if err != nil {
		h.writeError(w, r, code, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, code string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidCursor):
		badRequest(w, "Invalid cursor format")
	case errors.Is(err, usecase.ErrInvalidRange):
		badRequest(w, err.Error())
	case errors.Is(err, domain.ErrURLNotFound):
		writeProblem(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			"Short URL not found: "+code,
		))
	default:
		h.logger.Error("failed to load statistics",
			zap.String("path", r.URL.Path),
			zap.String("short_code", code),
			zap.Error(err),
		)
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to retrieve statistics",
		))
	}
}

// parseTimeRange reads from and to as RFC 3339 timestamps or dates. A date
// for to includes that whole day. Missing values are zero.
func parseTimeRange(r *http.Request) (from, to time.Time, err error) {
	query := r.URL.Query()

	if s := query.Get("from"); s != "" {
		from, err = parseTime(s, false)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from: %w", err)
		}
	}
	if s := query.Get("to"); s != "" {
		to, err = parseTime(s, true)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to: %w", err)
		}
	}
	return from, to, nil
}

func parseTime(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or %s, got %q", dateLayout, s)
	}
	if endOfDay {
		t = t.Add(24 * time.Hour)
	}
	return t, nil
}
