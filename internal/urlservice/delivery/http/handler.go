package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"shortlink/internal/urlservice/domain"
	"shortlink/internal/urlservice/usecase"
	"shortlink/pkg/problemdetails"
)

// HealthCheck is a named dependency probe used by the readiness endpoint.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthChecks []HealthCheck

// Handler handles HTTP requests for URL operations
type Handler struct {
	service  *usecase.URLService
	resolver *usecase.Resolver
	checks   HealthChecks
	logger   *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.URLService, resolver *usecase.Resolver, checks HealthChecks, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
		checks:   checks,
		logger:   logger,
	}
}

// Shorten handles POST /shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req ShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'url' field",
		))
		return
	}

	link, err := h.service.Shorten(r.Context(), req.URL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(link))
}

// ShortenBatch handles POST /shorten/batch
func (h *Handler) ShortenBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchShortenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'urls' array",
		))
		return
	}

	links, err := h.service.ShortenBatch(r.Context(), req.URLs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, BatchShortenResponse{
		Results: lo.Map(links, func(l *domain.ShortLink, _ int) LinkResponse {
			return h.toResponse(l)
		}),
	})
}

// Redirect handles GET /{code}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	target, err := h.resolver.Resolve(r.Context(), code, visitFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusFound)
}

// ListLinks handles GET /api/v1/links
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.service.ListLinks(r.Context(), usecase.ListLinksParams{
		Page:    atoiOr(query.Get("page"), 0),
		PerPage: atoiOr(query.Get("perPage"), 0),
		Order:   query.Get("order"),
		Search:  query.Get("search"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetLinkDetail handles GET /api/v1/links/{code}
func (h *Handler) GetLinkDetail(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	link, err := h.service.GetLinkDetail(r.Context(), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, link)
}

// DeleteLink handles DELETE /api/v1/links/{code}
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.service.DeleteLink(r.Context(), code); err != nil {
		h.writeError(w, r, err)
		return
	}

	// 204 even when the link did not exist
	w.WriteHeader(http.StatusNoContent)
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Reason: check.Name + " unavailable: " + err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}

func (h *Handler) toResponse(l *domain.ShortLink) LinkResponse {
	return LinkResponse{
		Code:        l.Code,
		ShortURL:    h.service.ShortURL(l.Code),
		OriginalURL: l.OriginalURL,
	}
}

// writeError maps domain errors to problem responses. Unknown errors are
// logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var batchErr *usecase.BatchValidationError
	switch {
	case errors.As(err, &batchErr):
		fields := make([]problemdetails.FieldError, 0, len(batchErr.Errors))
		for field, fieldErr := range batchErr.Errors {
			fields = append(fields, problemdetails.FieldError{Field: field, Message: fieldErr.Error()})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
		writeProblem(w, problemdetails.NewValidation(fields))
	case errors.Is(err, domain.ErrInvalidURL):
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidURL,
			"Invalid URL",
			err.Error(),
		))
	case errors.Is(err, usecase.ErrInvalidOrder):
		writeProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			err.Error(),
		))
	case errors.Is(err, domain.ErrURLNotFound):
		code := chi.URLParam(r, "code")
		writeProblem(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			"Short URL not found: "+code,
		))
	case errors.Is(err, domain.ErrCapacityExhausted):
		h.logger.Error("short code generation exhausted", zap.Error(err))
		writeProblem(w, problemdetails.New(
			http.StatusServiceUnavailable,
			problemdetails.TypeCapacityExhausted,
			"Service Unavailable",
			"Could not allocate a short code, please retry",
		))
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		))
	}
}

// visitFrom captures the request attributes a click is enriched from.
// RealIP middleware has already rewritten RemoteAddr when proxied.
func visitFrom(r *http.Request) usecase.Visit {
	return usecase.Visit{
		ClientIP:  clientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
