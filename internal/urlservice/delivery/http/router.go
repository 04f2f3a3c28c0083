package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouteRegistrar mounts additional rate limited routes, such as statistics.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter builds the public HTTP surface. Health probes bypass the rate
// limiter; static routes are registered before the /{code} catch-all.
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter, corsOrigins []string, extra ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health checks
	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)

		r.Post("/shorten", handler.Shorten)
		r.Post("/shorten/batch", handler.ShortenBatch)

		r.Route("/api/v1/links", func(r chi.Router) {
			r.Get("/", handler.ListLinks)
			r.Get("/{code}", handler.GetLinkDetail)
			r.Delete("/{code}", handler.DeleteLink)
		})

		for _, reg := range extra {
			reg.RegisterRoutes(r)
		}

		r.Get("/{code}", handler.Redirect)
	})

	return r
}
