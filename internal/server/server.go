package server

import (
	"context"
	"database/sql"
	nethttp "net/http"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	analyticshttp "shortlink/internal/analytics/delivery/http"
	analyticsusecase "shortlink/internal/analytics/usecase"
	"shortlink/internal/conf"
	"shortlink/internal/infra/eventbus"
	urlhttp "shortlink/internal/urlservice/delivery/http"
	"shortlink/internal/urlservice/usecase"
)

const (
	PipelineDirect = "direct"
	PipelineBus    = "bus"
)

// ProviderSet is server providers.
var ProviderSet = wire.NewSet(
	NewHTTPServer,
	NewRouter,
	NewHealthChecks,
	NewClickRecorder,
	urlhttp.NewHandler,
	urlhttp.ProvideRateLimiter,
	analyticshttp.NewHandler,
)

// NewRouter mounts the link routes and the analytics routes on one router.
func NewRouter(
	c *conf.Server,
	links *urlhttp.Handler,
	stats *analyticshttp.Handler,
	limiter *urlhttp.RateLimiter,
	logger *zap.Logger,
) nethttp.Handler {
	return urlhttp.NewRouter(links, logger, limiter, c.CORSOrigins, stats)
}

// NewHealthChecks lists the dependencies /readyz pings. Redis is only
// checked when it is configured.
func NewHealthChecks(db *sql.DB, rdb *redis.Client) urlhttp.HealthChecks {
	checks := urlhttp.HealthChecks{
		{Name: "database", Ping: db.PingContext},
	}
	if rdb != nil {
		checks = append(checks, urlhttp.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return checks
}

// NewClickRecorder picks how redirects hand clicks to analytics. The direct
// pipeline records in the request; the bus pipeline publishes to the event
// router, which records through the same service.
func NewClickRecorder(
	c *conf.Analytics,
	analytics *analyticsusecase.AnalyticsService,
	bus *eventbus.EventBus,
	router *eventbus.Router,
	logger *zap.Logger,
) usecase.ClickRecorder {
	if c.Pipeline != PipelineBus {
		return analytics
	}
	router.AddHandler(eventbus.ClickEventsTopic, eventbus.NewClickHandler(analytics))
	logger.Info("click events routed through the event bus", zap.String("topic", eventbus.ClickEventsTopic))
	return eventbus.NewClickPublisher(bus, router)
}
