// Injector bodies for the graph declared in wire.go, kept in step with it
// by hand. Running wire regenerates this file.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/go-kratos/kratos/v2"

	"shortlink/internal/analytics/delivery/http"
	"shortlink/internal/analytics/enrichment"
	repository2 "shortlink/internal/analytics/repository"
	usecase2 "shortlink/internal/analytics/usecase"
	"shortlink/internal/conf"
	"shortlink/internal/database"
	"shortlink/internal/infra/eventbus"
	"shortlink/internal/jobs"
	"shortlink/internal/logging"
	"shortlink/internal/server"
	http2 "shortlink/internal/urlservice/delivery/http"
	"shortlink/internal/urlservice/repository"
	"shortlink/internal/urlservice/shortcode"
	"shortlink/internal/urlservice/usecase"
)

// Injectors from wire.go:

// wireApp init kratos application.
func wireApp(bootstrap *conf.Bootstrap) (*kratos.App, func(), error) {
	analytics := bootstrap.Analytics
	confLog := bootstrap.Log
	logger, cleanup, err := logging.ProvideLogger(confLog)
	if err != nil {
		return nil, nil, err
	}
	logLogger := logging.NewKratosLogger(logger)
	confServer := bootstrap.Server
	data := bootstrap.Data
	db, cleanup2, err := database.NewDB(data, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	client, cleanup3, err := database.NewRedis(data, logger)
	if err != nil {
		cleanup2()
		cleanup()
		return nil, nil, err
	}
	urlRepository := repository.NewURLRepository(data, db, client, logger)
	confShortcode := bootstrap.Shortcode
	generator := shortcode.NewGenerator(confShortcode, urlRepository, logger)
	clickRepository := repository2.NewClickRepository(data, db)
	geoIPResolver, cleanup4, err := enrichment.ProvideGeoIPResolver(analytics, logger)
	if err != nil {
		cleanup3()
		cleanup2()
		cleanup()
		return nil, nil, err
	}
	deviceDetector := enrichment.NewDeviceDetector()
	refererClassifier := enrichment.NewRefererClassifier()
	analyticsService := usecase2.NewAnalyticsService(clickRepository, urlRepository, geoIPResolver, deviceDetector, refererClassifier, logger)
	urlService := usecase.NewURLService(urlRepository, generator, analyticsService, logger, confServer)
	loggerAdapter := logging.NewWatermillLogger(logger)
	eventBus, cleanup5 := eventbus.ProvideEventBus(loggerAdapter)
	router, err := eventbus.NewRouter(eventBus, loggerAdapter)
	if err != nil {
		cleanup5()
		cleanup4()
		cleanup3()
		cleanup2()
		cleanup()
		return nil, nil, err
	}
	clickRecorder := server.NewClickRecorder(analytics, analyticsService, eventBus, router, logger)
	resolver := usecase.NewResolver(urlRepository, clickRecorder, logger)
	healthChecks := server.NewHealthChecks(db, client)
	handler := http2.NewHandler(urlService, resolver, healthChecks, logger)
	httpHandler := http.NewHandler(analyticsService, logger)
	rateLimiter, cleanup6 := http2.ProvideRateLimiter(confServer)
	netHTTPHandler := server.NewRouter(confServer, handler, httpHandler, rateLimiter, logger)
	httpServer := server.NewHTTPServer(confServer, netHTTPHandler, logLogger)
	retentionPurger := jobs.NewRetentionPurger(confShortcode, urlRepository, logger)
	app := newApp(analytics, logLogger, httpServer, retentionPurger, router)
	return app, func() {
		cleanup6()
		cleanup5()
		cleanup4()
		cleanup3()
		cleanup2()
		cleanup()
	}, nil
}
