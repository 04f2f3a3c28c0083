//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"

	"shortlink/internal/analytics/enrichment"
	analyticsrepo "shortlink/internal/analytics/repository"
	analyticsusecase "shortlink/internal/analytics/usecase"
	"shortlink/internal/conf"
	"shortlink/internal/database"
	"shortlink/internal/infra/eventbus"
	"shortlink/internal/jobs"
	"shortlink/internal/logging"
	"shortlink/internal/server"
	urlrepo "shortlink/internal/urlservice/repository"
	"shortlink/internal/urlservice/shortcode"
	"shortlink/internal/urlservice/usecase"
)

// wireApp init kratos application.
func wireApp(*conf.Bootstrap) (*kratos.App, func(), error) {
	panic(wire.Build(
		conf.ProviderSet,
		logging.ProviderSet,
		database.ProviderSet,
		urlrepo.ProviderSet,
		analyticsrepo.ProviderSet,
		enrichment.ProviderSet,
		eventbus.ProviderSet,
		server.ProviderSet,
		shortcode.NewGenerator,
		usecase.NewURLService,
		usecase.NewResolver,
		analyticsusecase.NewAnalyticsService,
		jobs.NewRetentionPurger,
		wire.Bind(new(shortcode.Store), new(usecase.URLRepository)),
		wire.Bind(new(usecase.CodeAllocator), new(*shortcode.Generator)),
		wire.Bind(new(usecase.ClickCounter), new(*analyticsusecase.AnalyticsService)),
		wire.Bind(new(analyticsusecase.LinkLookup), new(usecase.URLRepository)),
		wire.Bind(new(analyticsusecase.GeoIPResolver), new(*enrichment.GeoIPResolver)),
		wire.Bind(new(analyticsusecase.DeviceDetector), new(*enrichment.DeviceDetector)),
		wire.Bind(new(analyticsusecase.RefererClassifier), new(*enrichment.RefererClassifier)),
		wire.Bind(new(jobs.TombstonePurger), new(usecase.URLRepository)),
		newApp,
	))
}
