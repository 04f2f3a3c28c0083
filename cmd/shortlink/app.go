package main

import (
	"context"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/go-kratos/kratos/v2/transport/http"

	"shortlink/internal/conf"
	"shortlink/internal/infra/eventbus"
	"shortlink/internal/jobs"
	"shortlink/internal/server"
)

func newApp(
	c *conf.Analytics,
	logger log.Logger,
	hs *http.Server,
	purger *jobs.RetentionPurger,
	router *eventbus.Router,
) *kratos.App {
	servers := []transport.Server{hs, purger}
	// the event router only has work in the bus pipeline
	if c.Pipeline == server.PipelineBus {
		servers = append(servers, router)
	}

	helper := log.NewHelper(logger)
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{"analytics.pipeline": c.Pipeline}),
		kratos.Logger(logger),
		kratos.Server(servers...),
		kratos.BeforeStart(func(context.Context) error {
			helper.Infof("starting %s %s", Name, Version)
			return nil
		}),
		kratos.BeforeStop(func(context.Context) error {
			helper.Info("shutting down, draining in-flight requests")
			return nil
		}),
	)
}
