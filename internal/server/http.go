package server

import (
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"shortlink/internal/conf"
)

// NewHTTPServer serves the chi router through the kratos transport so the
// application owns its lifecycle.
func NewHTTPServer(c *conf.Server, router nethttp.Handler, logger log.Logger) *http.Server {
	var opts []http.ServerOption
	if c.HTTP.Network != "" {
		opts = append(opts, http.Network(c.HTTP.Network))
	}
	if c.HTTP.Addr != "" {
		opts = append(opts, http.Address(c.HTTP.Addr))
	}
	if c.HTTP.Timeout > 0 {
		opts = append(opts, http.Timeout(c.HTTP.Timeout.Std()))
	}
	srv := http.NewServer(opts...)
	srv.HandlePrefix("/", router)

	log.NewHelper(logger).Infof("http server configured on %s", c.HTTP.Addr)
	return srv
}
