package enrichment

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"shortlink/internal/conf"
)

var ProviderSet = wire.NewSet(NewRefererClassifier, NewDeviceDetector, ProvideGeoIPResolver)

// ProvideGeoIPResolver opens the configured GeoIP database and closes it on cleanup.
func ProvideGeoIPResolver(c *conf.Analytics, logger *zap.Logger) (*GeoIPResolver, func(), error) {
	resolver, err := NewGeoIPResolver(c.GeoIPPath)
	if err != nil {
		return nil, nil, err
	}
	if c.GeoIPPath == "" {
		logger.Info("no geoip database configured, locations will be reported as unknown")
	}
	return resolver, func() {
		if err := resolver.Close(); err != nil {
			logger.Warn("failed to close geoip database", zap.Error(err))
		}
	}, nil
}
