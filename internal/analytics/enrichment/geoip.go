package enrichment

import (
	"fmt"
	"net"

	geoip2 "github.com/oschwald/geoip2-golang"
)

// LocationUnknown is reported when an address cannot be placed.
const LocationUnknown = "Unknown"

// GeoIPResolver resolves IP addresses to "City, Country" labels using a
// GeoIP2 or GeoLite2 City database. A resolver without a database reports
// every address as unknown.
type GeoIPResolver struct {
	db *geoip2.Reader
}

// NewGeoIPResolver opens the database at dbPath. An empty path yields a
// resolver that always answers LocationUnknown.
func NewGeoIPResolver(dbPath string) (*GeoIPResolver, error) {
	if dbPath == "" {
		return &GeoIPResolver{}, nil
	}
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &GeoIPResolver{db: db}, nil
}

// Close closes the GeoIP database reader.
func (g *GeoIPResolver) Close() error {
	if g.db == nil {
		return nil
	}
	return g.db.Close()
}

// ResolveLocation returns "City, Country", "Country" or LocationUnknown.
func (g *GeoIPResolver) ResolveLocation(ipStr string) string {
	if g.db == nil {
		return LocationUnknown
	}

	ip := net.ParseIP(ipStr)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() {
		return LocationUnknown
	}

	record, err := g.db.City(ip)
	if err != nil {
		return LocationUnknown
	}

	return formatLocation(record.City.Names["en"], record.Country.Names["en"], record.Country.IsoCode)
}

func formatLocation(city, country, isoCode string) string {
	if country == "" {
		country = isoCode
	}
	switch {
	case country == "":
		return LocationUnknown
	case city == "":
		return country
	default:
		return city + ", " + country
	}
}
