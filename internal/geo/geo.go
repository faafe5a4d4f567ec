package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/rs/zerolog/log"
)

// Location is an approximate request origin. Fields stay empty when the
// lookup cannot place the address.
type Location struct {
	City    string
	Country string
}

// Locator resolves a client IP to an approximate location. Lookups may
// fail silently; a zero Location is always an acceptable answer.
type Locator interface {
	Locate(ip string) Location
	Close() error
}

// MaxMindLocator resolves locations from a local MaxMind city database
type MaxMindLocator struct {
	reader *geoip2.Reader
}

// NewMaxMindLocator opens the MaxMind database at the given path
func NewMaxMindLocator(mmdbPath string) (*MaxMindLocator, error) {
	reader, err := geoip2.Open(mmdbPath)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", mmdbPath).Msg("GeoIP database loaded")
	return &MaxMindLocator{reader: reader}, nil
}

// Locate resolves the IP, returning a zero Location on any failure
func (l *MaxMindLocator) Locate(ip string) Location {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Location{}
	}

	record, err := l.reader.City(parsed)
	if err != nil {
		log.Debug().Err(err).Str("ip", ip).Msg("GeoIP lookup failed")
		return Location{}
	}

	loc := Location{Country: record.Country.Names["en"]}
	if name, ok := record.City.Names["en"]; ok {
		loc.City = name
	}
	return loc
}

// Close closes the underlying database
func (l *MaxMindLocator) Close() error {
	return l.reader.Close()
}

// NullLocator is used when no geo database is configured
type NullLocator struct{}

// Locate always returns a zero Location
func (NullLocator) Locate(string) Location {
	return Location{}
}

// Close is a no-op
func (NullLocator) Close() error {
	return nil
}
