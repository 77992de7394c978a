// Package registry maps ICAO airport codes to the AIP publication that
// covers them: which country, which document source kind, which extraction
// dialect. The routing table ships embedded so the service needs no
// external file to answer "do we support this airport".
package registry

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	_ "embed"

	"github.com/jszwec/csvutil"

	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource/eaiphtml"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource/pdftext"
	"github.com/nordavia/airport-aip-service/internal/pkg/exception"
	"github.com/nordavia/airport-aip-service/internal/pkg/extract"
)

//go:embed routes.csv
var routesCSV []byte

var ErrCountryNotSupported = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "no aip source covers this airport code",
}

// Route is one row of the routing table.
type Route struct {
	Prefix  string `csv:"prefix"`
	Country string `csv:"country"`
	Source  string `csv:"source"`
	Dialect string `csv:"dialect"`
	BaseURL string `csv:"base_url"`
}

type Registry struct {
	routes   []Route
	dialects map[string]extract.Dialect
	config   docsource.SourceConfig

	mu      sync.Mutex
	sources *docsource.SourceFactory
}

// New parses the embedded routing table and prepares the source factory.
// The config carries the cross-source knobs (timeout, retries, rate limit,
// document dir); the per-country base URL comes from the table.
func New(config docsource.SourceConfig) (*Registry, error) {
	var routes []Route
	if err := csvutil.Unmarshal(routesCSV, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routing table: %w", err)
	}

	// longest prefix first so a specific route shadows a country-wide one
	sort.SliceStable(routes, func(i, j int) bool {
		return len(routes[i].Prefix) > len(routes[j].Prefix)
	})

	return &Registry{
		routes:   routes,
		dialects: builtinDialects(),
		config:   config,
		sources:  docsource.NewSourceFactory(),
	}, nil
}

// Resolve finds the route covering an airport code.
func (r *Registry) Resolve(airportCode string) (Route, error) {
	code := strings.ToUpper(strings.TrimSpace(airportCode))

	for _, route := range r.routes {
		if strings.HasPrefix(code, route.Prefix) {
			return route, nil
		}
	}

	return Route{}, fmt.Errorf("%w: %s", ErrCountryNotSupported, airportCode)
}

// SourceFor returns the document source for a route, building it on first
// use. Sources are cached per prefix so every lookup for a country shares
// one HTTP client.
func (r *Registry) SourceFor(route Route) (docsource.DocumentSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if source := r.sources.GetSource(route.Prefix); source != nil {
		return source, nil
	}

	config := r.config
	config.BaseURL = route.BaseURL

	var source docsource.DocumentSource

	switch route.Source {
	case eaiphtml.SourceName:
		source = eaiphtml.NewSource(config)
	case pdftext.SourceName:
		source = pdftext.NewSource(config)
	default:
		return nil, fmt.Errorf("unknown source kind %q for prefix %s", route.Source, route.Prefix)
	}

	r.sources.AddSource(route.Prefix, source)

	return source, nil
}

// DialectFor returns the extraction dialect for a route, defaulting to the
// Eurocontrol layout when the table names an unknown one.
func (r *Registry) DialectFor(route Route) extract.Dialect {
	if d, ok := r.dialects[route.Dialect]; ok {
		return d
	}

	return extract.DefaultDialect()
}
