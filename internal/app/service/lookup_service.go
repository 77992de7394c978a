package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
	"github.com/nordavia/airport-aip-service/internal/pkg/airport"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource/sourceutils"
	"github.com/nordavia/airport-aip-service/internal/pkg/extract"
	"github.com/nordavia/airport-aip-service/internal/pkg/registry"
)

type CountryRouter interface {
	Resolve(airportCode string) (registry.Route, error)
	SourceFor(route registry.Route) (docsource.DocumentSource, error)
	DialectFor(route registry.Route) extract.Dialect
}

type RecordCacher interface {
	GetCacheKey(airportCode string) string
	GetLockKey(airportCode string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetRecord(ctx context.Context, key string) (dto.AirportRecord, error)
	SetRecord(ctx context.Context, key string, record dto.AirportRecord, expiration time.Duration) error
}

type RecordStorer interface {
	GetForToday(ctx context.Context, airportCode string) (dto.AirportRecord, error)
	Save(ctx context.Context, record dto.AirportRecord) error
}

type LookupService struct {
	Router          CountryRouter
	Cache           RecordCacher
	Store           RecordStorer // nil disables the daily store
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewLookupService(router CountryRouter, cache RecordCacher, store RecordStorer,
	cacheExpiration time.Duration, lockTimeout time.Duration,
) *LookupService {
	return &LookupService{
		Router:          router,
		Cache:           cache,
		Store:           store,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

// LookupAirport returns the operational record for one airport. Layered
// reads: hot cache, then today's stored extraction, then a fresh fetch
// and extraction from the country's publication.
// LookupAirport godoc
// @Summary      Look up an airport's AIP record
// @Tags         Airports
// @Description  Extract operational data from the airport's AIP entry
// @Param        request  body      dto.LookupRequest  true  "Airport Code"
// @Success      200      {object}  dto.AirportRecord
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/airports/lookup [post]
func (s *LookupService) LookupAirport(
	ctx context.Context,
	req dto.LookupRequest,
) (dto.AirportRecord, error) {
	cacheKey := s.Cache.GetCacheKey(req.AirportCode)
	lockKey := s.Cache.GetLockKey(req.AirportCode)

	record, err := s.Cache.GetRecord(ctx, cacheKey)
	if err == nil {
		record.Cached = true

		return record, nil
	}

	slog.WarnContext(ctx, "failed to get record from cache", slog.String("error", err.Error()))

	if s.Store != nil {
		record, err = s.Store.GetForToday(ctx, req.AirportCode)
		if err == nil {
			record.Cached = true

			return record, nil
		}

		if !errors.Is(err, airport.ErrNoCachedRecord) {
			slog.WarnContext(ctx, "failed to get record from daily store",
				slog.String("error", err.Error()))
		}
	}

	record, err = s.extractFresh(ctx, req.AirportCode)
	if err != nil {
		return dto.AirportRecord{}, err
	}

	// concurrent lookups for the same airport race here; only the lock
	// holder writes back, the rest serve their freshly extracted copy
	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		return dto.AirportRecord{}, fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer s.Cache.ReleaseLock(ctx, lockKey)

	if acquired {
		s.writeBack(ctx, cacheKey, record)
	}

	return record, nil
}

// extractFresh fetches the airport's publication and runs the extractor.
func (s *LookupService) extractFresh(ctx context.Context, airportCode string) (dto.AirportRecord, error) {
	route, err := s.Router.Resolve(airportCode)
	if err != nil {
		return dto.AirportRecord{}, fmt.Errorf("failed to route airport: %w", err)
	}

	source, err := s.Router.SourceFor(route)
	if err != nil {
		return dto.AirportRecord{}, fmt.Errorf("failed to build document source: %w", err)
	}

	documentText, err := source.Fetch(ctx, airportCode)
	if err != nil {
		if errors.Is(err, sourceutils.ErrDocumentNotFound) {
			return dto.AirportRecord{}, fmt.Errorf("%w: %s", ErrAirportNotFound, airportCode)
		}

		return dto.AirportRecord{}, fmt.Errorf("failed to fetch aip document: %w", err)
	}

	return extract.Extract(airportCode, documentText, s.Router.DialectFor(route)), nil
}

// writeBack stores the record in both cache layers. Failures are logged
// and swallowed: the caller already holds a good record and a dead cache
// must not turn a successful extraction into an error.
func (s *LookupService) writeBack(ctx context.Context, cacheKey string, record dto.AirportRecord) {
	if err := s.Cache.SetRecord(ctx, cacheKey, record, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set record to cache", slog.String("error", err.Error()))
	}

	if s.Store != nil {
		if err := s.Store.Save(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to save record to daily store",
				slog.String("error", err.Error()))
		}
	}
}
