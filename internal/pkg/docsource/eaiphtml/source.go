package eaiphtml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"

	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource/sourceutils"
)

const SourceName = "eaip-html"

// Eurocontrol-style eAIP publications expose one AD 2 page per airport:
// <base>/eAIP/<CC>-AD-2.<ICAO>-en-GB.html where CC is the two-letter
// country part of the ICAO code.
const airportPagePath = "%s/eAIP/%s-AD-2.%s-en-GB.html"

type Source struct {
	Name         string
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	Limiter      *redis_rate.Limiter
	RateLimitRPS int
	client       *http.Client
}

func NewSource(config docsource.SourceConfig) *Source {
	return &Source{
		Name:         SourceName,
		BaseURL:      config.BaseURL,
		Timeout:      config.Timeout,
		MaxRetries:   config.MaxRetries,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		client:       &http.Client{Timeout: config.Timeout},
	}
}

// Fetch downloads the airport's AD 2 page and linearizes it to plain text.
// Transient upstream failures are retried with exponential backoff; a 404
// maps to ErrDocumentNotFound so callers can tell "no such airport" from
// "publication host is down".
func (s *Source) Fetch(ctx context.Context, airportCode string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.allow(ctx); err != nil {
		return "", err
	}

	url := s.airportPageURL(airportCode)

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		page, err := s.fetchPage(ctx, url)
		if err == nil {
			return Linearize(page), nil
		}

		if errors.Is(err, sourceutils.ErrDocumentNotFound) {
			return "", err
		}

		lastErr = err
		slog.ErrorContext(ctx, "failed to fetch aip page", "source", s.Name,
			"url", url, "attempt", attempt+1, "error", err)

		if attempt < s.MaxRetries {
			// Exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			slog.InfoContext(ctx, "retrying with exponential backoff", "backoff",
				backoff, "next_attempt", attempt+2)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", fmt.Errorf("failed after retries: %w (last: %w)", sourceutils.ErrRetryExceeded, lastErr)
}

// allow applies the distributed leaky-bucket rate limit. A nil limiter
// disables limiting, which keeps tests and single-node setups simple.
func (s *Source) allow(ctx context.Context) error {
	if s.Limiter == nil || s.RateLimitRPS <= 0 {
		return nil
	}

	res, err := s.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", s.Name),
		redis_rate.PerSecond(s.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return sourceutils.ErrSourceRateLimitExceeded
	}

	return nil
}

func (s *Source) fetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call publication host: %w: %w",
			sourceutils.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", sourceutils.ErrDocumentNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("unexpected status %d: %w", resp.StatusCode,
			sourceutils.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}

func (s *Source) airportPageURL(airportCode string) string {
	code := strings.ToUpper(strings.TrimSpace(airportCode))
	prefix := code
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	return fmt.Sprintf(airportPagePath, strings.TrimRight(s.BaseURL, "/"), prefix, code)
}
