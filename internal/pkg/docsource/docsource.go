package docsource

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
)

// config for a document source
type SourceConfig struct {
	BaseURL      string
	DocumentDir  string
	Timeout      time.Duration
	MaxRetries   int
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

// DocumentSource fetches the linearized text of one airport's AIP entry.
type DocumentSource interface {
	Fetch(ctx context.Context, airportCode string) (string, error)
}

type SourceFactory struct {
	Source map[string]DocumentSource
}

func NewSourceFactory() *SourceFactory {
	return &SourceFactory{
		Source: make(map[string]DocumentSource),
	}
}

func (f *SourceFactory) AddSource(name string, source DocumentSource) {
	f.Source[name] = source
}

func (f *SourceFactory) GetSource(name string) DocumentSource {
	return f.Source[name]
}

func (f *SourceFactory) GetAllSources() map[string]DocumentSource {
	return f.Source
}
