package load_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordavia/airport-aip-service/internal/app/dto"
)

type Stats struct {
	CacheHits   int
	CacheMisses int
	NotFound    int
}

func (s *Stats) Add(other Stats) {
	s.CacheHits += other.CacheHits
	s.CacheMisses += other.CacheMisses
	s.NotFound += other.NotFound
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func clearRedis(t *testing.T, ctx context.Context, rdb *redis.Client) {
	err := rdb.FlushDB(ctx).Err()
	require.NoError(t, err, "Failed to flush Redis")
}

func lookupAirport(ctx context.Context, url string, req dto.LookupRequest) (Stats, error) {
	payload, _ := json.Marshal(req)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return Stats{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return Stats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Stats{NotFound: 1}, nil
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Stats{}, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var record dto.AirportRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return Stats{}, err
	}

	stats := Stats{}
	if record.Cached {
		stats.CacheHits = 1
	} else {
		stats.CacheMisses = 1
	}

	return stats, nil
}

func TestAirportLookupLoad(t *testing.T) {
	if os.Getenv("LOAD_TEST") == "" {
		t.Skip("set LOAD_TEST=1 to run against a deployed stack")
	}

	appHost := getEnv("APP_HOST", "http://localhost:8080")
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "redis123")

	url := appHost + "/api/v1/airports/lookup"
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	req := dto.LookupRequest{AirportCode: "EVRA"}

	t.Run("Cache Miss Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)
		vus := 5
		stats := runScenario(t, ctx, url, req, vus)

		assert.Equal(t, 0, stats.CacheHits)
		assert.Equal(t, vus, stats.CacheMisses)
	})

	t.Run("Cache Hit Test", func(t *testing.T) {
		clearRedis(t, ctx, rdb)

		// Populate cache
		_, err := lookupAirport(ctx, url, req)
		require.NoError(t, err)

		vus := 5
		stats := runScenario(t, ctx, url, req, vus)

		assert.Equal(t, vus, stats.CacheHits)
		assert.Equal(t, 0, stats.CacheMisses)
	})

	t.Run("Unsupported Airport Test", func(t *testing.T) {
		stats := runScenario(t, ctx, url, dto.LookupRequest{AirportCode: "KJFK"}, 3)

		assert.Equal(t, 3, stats.NotFound)
	})
}

func runScenario(t *testing.T, ctx context.Context, url string, req dto.LookupRequest, vus int) Stats {
	var wg sync.WaitGroup
	var mu sync.Mutex
	scenarioStats := Stats{}

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats, err := lookupAirport(ctx, url, req)
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}
			mu.Lock()
			scenarioStats.Add(stats)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	return scenarioStats
}
