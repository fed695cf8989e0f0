package datasource

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/dataset"
	"github.com/yourusername/lay-scout/internal/metrics"
	"github.com/yourusername/lay-scout/internal/models"
)

const tableCacheKey = "table"

// RemoteCSVSource fetches a CSV match table over HTTP. Fetched tables are
// cached with a TTL so a scheduler re-running the miner inside the cache
// window does not hammer the provider.
type RemoteCSVSource struct {
	client *RateLimitedHTTPClient
	url    string
	cache  *gocache.Cache
	hits   float64
	misses float64
	logger *logrus.Logger
}

// NewRemoteCSVSource creates a source for the given table URL. ttl <= 0
// disables caching.
func NewRemoteCSVSource(client *RateLimitedHTTPClient, url string, ttl time.Duration, log *logrus.Logger) *RemoteCSVSource {
	if log == nil {
		log = logrus.New()
	}
	var cache *gocache.Cache
	if ttl > 0 {
		cache = gocache.New(ttl, 2*ttl)
	}
	return &RemoteCSVSource{
		client: client,
		url:    url,
		cache:  cache,
		logger: log,
	}
}

// FetchTable downloads and parses the table, serving from cache when a
// fresh copy is available.
func (s *RemoteCSVSource) FetchTable(ctx context.Context) ([]models.MatchRecord, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(tableCacheKey); ok {
			s.hits++
			s.recordCacheRatio()
			s.logger.WithField("rows", len(cached.([]models.MatchRecord))).Debug("Serving table from cache")
			return cached.([]models.MatchRecord), nil
		}
		s.misses++
		s.recordCacheRatio()
	}

	started := time.Now()
	resp, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeNetworkError, "failed to fetch table", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewSourceError(s.Name(), ErrCodeNotFound, fmt.Sprintf("table not found at %s", s.url), nil)
	case resp.StatusCode != http.StatusOK:
		return nil, NewSourceError(s.Name(), ErrCodeServerError, fmt.Sprintf("unexpected status: %d", resp.StatusCode), nil)
	}

	rows, err := dataset.ParseCSV(resp.Body)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeInvalidData, "failed to parse table", err)
	}
	metrics.RecordTableFetch(time.Since(started).Seconds())

	if s.cache != nil {
		s.cache.Set(tableCacheKey, rows, gocache.DefaultExpiration)
	}

	s.logger.WithFields(logrus.Fields{
		"rows":        len(rows),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("Fetched remote table")

	return rows, nil
}

// Name returns the data source name.
func (s *RemoteCSVSource) Name() string {
	return "remote_csv"
}

func (s *RemoteCSVSource) recordCacheRatio() {
	total := s.hits + s.misses
	if total > 0 {
		metrics.TableCacheHitRatio.Set(s.hits / total)
	}
}
