package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableCSV = `date,league,home_team,away_team,goals_home_ft,goals_away_ft,goals_home_ht,goals_away_ht,odds_home,odds_draw,odds_away,odds_over25,odds_under25,odds_btts_yes,odds_btts_no,odds_dc_1x,odds_dc_12,odds_dc_x2
2025-01-15,england_premier_league,Arsenal,Chelsea,2,1,1,0,1.85,3.60,4.20,1.90,1.90,1.80,2.00,1.25,1.30,1.95
2025-01-16,spain_la_liga,Sevilla,Getafe,0,0,0,0,2.10,3.20,3.50,2.00,1.80,1.85,1.95,1.28,1.32,1.70
`

func testHTTPClient() *RateLimitedHTTPClient {
	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRateLimitedHTTPClient(cfg, log)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRemoteCSVSourceFetchTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tableCSV))
	}))
	defer server.Close()

	source := NewRemoteCSVSource(testHTTPClient(), server.URL, 0, quietLogger())
	rows, err := source.FetchTable(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Arsenal", rows[0].HomeTeam)
	assert.Equal(t, "spain_la_liga", rows[1].League)
}

func TestRemoteCSVSourceCachesWithinTTL(t *testing.T) {
	var fetches int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		w.Write([]byte(tableCSV))
	}))
	defer server.Close()

	source := NewRemoteCSVSource(testHTTPClient(), server.URL, time.Minute, quietLogger())

	_, err := source.FetchTable(context.Background())
	require.NoError(t, err)
	_, err = source.FetchTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, fetches, "second fetch inside the TTL must hit the cache")
}

func TestRemoteCSVSourceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source := NewRemoteCSVSource(testHTTPClient(), server.URL, 0, quietLogger())
	_, err := source.FetchTable(context.Background())

	require.Error(t, err)
	var srcErr SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, ErrCodeNotFound, srcErr.Code)
}

func TestRemoteCSVSourceInvalidTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("date,league\n2025-01-15,england_premier_league\n"))
	}))
	defer server.Close()

	source := NewRemoteCSVSource(testHTTPClient(), server.URL, 0, quietLogger())
	_, err := source.FetchTable(context.Background())

	require.Error(t, err)
	var srcErr SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, ErrCodeInvalidData, srcErr.Code)
}

func TestFileSourceFetchTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(tableCSV), 0o644))

	source := NewFileSource(path)
	rows, err := source.FetchTable(context.Background())

	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := source.FetchTable(context.Background())

	require.Error(t, err)
	var srcErr SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, ErrCodeNotFound, srcErr.Code)
}
