package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/httputil"
	"github.com/wonny/invest-hub/backend/pkg/logger"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

func testClient(t *testing.T, baseURL, profileURL string) *Client {
	t.Helper()

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})

	// Redis 비활성: 캐시는 항상 미스로 동작
	rdb, err := redis.New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	require.NoError(t, err)
	cache := redis.NewCache(rdb, "test")

	cfg := config.MarketDataConfig{
		BaseURL:    baseURL,
		ProfileURL: profileURL,
		RateLimit:  100,
	}

	return NewClient(httputil.New(log).DisableRetry(), cache, cfg, log.Zerolog())
}

func TestFetchDailyCloses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "30", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"symbol": "AAPL",
			"candles": [
				{"date": "2026-08-20", "close": 231.5},
				{"date": "2026-08-21", "close": 233.1},
				{"date": "bad-date", "close": 0},
				{"date": "2026-08-22", "close": 229.8}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	closes, err := client.FetchDailyCloses(context.Background(), "AAPL", 30)
	require.NoError(t, err)

	// 날짜가 깨진 캔들은 건너뜀
	require.Len(t, closes, 3)
	assert.Equal(t, "AAPL", closes[0].Symbol)
	assert.Equal(t, 231.5, closes[0].Close)
	assert.Equal(t, 229.8, closes[2].Close)
}

func TestFetchQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol": "MSFT", "price": 512.3, "change": 4.1, "change_pct": 0.81}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	quote, err := client.FetchQuote(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", quote.Symbol)
	assert.Equal(t, 512.3, quote.Price)
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/AAPL"))

		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><body>
				<h1 class="company-name">Apple Inc.</h1>
				<table class="company-profile">
					<tr><th>Sector</th><td>Technology</td></tr>
					<tr><th>Industry</th><td>Consumer Electronics</td></tr>
				</table>
			</body></html>
		`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	profile, err := client.FetchProfile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", profile.Name)
	assert.Equal(t, "Technology", profile.Sector)
	assert.Equal(t, "Consumer Electronics", profile.Industry)
}

func TestFetchDailyCloses_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL, server.URL)

	_, err := client.FetchDailyCloses(context.Background(), "AAPL", 30)
	assert.Error(t, err)
}
