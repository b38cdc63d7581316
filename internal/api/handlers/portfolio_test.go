package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/httputil"
	"github.com/wonny/invest-hub/backend/pkg/logger"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

func quoteTestHandler(t *testing.T, baseURL string) *PortfolioHandler {
	t.Helper()

	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	log := logger.New(cfg)

	rdb, err := redis.New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	require.NoError(t, err)
	cache := redis.NewCache(rdb, "test")

	client := marketdata.NewClient(
		httputil.New(log).DisableRetry(),
		cache,
		config.MarketDataConfig{BaseURL: baseURL, ProfileURL: baseURL, RateLimit: 100},
		log.Zerolog(),
	)

	return NewPortfolioHandler(nil, client, log)
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol": "AAPL", "price": 231.5, "change": 1.2, "change_pct": 0.52}`))
	}))
	defer server.Close()

	h := quoteTestHandler(t, server.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/quote/AAPL", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	rec := httptest.NewRecorder()
	h.GetQuote(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"AAPL"`)
	assert.Contains(t, rec.Body.String(), "231.5")
}

func TestGetQuote_ProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	h := quoteTestHandler(t, server.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/quote/AAPL", nil)
	req = mux.SetURLVars(req, map[string]string{"symbol": "AAPL"})
	rec := httptest.NewRecorder()
	h.GetQuote(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
