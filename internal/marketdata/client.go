package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/httputil"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

// =============================================================================
// Market Data Client - 시세 REST API + 프로필 HTML 페이지
// =============================================================================

// Quote 실시간 시세
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Change    float64   `json:"change"`
	ChangePct float64   `json:"change_pct"`
	AsOf      time.Time `json:"as_of"`
}

// Profile 종목 프로필 (프로필 페이지에서 스크랩)
type Profile struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Sector   string `json:"sector"`
	Industry string `json:"industry"`
}

// candle 히스토리 API 응답의 일봉
type candle struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// historyResponse 히스토리 API 응답
type historyResponse struct {
	Symbol  string   `json:"symbol"`
	Candles []candle `json:"candles"`
}

// Client 시세 제공자 클라이언트
// ⭐ SSOT: 외부 시세 조회는 여기서만
type Client struct {
	http  *httputil.Client
	cache *redis.Cache
	cfg   config.MarketDataConfig
	log   zerolog.Logger
}

// NewClient creates a new market data client
// 제공자 rate limit을 넘지 않도록 토큰 버킷 제한 적용
func NewClient(httpClient *httputil.Client, cache *redis.Cache, cfg config.MarketDataConfig, log zerolog.Logger) *Client {
	return &Client{
		http:  httpClient.WithRateLimit(cfg.RateLimit),
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("component", "marketdata.client").Logger(),
	}
}

// FetchDailyCloses 최근 days일 일별 종가 조회 (과거→최신)
func (c *Client) FetchDailyCloses(ctx context.Context, symbol string, days int) ([]DailyClose, error) {
	endpoint := fmt.Sprintf("%s/history?symbol=%s&days=%d&apikey=%s",
		c.cfg.BaseURL, url.QueryEscape(symbol), days, url.QueryEscape(c.cfg.APIKey))

	var resp historyResponse
	if err := c.http.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetch history for %s failed: %w", symbol, err)
	}

	closes := make([]DailyClose, 0, len(resp.Candles))
	for _, candle := range resp.Candles {
		date, err := time.Parse("2006-01-02", candle.Date)
		if err != nil {
			c.log.Warn().
				Str("symbol", symbol).
				Str("date", candle.Date).
				Msg("skipping candle with malformed date")
			continue
		}
		closes = append(closes, DailyClose{
			Symbol: symbol,
			Date:   date,
			Close:  candle.Close,
		})
	}

	c.log.Debug().
		Str("symbol", symbol).
		Int("candles", len(closes)).
		Msg("daily closes fetched")

	return closes, nil
}

// FetchQuote 실시간 시세 조회 (Redis 캐시 적용)
func (c *Client) FetchQuote(ctx context.Context, symbol string) (*Quote, error) {
	var quote Quote
	err := c.cache.GetOrSet(ctx, redis.QuoteKey(symbol), &quote, redis.TTLQuote, func() (interface{}, error) {
		endpoint := fmt.Sprintf("%s/quote?symbol=%s&apikey=%s",
			c.cfg.BaseURL, url.QueryEscape(symbol), url.QueryEscape(c.cfg.APIKey))

		var fresh Quote
		if err := c.http.GetJSON(ctx, endpoint, &fresh); err != nil {
			return nil, fmt.Errorf("fetch quote for %s failed: %w", symbol, err)
		}
		fresh.AsOf = time.Now()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// FetchProfile 종목 프로필 조회 (HTML 프로필 페이지 스크랩, 캐시 적용)
func (c *Client) FetchProfile(ctx context.Context, symbol string) (*Profile, error) {
	var profile Profile
	err := c.cache.GetOrSet(ctx, redis.ProfileKey(symbol), &profile, redis.TTLProfile, func() (interface{}, error) {
		return c.scrapeProfile(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// scrapeProfile 프로필 페이지 파싱
func (c *Client) scrapeProfile(ctx context.Context, symbol string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/%s", c.cfg.ProfileURL, url.PathEscape(symbol))

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch profile page for %s failed: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile page for %s returned status %d", symbol, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse profile page for %s failed: %w", symbol, err)
	}

	profile := &Profile{
		Symbol: symbol,
		Name:   strings.TrimSpace(doc.Find("h1.company-name").First().Text()),
	}

	// 프로필 테이블에서 섹터/산업 추출
	doc.Find("table.company-profile tr").Each(func(_ int, row *goquery.Selection) {
		label := strings.TrimSpace(row.Find("th").Text())
		value := strings.TrimSpace(row.Find("td").Text())

		switch strings.ToLower(label) {
		case "sector":
			profile.Sector = value
		case "industry":
			profile.Industry = value
		}
	})

	if profile.Sector == "" {
		c.log.Warn().Str("symbol", symbol).Msg("profile page missing sector")
	}

	return profile, nil
}
