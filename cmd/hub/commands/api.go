package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/invest-hub/backend/internal/api"
	"github.com/wonny/invest-hub/backend/internal/api/handlers"
	"github.com/wonny/invest-hub/backend/internal/insights"
	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/database"
	"github.com/wonny/invest-hub/backend/pkg/httputil"
	"github.com/wonny/invest-hub/backend/pkg/logger"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 포트폴리오/분석/인사이트 엔드포인트 제공

Endpoints:
  GET  /health                      - Health check
  GET  /api/portfolio/positions     - 보유 포지션
  GET  /api/portfolio/summary       - 포트폴리오 요약
  GET  /api/portfolio/quote/{symbol} - 실시간 시세 (캐시)
  GET  /api/analytics/metrics       - 성과 지표
  GET  /api/analytics/risk          - 리스크 분석
  GET  /api/analytics/correlation   - 상관계수 행렬
  POST /api/analytics/optimize      - 배분 추천
  GET  /api/ml/predict/{symbol}     - 가격 예측
  GET  /api/ml/anomaly/{symbol}     - 이상치 감지
  GET  /api/ml/patterns/{symbol}    - 기술적 패턴
  GET  /api/ml/volatility/{symbol}  - 변동성 예측
  GET  /api/ml/risk-score/{symbol}  - 리스크 점수
  GET  /api/ml/recommendations      - 보유 종목 진단

Example:
  go run ./cmd/hub api
  go run ./cmd/hub api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: PORT 환경변수)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Invest Hub API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	log.Info("Connected to database")

	// 4. Connect to Redis (optional, quote cache)
	rdb, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	// 5. Create repositories and services
	portfolioRepo := portfolio.NewRepository(db.Pool)
	portfolioService := portfolio.NewService(portfolioRepo, log.Zerolog())
	priceRepo := marketdata.NewPriceRepository(db.Pool)
	mdClient := marketDataClient(cfg, log, rdb)

	// 6. Create insight components
	predictor := insights.NewPredictor(log.Zerolog())
	detector := insights.NewAnomalyDetector(log.Zerolog())
	recommender := insights.NewRecommender(log.Zerolog())

	// 7. Create handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, mdClient, log)
	analyticsHandler := handlers.NewAnalyticsHandler(portfolioService, priceRepo, cfg, log)
	insightsHandler := handlers.NewInsightsHandler(
		portfolioService, priceRepo, predictor, detector, recommender, cfg, log)

	// 8. Create router and server
	router := api.NewRouter(portfolioHandler, analyticsHandler, insightsHandler, log)
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

// marketDataClient 시세 클라이언트 조립 (api 시세 엔드포인트와 스케줄러 잡 공용)
func marketDataClient(cfg *config.Config, log *logger.Logger, rdb *redis.Client) *marketdata.Client {
	cache := redis.NewCache(rdb, "invest-hub")
	httpClient := httputil.New(log)
	return marketdata.NewClient(httpClient, cache, cfg.MarketData, log.Zerolog())
}
