package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/invest-hub/backend/internal/analytics"
	"github.com/wonny/invest-hub/backend/internal/insights"
	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/database"
	"github.com/wonny/invest-hub/backend/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [metrics|risk|correlation|recommend]",
	Short: "포트폴리오 분석 일회 실행",
	Long: `저장된 포지션/가격 이력으로 분석을 한 번 실행하고 JSON으로 출력합니다.

Subjects:
  metrics      - 성과 지표
  risk         - 리스크 분석 (변동성/샤프/낙폭/VaR/CVaR/베타)
  correlation  - 보유 종목 상관계수 행렬
  recommend    - 규칙 기반 보유 종목 진단

Example:
  go run ./cmd/hub analyze risk
  go run ./cmd/hub analyze recommend`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	portfolioRepo := portfolio.NewRepository(db.Pool)
	portfolioService := portfolio.NewService(portfolioRepo, log.Zerolog())
	priceRepo := marketdata.NewPriceRepository(db.Pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var result interface{}

	switch args[0] {
	case "metrics":
		history, err := portfolioService.ValueHistory(ctx, cfg.Engine.HistoryDays)
		if err != nil {
			return fmt.Errorf("get value history: %w", err)
		}
		market := benchmarkReturns(ctx, priceRepo, cfg)
		result = analytics.ComputePerformanceMetrics(history, market, cfg.Engine.RiskFreeRate)

	case "risk":
		history, err := portfolioService.ValueHistory(ctx, cfg.Engine.HistoryDays)
		if err != nil {
			return fmt.Errorf("get value history: %w", err)
		}
		values := make([]float64, len(history))
		for i, p := range history {
			values[i] = p.Value
		}
		market := benchmarkReturns(ctx, priceRepo, cfg)
		result = analytics.AnalyzeRisk(values, market, cfg.Engine.RiskFreeRate)

	case "correlation":
		positions, err := portfolioService.Positions(ctx)
		if err != nil {
			return fmt.Errorf("get positions: %w", err)
		}
		prices := make(map[string][]float64, len(positions))
		for _, p := range positions {
			closes, err := priceRepo.GetCloses(ctx, p.Symbol, cfg.Engine.HistoryDays)
			if err != nil {
				return fmt.Errorf("get closes for %s: %w", p.Symbol, err)
			}
			prices[p.Symbol] = closes
		}
		result = analytics.CorrelationMatrix(prices)

	case "recommend":
		positions, err := portfolioService.Positions(ctx)
		if err != nil {
			return fmt.Errorf("get positions: %w", err)
		}
		recommender := insights.NewRecommender(log.Zerolog())
		result, err = recommender.Recommend(positions)
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}

	default:
		return fmt.Errorf("unknown subject %q (valid: metrics, risk, correlation, recommend)", args[0])
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// benchmarkReturns 벤치마크 수익률 조회 (없으면 nil, 베타는 기본값 1.0)
func benchmarkReturns(ctx context.Context, priceRepo *marketdata.PriceRepository, cfg *config.Config) []float64 {
	closes, err := priceRepo.GetCloses(ctx, cfg.MarketData.BenchmarkSymbol, cfg.Engine.HistoryDays)
	if err != nil {
		return nil
	}
	return analytics.CalculateReturns(closes)
}
