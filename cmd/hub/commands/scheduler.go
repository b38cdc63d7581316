package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/invest-hub/backend/internal/marketdata"
	"github.com/wonny/invest-hub/backend/internal/portfolio"
	"github.com/wonny/invest-hub/backend/internal/scheduler"
	"github.com/wonny/invest-hub/backend/internal/scheduler/jobs"
	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/database"
	"github.com/wonny/invest-hub/backend/pkg/logger"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "백그라운드 스케줄러 시작",
	Long: `시세 동기화와 포트폴리오 스냅샷 잡을 주기 실행합니다.

Jobs:
  price_sync          - 평일 17:30 보유 종목/벤치마크 종가 수집
  portfolio_snapshot  - 평일 18:00 총 평가액 스냅샷 기록

Example:
  go run ./cmd/hub scheduler
  go run ./cmd/hub scheduler --run-now price_sync`,
	RunE: runScheduler,
}

var runNowJob string

func init() {
	rootCmd.AddCommand(schedulerCmd)

	schedulerCmd.Flags().StringVar(&runNowJob, "run-now", "", "시작 직후 즉시 실행할 잡 이름")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Invest Hub Scheduler ===")

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

	rdb, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	// Wire repositories, services and the market data client
	portfolioRepo := portfolio.NewRepository(db.Pool)
	portfolioService := portfolio.NewService(portfolioRepo, log.Zerolog())
	priceRepo := marketdata.NewPriceRepository(db.Pool)
	client := marketDataClient(cfg, log, rdb)

	// Register jobs
	sched := scheduler.New(log)

	priceSync := jobs.NewPriceSyncJob(
		portfolioRepo, priceRepo, client,
		cfg.MarketData.BenchmarkSymbol, cfg.Engine.HistoryDays, log.Zerolog())
	if err := sched.AddJob(priceSync); err != nil {
		return fmt.Errorf("add price sync job: %w", err)
	}

	snapshot := jobs.NewSnapshotJob(portfolioService, log.Zerolog())
	if err := sched.AddJob(snapshot); err != nil {
		return fmt.Errorf("add snapshot job: %w", err)
	}

	sched.Start()
	fmt.Println("\n✅ Scheduler running (Ctrl+C to stop)")

	if runNowJob != "" {
		if err := sched.RunJob(runNowJob); err != nil {
			log.WithError(err).Warn("Failed to trigger job immediately")
		}
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}
