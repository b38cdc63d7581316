package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/database"
	"github.com/wonny/invest-hub/backend/pkg/redis"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "인프라 연결 상태 확인",
	Long: `데이터베이스와 Redis 연결 상태를 확인합니다.

Example:
  go run ./cmd/hub status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Invest Hub Status ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Printf("Env:  %s\n", cfg.Env)
	fmt.Printf("Port: %s\n\n", cfg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Database
	db, err := database.New(cfg)
	if err != nil {
		fmt.Printf("❌ Database: %v\n", err)
	} else {
		defer db.Close()
		health, err := db.HealthCheck(ctx)
		if err != nil {
			fmt.Printf("❌ Database: %v\n", err)
		} else {
			fmt.Printf("✅ Database: ok (response %s, conns %d/%d)\n",
				health.ResponseTime, health.TotalConns, health.MaxConns)
		}
	}

	// Redis
	rdb, err := redis.New(cfg)
	switch {
	case err != nil:
		fmt.Printf("❌ Redis: %v\n", err)
	case !rdb.Enabled():
		fmt.Println("⚪ Redis: disabled")
	default:
		defer rdb.Close()
		if err := rdb.Redis().Ping(ctx).Err(); err != nil {
			fmt.Printf("❌ Redis: %v\n", err)
		} else {
			fmt.Println("✅ Redis: ok")
		}
	}

	return nil
}
