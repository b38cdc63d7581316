package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hub",
	Short: "Invest Hub - 포트폴리오 분석/인사이트 엔진",
	Long: `Invest Hub Unified CLI

보유 포지션과 가격 이력으로 성과/리스크 지표,
배분 추천, 규칙 기반 인사이트를 제공하는 백엔드.

Usage:
  go run ./cmd/hub [command]

Examples:
  go run ./cmd/hub api
  go run ./cmd/hub analyze risk
  go run ./cmd/hub scheduler
  go run ./cmd/hub status`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
