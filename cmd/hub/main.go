package main

import (
	"os"

	"github.com/wonny/invest-hub/backend/cmd/hub/commands"
)

// main is the entry point for the Invest Hub CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/hub [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
