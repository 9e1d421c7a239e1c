// Package main is the entry point for the mirror middleware.
package main

import (
	"log/slog"
	"os"

	"github.com/casamatriz/mirror-middleware/cmd/mirror-middleware/app"
)

func main() {
	// stdout stays free for `version --format json`
	slog.SetDefault(newLogger(os.Stderr, levelFromEnv()))

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
