package app

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/casamatriz/mirror-middleware/internal/config"
)

// loadConfig loads the configuration from the --config flag, if set, plus the environment
func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if path := viper.GetString("config"); path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}

	cfg, err := config.LoadConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
