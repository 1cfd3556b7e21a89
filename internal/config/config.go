// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	SnapshotPath string          `mapstructure:"snapshot_path"`
	LogPath      string          `mapstructure:"log_path"`
	DebugLogging bool            `mapstructure:"debug_logging"`
	Feed         FeedConfig      `mapstructure:"feed"`
	UI           UIConfig        `mapstructure:"ui"`
	TokenCell    TokenCellConfig `mapstructure:"token_cell"`
}

type FeedConfig struct {
	IntervalMs int `mapstructure:"interval_ms"`
	MaxRetryMs int `mapstructure:"max_retry_ms"`
}

// Interval returns the snapshot reload period
func (f FeedConfig) Interval() time.Duration {
	return time.Duration(f.IntervalMs) * time.Millisecond
}

// MaxRetry returns the total time a failing reload is retried
func (f FeedConfig) MaxRetry() time.Duration {
	return time.Duration(f.MaxRetryMs) * time.Millisecond
}

type UIConfig struct {
	// ShowForecast is handed to the dashboard token list, which ignores it
	ShowForecast        bool `mapstructure:"show_forecast"`
	TokenDetailForecast bool `mapstructure:"token_detail_forecast"`
}

type TokenCellConfig struct {
	Placeholder         string `mapstructure:"placeholder"`
	UnknownTradingLabel string `mapstructure:"unknown_trading_label"`
}

const (
	EnvPrefix = "TOKENBOARD"

	DefaultSnapshotPath        = "data/snapshot.json"
	DefaultLogPath             = "logs/tokenboard.log"
	DefaultFeedIntervalMs      = 2000
	DefaultFeedMaxRetryMs      = 10000
	DefaultPlaceholder         = "—"
	DefaultUnknownTradingLabel = "?"
)

// LoadConfig reads the config file at path, applies defaults and TOKENBOARD_*
// environment overrides, and validates the result. An empty path skips the
// file. Variables from a .env file in the working directory are loaded first
// without replacing ones already set.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	defaults := map[string]interface{}{
		"snapshot_path":                    DefaultSnapshotPath,
		"log_path":                         DefaultLogPath,
		"debug_logging":                    false,
		"feed.interval_ms":                 DefaultFeedIntervalMs,
		"feed.max_retry_ms":                DefaultFeedMaxRetryMs,
		"ui.show_forecast":                 false,
		"ui.token_detail_forecast":         true,
		"token_cell.placeholder":           DefaultPlaceholder,
		"token_cell.unknown_trading_label": DefaultUnknownTradingLabel,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.SnapshotPath) == "" {
		return errors.New("missing snapshot_path in configuration")
	}
	if strings.TrimSpace(cfg.LogPath) == "" {
		return errors.New("missing log_path in configuration")
	}
	if cfg.TokenCell.Placeholder == "" {
		return errors.New("token_cell.placeholder must not be empty")
	}
	return validateNumericParams(cfg)
}

func validateNumericParams(cfg *Config) error {
	if cfg.Feed.IntervalMs <= 0 {
		return errors.New("invalid feed.interval_ms")
	}
	if cfg.Feed.MaxRetryMs < 0 {
		return errors.New("invalid feed.max_retry_ms")
	}
	return nil
}
