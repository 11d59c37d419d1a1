package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/validation"
	"github.com/shopspring/decimal"
)

const AppName = "tally"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Posting    PostingConfig  `mapstructure:"posting"`
	Fx         FxConfig       `mapstructure:"fx"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	UserID       int64  `mapstructure:"user_id"`
	HomeCurrency string `mapstructure:"home_currency"`
}

type PostingConfig struct {
	// BalanceTolerance is a decimal string, e.g. "0.000001".
	BalanceTolerance string `mapstructure:"balance_tolerance"`
}

type FxConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{UserID: 1, HomeCurrency: "USD"},
		Posting:  PostingConfig{BalanceTolerance: "0.000001"},
		Fx:       FxConfig{CacheTTL: 5 * time.Minute},
		Log:      LogConfig{Level: "warn", Format: logger.FormatConsole},
	}
}

// Validate rejects settings the engine cannot run with.
func (c *Config) Validate() error {
	tol, err := c.Tolerance()
	if err != nil {
		return err
	}
	if !tol.IsPositive() {
		return fmt.Errorf("posting.balance_tolerance must be positive, got %s", tol)
	}

	if _, err := validation.NormalizeCurrency(c.Defaults.HomeCurrency); err != nil {
		return fmt.Errorf("defaults.home_currency: %w", err)
	}

	if c.Fx.CacheTTL < 0 {
		return fmt.Errorf("fx.cache_ttl must not be negative, got %s", c.Fx.CacheTTL)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}

	return nil
}

// Tolerance parses posting.balance_tolerance.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	tol, err := decimal.NewFromString(strings.TrimSpace(c.Posting.BalanceTolerance))
	if err != nil {
		return decimal.Zero, fmt.Errorf("posting.balance_tolerance %q is not a number: %w", c.Posting.BalanceTolerance, err)
	}
	return tol, nil
}

// DatabasePath is the configured path, or tally.db under the app data dir.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return ExpandPath(c.Database.Path)
	}
	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, AppName+".db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+AppName), nil
	}

	return filepath.Join(configDir, AppName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
