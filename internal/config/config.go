package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockCompass/internal/decision"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		Symbol       string `yaml:"symbol"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
		ScanCron  string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Scan struct {
		LookbackDays int `yaml:"lookback_days"`
	} `yaml:"scan"`
	Decision decision.Config `yaml:"decision"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Decision = decision.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BARS_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BARS_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.LookbackDays = days
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "005930.KS"
	}
	if cfg.DataSource.LookbackDays == 0 {
		// Two years gives a full 12-month momentum window plus warm-up.
		cfg.DataSource.LookbackDays = 730
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 0 8 * * 1"
	}
	if cfg.Scan.LookbackDays == 0 {
		cfg.Scan.LookbackDays = 365
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockcompass.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.LookbackDays < 30 {
		return fmt.Errorf("data_source.lookback_days must be at least 30")
	}
	if c.Decision.MomentumWeight < 0 {
		return fmt.Errorf("decision.momentum_weight must not be negative")
	}
	return nil
}
