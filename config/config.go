package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/tradecalc/market"
	"github.com/rustyeddy/tradecalc/risk"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tradecalc configuration
type Config struct {
	Account AccountConfig      `json:"account" yaml:"account"`
	Risk    RiskConfig         `json:"risk" yaml:"risk"`
	Rates   map[string]float64 `json:"rates,omitempty" yaml:"rates,omitempty"`
	Journal JournalConfig      `json:"journal" yaml:"journal"`
	Log     LogConfig          `json:"log" yaml:"log"`
}

// AccountConfig describes the trading account results are reported in
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// RiskConfig holds defaults and limits for trade planning. Percentages
// are whole numbers: 2 means 2%.
type RiskConfig struct {
	DefaultPercent float64 `json:"default_percent" yaml:"default_percent"`
	MaxPercent     float64 `json:"max_percent,omitempty" yaml:"max_percent,omitempty"`
	MinRR          float64 `json:"min_rr,omitempty" yaml:"min_rr,omitempty"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig selects the zap level and encoder
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "console" or "json"
}

// LoadFromFile loads configuration from a file. The content is parsed as
// YAML first and as JSON if that fails; the extension is ignored.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func (c *Config) normalize() {
	c.Account.Currency = strings.ToUpper(strings.TrimSpace(c.Account.Currency))
	if len(c.Rates) == 0 {
		return
	}
	rates := make(map[string]float64, len(c.Rates))
	for k, v := range c.Rates {
		rates[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	c.Rates = rates
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Risk.DefaultPercent <= 0 || c.Risk.DefaultPercent > 100 {
		return fmt.Errorf("risk.default_percent must be greater than 0 and at most 100")
	}
	if c.Risk.MaxPercent < 0 || c.Risk.MaxPercent > 100 {
		return fmt.Errorf("risk.max_percent must be between 0 and 100")
	}
	if c.Risk.MinRR < 0 {
		return fmt.Errorf("risk.min_rr must not be negative")
	}
	for cur, r := range c.Rates {
		if r <= 0 {
			return fmt.Errorf("rates.%s must be positive", cur)
		}
	}
	if c.Journal.Type != "csv" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Type == "csv" && c.Journal.TradesFile == "" {
		return fmt.Errorf("journal trades_file required for CSV type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required for SQLite type")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'console' or 'json'")
	}
	return nil
}

// MarketRates returns the configured conversion table.
func (c *Config) MarketRates() market.Rates {
	return market.Rates(c.Rates)
}

// Policy returns the risk limits applied to planned trades.
func (c *Config) Policy() risk.Policy {
	return risk.Policy{MaxRiskPct: c.Risk.MaxPercent, MinRR: c.Risk.MinRR}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Balance:  10000,
		},
		Risk: RiskConfig{
			DefaultPercent: 1,
			MaxPercent:     2,
			MinRR:          1.5,
		},
		Rates: map[string]float64{
			"EUR": 1.08,
			"GBP": 1.27,
			"JPY": 0.0067,
			"CAD": 0.73,
			"CHF": 1.12,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./tradecalc.sqlite",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
