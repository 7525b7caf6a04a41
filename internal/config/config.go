package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Tickers []string `yaml:"tickers"`
	Output  struct {
		ExcelPath string `yaml:"excel_path"`
		CSVPath   string `yaml:"csv_path"`
	} `yaml:"output"`
	Analysis struct {
		MarginPct  float64 `yaml:"margin_pct"`
		WindowDays int     `yaml:"window_days"`
	} `yaml:"analysis"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("PUTSCAN_TICKERS"); v != "" {
		cfg.Tickers = cfg.Tickers[:0]
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Tickers = append(cfg.Tickers, t)
			}
		}
	}
	if v := os.Getenv("PUTSCAN_OUTPUT"); v != "" {
		cfg.Output.ExcelPath = v
	}
	if v := os.Getenv("DATASOURCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATASOURCE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("PUTSCAN_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"AAPL", "MSFT", "GOOG"}
	}
	if cfg.Output.ExcelPath == "" {
		cfg.Output.ExcelPath = "putscan_report.xlsx"
	}
	if cfg.Analysis.MarginPct == 0 {
		cfg.Analysis.MarginPct = 0.15
	}
	if cfg.Analysis.WindowDays == 0 {
		cfg.Analysis.WindowDays = 252
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers list is empty")
	}
	if c.Analysis.MarginPct <= 0 || c.Analysis.MarginPct > 1 {
		return fmt.Errorf("analysis.margin_pct must be in (0, 1], got %.4f", c.Analysis.MarginPct)
	}
	if c.Analysis.WindowDays <= 0 {
		return fmt.Errorf("analysis.window_days must be positive")
	}
	if c.Output.ExcelPath == "" {
		return fmt.Errorf("output.excel_path is required")
	}
	return nil
}
