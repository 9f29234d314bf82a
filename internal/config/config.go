package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Dataset     DatasetConfig     `yaml:"dataset"`
	Events      EventsConfig      `yaml:"events"`
	Assumptions AssumptionsConfig `yaml:"assumptions"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type DatasetConfig struct {
	Source string `yaml:"source"` // csv, postgres, sqlite
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
	Table  string `yaml:"table"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

// AssumptionsConfig are the default financial assumptions applied when a
// request omits them. Ratios are fractions.
type AssumptionsConfig struct {
	InterestRate      float64 `yaml:"interest_rate"`
	LoanTermYears     int     `yaml:"loan_term_years"`
	DownPaymentPct    float64 `yaml:"down_payment_pct"`
	STRExpenseRatio   float64 `yaml:"str_expense_ratio"`
	LTRExpenseRatio   float64 `yaml:"ltr_expense_ratio"`
	RenovationBuffer  float64 `yaml:"renovation_buffer"`
	IncludeRenovation bool    `yaml:"include_renovation"`
	MaxInvestment     float64 `yaml:"max_investment"`
}

type ScoringConfig struct {
	Preset string `yaml:"preset"`
	TopN   int    `yaml:"top_n"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Buffer returns the renovation buffer honoring the toggle.
func (a AssumptionsConfig) Buffer() float64 {
	if !a.IncludeRenovation {
		return 0
	}
	return a.RenovationBuffer
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Dataset: DatasetConfig{
			Source: "csv",
			Path:   "data/master_score_sheet.csv",
			Table:  "markets",
		},
		Assumptions: AssumptionsConfig{
			InterestRate:      0.07,
			LoanTermYears:     30,
			DownPaymentPct:    0.20,
			STRExpenseRatio:   0.30,
			LTRExpenseRatio:   0.40,
			RenovationBuffer:  30000,
			IncludeRenovation: true,
			MaxInvestment:     100000,
		},
		Scoring: ScoringConfig{
			Preset: "balanced",
			TopN:   10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MARKETSCORE_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("MARKETSCORE_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("MARKETSCORE_DATASET_SOURCE"); v != "" {
		cfg.Dataset.Source = v
	}
	if v := os.Getenv("MARKETSCORE_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("MARKETSCORE_DATASET_URL"); v != "" {
		cfg.Dataset.URL = v
	}
	if v := os.Getenv("MARKETSCORE_DATASET_TABLE"); v != "" {
		cfg.Dataset.Table = v
	}
	if v := os.Getenv("MARKETSCORE_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("MARKETSCORE_PRESET"); v != "" {
		cfg.Scoring.Preset = v
	}
	if v := os.Getenv("MARKETSCORE_MAX_INVESTMENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Assumptions.MaxInvestment = f
		}
	}
	if v := os.Getenv("MARKETSCORE_INCLUDE_RENOVATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Assumptions.IncludeRenovation = b
		}
	}
	if v := os.Getenv("MARKETSCORE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
