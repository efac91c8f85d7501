package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sistemasactivos/ledger/internal/accounts"
)

// FileName is the default config file name inside a ledger directory.
const FileName = "ledger.yaml"

// Config represents the top-level ledger.yaml configuration.
type Config struct {
	Bank     BankConfig      `yaml:"bank"`
	Accounts []AccountConfig `yaml:"accounts,omitempty" validate:"dive"`
	Log      LogConfig       `yaml:"log"`
}

// BankConfig identifies the bank.
type BankConfig struct {
	Name string `yaml:"name" env:"LEDGER_BANK_NAME" validate:"required"`
}

// AccountConfig seeds one account. Balances are decoded as exact decimals.
type AccountConfig struct {
	Name    string          `yaml:"name" validate:"required"`
	Balance decimal.Decimal `yaml:"balance"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEDGER_LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" env:"LEDGER_LOG_FORMAT" validate:"omitempty,oneof=json console"`
}

var validate = validator.New()

// Load reads a ledger.yaml file from disk and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields that have a matching LEDGER_* variable set.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(&cfg.Bank); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Validate checks required fields and that no seed balance is negative.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var errs []error
	for _, a := range c.Accounts {
		if a.Balance.IsNegative() {
			errs = append(errs, fmt.Errorf("account %q: balance %s is negative", a.Name, a.Balance))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Seeds converts the configured accounts for accounts.Open.
func (c *Config) Seeds() []accounts.Seed {
	seeds := make([]accounts.Seed, len(c.Accounts))
	for i, a := range c.Accounts {
		seeds[i] = accounts.Seed{Name: a.Name, Balance: a.Balance}
	}
	return seeds
}

// Default returns a Config for a new ledger seeded with the sample accounts.
func Default(bankName string) *Config {
	cfg := &Config{
		Bank: BankConfig{Name: bankName},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
	for _, s := range accounts.DefaultSeeds() {
		cfg.Accounts = append(cfg.Accounts, AccountConfig{Name: s.Name, Balance: s.Balance})
	}
	return cfg
}
