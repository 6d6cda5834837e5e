package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/networth/internal/month"
)

// FileName is the project configuration file at the repo root.
const FileName = "networth.yaml"

// Config represents the top-level networth.yaml configuration.
type Config struct {
	Name   string       `yaml:"name"`
	Report ReportConfig `yaml:"report"`
	Data   DataConfig   `yaml:"data"`
}

// ReportConfig holds the persisted report toggles and filters.
type ReportConfig struct {
	Locale         string   `yaml:"locale"`
	Currency       string   `yaml:"currency"`
	Exclude        []string `yaml:"exclude,omitempty"`
	From           string   `yaml:"from,omitempty"` // "YYYY-MM"
	To             string   `yaml:"to,omitempty"`   // "YYYY-MM"
	FlipDebt       bool     `yaml:"flip_debt"`
	SplitByAccount bool     `yaml:"split_by_account"`
	Palette        []string `yaml:"palette,omitempty"`
}

// DataConfig locates the account catalog and ledger inside the repo.
type DataConfig struct {
	Accounts string `yaml:"accounts"`
	Ledger   string `yaml:"ledger"`
}

// Environment variables that override the file.
const (
	EnvLocale   = "NETWORTH_LOCALE"
	EnvCurrency = "NETWORTH_CURRENCY"
	EnvExclude  = "NETWORTH_EXCLUDE" // comma-separated account IDs
)

// Load reads a networth.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
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

// Default returns a Config with sensible defaults for a new project.
func Default(name string) *Config {
	return &Config{
		Name: name,
		Report: ReportConfig{
			Locale:   "en-US",
			Currency: "USD",
			Palette: []string{
				"#ea6a51", "#8ed0df", "#f3b54a", "#6fbf73", "#9b7ede",
				"#f08bb5", "#4a90d9", "#c7a17a", "#7bc5ae", "#b0b0b0",
			},
		},
		Data: DataConfig{
			Accounts: "accounts/accounts.csv",
			Ledger:   "ledger",
		},
	}
}

// Validate checks the fields that cannot be defaulted at report time.
func (c *Config) Validate() error {
	var errs []error
	if c.Report.From != "" {
		if _, err := month.Parse(c.Report.From); err != nil {
			errs = append(errs, fmt.Errorf("report.from: %w", err))
		}
	}
	if c.Report.To != "" {
		if _, err := month.Parse(c.Report.To); err != nil {
			errs = append(errs, fmt.Errorf("report.to: %w", err))
		}
	}
	if c.Data.Accounts == "" {
		errs = append(errs, errors.New("data.accounts: must not be empty"))
	}
	if c.Data.Ledger == "" {
		errs = append(errs, errors.New("data.ledger: must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ReadEnvFile loads KEY=VALUE pairs from a dotenv file. A missing file is
// not an error.
func ReadEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return env, nil
}

// ApplyEnv overrides report settings from the environment. Values from the
// process environment win over values from the dotenv file.
func (c *Config) ApplyEnv(dotenv map[string]string) {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvLocale); ok && v != "" {
		c.Report.Locale = v
	}
	if v, ok := lookup(EnvCurrency); ok && v != "" {
		c.Report.Currency = strings.ToUpper(v)
	}
	if v, ok := lookup(EnvExclude); ok {
		c.Report.Exclude = splitList(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
