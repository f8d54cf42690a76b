package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/logger"
)

const (
	BackendMemory  = "memory"
	BackendFixture = "fixture"
)

// Category maps a description pattern to one of the ledger categories.
type Category struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

type Config struct {
	File             string        `toml:"file"`
	Backend          string        `toml:"backend"`
	RejectDuplicates bool          `toml:"reject_duplicates"`
	MaxAmount        string        `toml:"max_amount"`
	Categories       []Category    `toml:"categories"`
	Logger           logger.Config `toml:"logger"`
}

const (
	defaultFile      = "expenses.csv"
	defaultBackend   = BackendMemory
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

func (c *Config) setDefaults() {
	if c.File == "" {
		c.File = defaultFile
	}
	if c.Backend == "" {
		c.Backend = defaultBackend
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}
	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}
	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}

func (c *Config) parseEnv() error {
	if file := os.Getenv("EXPENSELEDGER_FILE"); file != "" {
		c.File = file
	}

	if backend := os.Getenv("EXPENSELEDGER_BACKEND"); backend != "" {
		c.Backend = backend
	}

	if duplicates := os.Getenv("EXPENSELEDGER_DUPLICATES"); duplicates != "" {
		reject, err := strconv.ParseBool(duplicates)
		if err != nil {
			return fmt.Errorf("invalid EXPENSELEDGER_DUPLICATES value %q: %w", duplicates, err)
		}
		c.RejectDuplicates = reject
	}

	if level := os.Getenv("EXPENSELEDGER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSELEDGER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSELEDGER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendMemory, BackendFixture:
	default:
		return fmt.Errorf("unsupported backend %q, supported values are: %s, %s", c.Backend, BackendMemory, BackendFixture)
	}

	if _, _, err := c.MaxAmountValue(); err != nil {
		return err
	}

	return nil
}

// MaxAmountValue returns the configured amount ceiling. The boolean is false
// when no ceiling is set.
func (c *Config) MaxAmountValue() (decimal.Decimal, bool, error) {
	if c.MaxAmount == "" {
		return decimal.Zero, false, nil
	}

	max, err := decimal.NewFromString(c.MaxAmount)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid max_amount %q: %w", c.MaxAmount, err)
	}
	if max.IsNegative() {
		return decimal.Zero, false, fmt.Errorf("max_amount cannot be negative: %s", c.MaxAmount)
	}

	return max, true, nil
}

// Parse reads the TOML file at path, applies environment overrides and
// defaults. A missing file is not an error.
func Parse(path string) (*Config, error) {
	conf := &Config{}

	bytes, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err == nil {
		if err = toml.Unmarshal(bytes, conf); err != nil {
			return nil, fmt.Errorf("unable to decode %s: %w", path, err)
		}
	}

	if err = conf.parseEnv(); err != nil {
		return nil, err
	}

	conf.setDefaults()

	if err = conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}
