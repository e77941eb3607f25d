// Package config handles configuration loading and validation.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds pooladdr command configuration.
type Config struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json or text

	// Derivation request. Either Exchange or Factory+InitCodeHash is set.
	Exchange     string
	Factory      string
	InitCodeHash string // 32 byte hash, or full init code to be hashed
	TokenA       string
	TokenB       string

	// List prints the registered exchanges instead of deriving.
	List bool
}

// Defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Load reads configuration from environment variables and args.
// Flags take precedence over environment variables.
func Load(args []string) (*Config, error) {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}

	// Load from environment variables first
	if v := os.Getenv("POOLADDR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("POOLADDR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	fs := flag.NewFlagSet("pooladdr", flag.ContinueOnError)
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, text)")
	fs.StringVar(&cfg.Exchange, "exchange", "", "Registered exchange name, e.g. pancake")
	fs.StringVar(&cfg.Factory, "factory", "", "Factory address for multi-chain derivation")
	fs.StringVar(&cfg.InitCodeHash, "init-code-hash", "", "Pair creation code hash (or full init code)")
	fs.StringVar(&cfg.TokenA, "token-a", "", "First token address")
	fs.StringVar(&cfg.TokenB, "token-b", "", "Second token address")
	fs.BoolVar(&cfg.List, "list", false, "List registered exchanges and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
		// valid
	default:
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}

	if c.List {
		return nil
	}

	if c.Exchange != "" && (c.Factory != "" || c.InitCodeHash != "") {
		return fmt.Errorf("exchange cannot be combined with factory or init code hash")
	}
	if c.Exchange == "" {
		if c.Factory == "" || c.InitCodeHash == "" {
			return fmt.Errorf("either exchange or both factory and init code hash are required")
		}
	}
	if c.TokenA == "" || c.TokenB == "" {
		return fmt.Errorf("both token addresses are required")
	}
	return nil
}

// MultiChain reports whether the request names a factory directly.
func (c *Config) MultiChain() bool {
	return c.Exchange == ""
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return level, nil
}
