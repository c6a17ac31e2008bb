package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/wordle-solver/internal/logging"
	"github.com/danielpatrickdp/wordle-solver/internal/strategy"
	"github.com/danielpatrickdp/wordle-solver/internal/word"
)

// #region types

// Config is the complete runtime configuration.
type Config struct {
	AllowedWords  string            `yaml:"allowed_words"`
	PossibleWords string            `yaml:"possible_words"`
	MaxAttempts   int               `yaml:"max_attempts"`
	MaxRejections int               `yaml:"max_rejections"`
	Strategy      string            `yaml:"strategy"`
	Openings      map[string]string `yaml:"openings"`
	DBPath        string            `yaml:"db_path"`
	Seed          uint64            `yaml:"seed"`
	Eval          EvalConfig        `yaml:"eval"`
	Server        ServerConfig      `yaml:"server"`
	Log           LogConfig         `yaml:"log"`
}

// EvalConfig configures evaluation runs.
type EvalConfig struct {
	Concurrency        int     `yaml:"concurrency"`
	OutputDir          string  `yaml:"output_dir"`
	Limit              int     `yaml:"limit"`
	MinSuccessRate     float64 `yaml:"min_success_rate"`
	MaxAverageAttempts float64 `yaml:"max_average_attempts"`
}

// ServerConfig configures the gRPC and metrics listeners.
type ServerConfig struct {
	GRPCAddr    string `yaml:"grpc_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// #endregion

// #region defaults

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		AllowedWords:  "data/allowed_words.txt",
		PossibleWords: "data/possible_words.txt",
		MaxAttempts:   6,
		MaxRejections: 3,
		Strategy:      string(strategy.Entropy),
		DBPath:        "wordle.db",
		Eval: EvalConfig{
			Concurrency:        4,
			OutputDir:          "output",
			MinSuccessRate:     95,
			MaxAverageAttempts: 4.5,
		},
		Server: ServerConfig{
			GRPCAddr:    "localhost:50061",
			MetricsAddr: ":9108",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// #endregion

// #region load

// Load reads a YAML file over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DBPath = envOr("WORDLE_DB", c.DBPath)
	c.Server.GRPCAddr = envOr("WORDLE_GRPC_ADDR", c.Server.GRPCAddr)
	c.Server.MetricsAddr = envOr("WORDLE_METRICS_ADDR", c.Server.MetricsAddr)
	c.Strategy = envOr("WORDLE_STRATEGY", c.Strategy)
}

// #endregion

// #region validate

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.AllowedWords == "" {
		errs = append(errs, errors.New("allowed_words is required"))
	}
	if c.PossibleWords == "" {
		errs = append(errs, errors.New("possible_words is required"))
	}
	if c.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max_attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.MaxRejections <= 0 {
		errs = append(errs, fmt.Errorf("max_rejections must be positive, got %d", c.MaxRejections))
	}
	if _, err := strategy.ParseID(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	for name, w := range c.Openings {
		if _, err := strategy.ParseID(name); err != nil {
			errs = append(errs, fmt.Errorf("openings: %w", err))
		}
		if _, err := word.Parse(w); err != nil {
			errs = append(errs, fmt.Errorf("openings.%s: %w", name, err))
		}
	}
	if c.Eval.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("eval.concurrency must be positive, got %d", c.Eval.Concurrency))
	}
	if c.Eval.Limit < 0 {
		errs = append(errs, fmt.Errorf("eval.limit must not be negative, got %d", c.Eval.Limit))
	}
	if _, err := logging.New(c.Log.Level, c.Log.Format, os.Stderr); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// #endregion

// #region accessors

// StrategyID returns the configured default strategy.
func (c Config) StrategyID() strategy.ID {
	id, _ := strategy.ParseID(c.Strategy)
	return id
}

// Opening returns the configured opening for id, or "" for the built-in default.
func (c Config) Opening(id strategy.ID) word.Word {
	for name, w := range c.Openings {
		if strings.EqualFold(name, string(id)) {
			return word.Word(strings.ToLower(strings.TrimSpace(w)))
		}
	}
	return ""
}

// #endregion

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
