package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vocdoni/davinci-kzg/log"
)

const (
	defaultDegree    = 64
	defaultPoints    = 4
	defaultWorkers   = 0
	defaultRuns      = 1
	defaultLogLevel  = "info"
	defaultLogOutput = "stdout"
	envPrefix        = "KZG"
)

// Version is the build version, set at build time with -ldflags
var Version = "dev"

// Config holds the application configuration
type Config struct {
	Degree  int       `mapstructure:"degree"`
	Points  int       `mapstructure:"points"`
	Workers int       `mapstructure:"workers"`
	Runs    int       `mapstructure:"runs"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig(args []string) (*Config, error) {
	v := viper.New()

	v.SetDefault("degree", defaultDegree)
	v.SetDefault("points", defaultPoints)
	v.SetDefault("workers", defaultWorkers)
	v.SetDefault("runs", defaultRuns)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	flags := flag.NewFlagSet("kzg-prover", flag.ContinueOnError)
	flags.IntP("degree", "d", defaultDegree, "degree of the random polynomials to commit to")
	flags.IntP("points", "k", defaultPoints, "number of points opened by the multi-point proof (lower than degree)")
	flags.IntP("workers", "w", defaultWorkers, "goroutines used to generate the trusted setup (0 for one per CPU)")
	flags.IntP("runs", "r", defaultRuns, "number of prove and verify rounds, reusing the trusted setup")
	flags.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "kzg-prover v%s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: kzg-prover [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, KZG_DEGREE or KZG_LOG_LEVEL\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Open a degree 1023 polynomial at 16 points, three times\n")
		fmt.Fprintf(os.Stderr, "  kzg-prover --degree=1023 --points=16 --runs=3\n")
	}

	flags.SortFlags = false
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if cfg.Degree < 2 {
		return fmt.Errorf("degree must be at least 2, got %d", cfg.Degree)
	}
	if cfg.Points < 1 || cfg.Points >= cfg.Degree {
		return fmt.Errorf("points must be between 1 and degree-1 (%d), got %d", cfg.Degree-1, cfg.Points)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", cfg.Workers)
	}
	if cfg.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", cfg.Runs)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	return nil
}
