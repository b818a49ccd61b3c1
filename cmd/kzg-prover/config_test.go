package main

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/davinci-kzg/crypto/trustedsetup"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := qt.New(t)

	cfg, err := loadConfig(nil)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Degree, qt.Equals, defaultDegree)
	c.Assert(cfg.Points, qt.Equals, defaultPoints)
	c.Assert(cfg.Runs, qt.Equals, defaultRuns)
	c.Assert(cfg.Log.Level, qt.Equals, defaultLogLevel)
	c.Assert(validateConfig(cfg), qt.IsNil)
}

func TestLoadConfigFlagsAndEnv(t *testing.T) {
	c := qt.New(t)

	t.Setenv("KZG_DEGREE", "100")
	t.Setenv("KZG_LOG_LEVEL", "debug")
	cfg, err := loadConfig([]string{"-k", "7", "--runs=3"})
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Degree, qt.Equals, 100)
	c.Assert(cfg.Points, qt.Equals, 7)
	c.Assert(cfg.Runs, qt.Equals, 3)
	c.Assert(cfg.Log.Level, qt.Equals, "debug")

	_, err = loadConfig([]string{"--unknown"})
	c.Assert(err, qt.IsNotNil)
}

func TestValidateConfig(t *testing.T) {
	c := qt.New(t)

	valid := Config{Degree: 8, Points: 3, Runs: 1, Log: LogConfig{Level: "info"}}
	c.Assert(validateConfig(&valid), qt.IsNil)

	for name, mutate := range map[string]func(*Config){
		"degree too low":   func(cfg *Config) { cfg.Degree = 1 },
		"no points":        func(cfg *Config) { cfg.Points = 0 },
		"too many points":  func(cfg *Config) { cfg.Points = 8 },
		"negative workers": func(cfg *Config) { cfg.Workers = -1 },
		"no runs":          func(cfg *Config) { cfg.Runs = 0 },
		"bad log level":    func(cfg *Config) { cfg.Log.Level = "verbose" },
	} {
		cfg := valid
		mutate(&cfg)
		c.Assert(validateConfig(&cfg), qt.IsNotNil, qt.Commentf("%s", name))
	}
}

func TestRunRound(t *testing.T) {
	c := qt.New(t)

	cfg := &Config{Degree: 12, Points: 3, Runs: 1}
	setup, err := trustedsetup.Generate(cfg.Degree, cfg.Points)
	c.Assert(err, qt.IsNil)
	c.Assert(runRound(setup, cfg), qt.IsNil)
}
