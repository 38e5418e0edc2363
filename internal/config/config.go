// Package config loads the YAML-with-env-override runtime configuration
// that drives a scheduling run: which options the dependence graph and
// scheduler use, plus the platform timing model they run against.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/uJhin/qsched/internal/sched"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk/env-overridable configuration for a qsched run.
type Config struct {
	// Commute enables the commutation-aware arc elision of spec §4.2
	// (scheduler_commute).
	Commute bool `yaml:"scheduler_commute" env:"QSCHED_COMMUTE"`

	// Uniform selects the bundle-balancing pass over plain list
	// scheduling (scheduler_uniform).
	Uniform bool `yaml:"scheduler_uniform" env:"QSCHED_UNIFORM"`

	// PrintDotGraphs enables the DOT dump of the dependence graph
	// (print_dot_graphs).
	PrintDotGraphs bool `yaml:"print_dot_graphs" env:"QSCHED_PRINT_DOT_GRAPHS"`

	// ExperimentalControlUnitaries enables the experimental multi-qubit
	// controlled-unitary access rule.
	ExperimentalControlUnitaries bool `yaml:"experimental_control_unitaries" env:"QSCHED_EXPERIMENTAL_CONTROL_UNITARIES"`

	// CycleTime is the platform's cycle duration divisor used to turn a
	// gate's duration into an arc weight.
	CycleTime int `yaml:"cycle_time" env:"QSCHED_CYCLE_TIME"`

	// Verbose raises the logger's level to debug.
	Verbose bool `yaml:"verbose" env:"QSCHED_VERBOSE"`
}

// Default returns a Config mirroring sched.DefaultConfig, plus the
// ambient defaults (a 1ns cycle time, non-verbose logging).
func Default() *Config {
	sc := sched.DefaultConfig()
	return &Config{
		Commute:                      sc.Commute,
		Uniform:                      sc.Uniform,
		PrintDotGraphs:               sc.PrintDotGraphs,
		ExperimentalControlUnitaries: sc.ExperimentalControlUnitaries,
		CycleTime:                    1,
		Verbose:                      false,
	}
}

// Load reads cfg from a YAML file at path (if it exists) layered over
// Default, then applies any QSCHED_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := envBool("QSCHED_COMMUTE"); ok {
		cfg.Commute = v
	}
	if v, ok := envBool("QSCHED_UNIFORM"); ok {
		cfg.Uniform = v
	}
	if v, ok := envBool("QSCHED_PRINT_DOT_GRAPHS"); ok {
		cfg.PrintDotGraphs = v
	}
	if v, ok := envBool("QSCHED_EXPERIMENTAL_CONTROL_UNITARIES"); ok {
		cfg.ExperimentalControlUnitaries = v
	}
	if v, ok := envBool("QSCHED_VERBOSE"); ok {
		cfg.Verbose = v
	}
	if raw := os.Getenv("QSCHED_CYCLE_TIME"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.CycleTime = n
		}
	}
}

func envBool(name string) (bool, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return false, false
	}
	return raw == "1" || raw == "true" || raw == "yes", true
}

// Validate rejects configurations that would make the scheduler's
// arc-weight formula meaningless.
func (c *Config) Validate() error {
	if c.CycleTime <= 0 {
		return fmt.Errorf("config: cycle_time must be positive, got %d", c.CycleTime)
	}
	return nil
}

// SchedConfig projects Config's scheduler-relevant fields into a
// sched.Config.
func (c *Config) SchedConfig() sched.Config {
	return sched.Config{
		Commute:                      c.Commute,
		Uniform:                      c.Uniform,
		PrintDotGraphs:               c.PrintDotGraphs,
		ExperimentalControlUnitaries: c.ExperimentalControlUnitaries,
	}
}
