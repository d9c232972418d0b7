// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBTIME_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

// EnvWarning records an environment value that could not be applied.
type EnvWarning struct {
	// Name is the full variable name, prefix included.
	Name  string
	Value string
	Err   error
}

// envOverrides is the declarative table of all environment variable overrides.
// Unparseable values are recorded in AppConfig.EnvWarnings and the flag
// default stays in effect.
var envOverrides = []envOverride{
	// Numeric overrides
	{"N", []string{"n"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.N, c.HasN = parsed, true
		return nil
	}},
	{"MAX_N", []string{"max-n"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return err
		}
		c.MaxN, c.maxNSet = parsed, true
		return nil
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Timeout = parsed
		return nil
	}},

	// String overrides
	{"VARIANT", []string{"variant"}, func(c *AppConfig, v string) error {
		c.Variant = v
		return nil
	}},
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) error {
		c.Algo = v
		return nil
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) error {
		c.LogLevel = v
		return nil
	}},
	{"LOG_FORMAT", []string{"log-format"}, func(c *AppConfig, v string) error {
		c.LogFormat = v
		return nil
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},

	// Boolean overrides
	{"NO_LIMIT", []string{"no-limit"}, boolOverride(func(c *AppConfig) *bool { return &c.NoLimit })},
	{"QUIET", []string{"quiet", "q"}, boolOverride(func(c *AppConfig) *bool { return &c.Quiet })},
	{"DETAILS", []string{"details", "d"}, boolOverride(func(c *AppConfig) *bool { return &c.Details })},
}

func boolOverride(field func(*AppConfig) *bool) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		parsed, err := parseBoolEnv(v)
		if err != nil {
			return err
		}
		*field(c) = parsed
		return nil
	}
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func parseBoolEnv(val string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", val)
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with FIBTIME_):
//   - N, MAX_N, TIMEOUT, VARIANT, ALGO, LOG_LEVEL, LOG_FORMAT, METRICS_FILE,
//     NO_LIMIT, QUIET, DETAILS
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		name := EnvPrefix + o.envKey
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if err := o.apply(config, val); err != nil {
			config.EnvWarnings = append(config.EnvWarnings, EnvWarning{Name: name, Value: val, Err: err})
		}
	}
}
