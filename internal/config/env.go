// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
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
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the RECIPSUM_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped by value type.
var envOverrides = []envOverride{
	// Numeric overrides
	{"SIZE", []string{"size"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}},
	{"TASKS", []string{"tasks"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.NumTasks = parsed
		}
	}},
	{"THRESHOLD", []string{"threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Threshold = parsed
		}
	}},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) {
		c.Algo = v
	}},
	{"DIST", []string{"dist"}, func(c *AppConfig, v string) {
		c.Dist = v
	}},
	{"INPUT", []string{"input"}, func(c *AppConfig, v string) {
		c.InputFile = v
	}},
	{"OUTPUT", []string{"output"}, func(c *AppConfig, v string) {
		c.OutputFile = v
	}},
	{"ADDR", []string{"addr"}, func(c *AppConfig, v string) {
		c.Addr = v
	}},
	{"FILE_ROOT", []string{"file-root"}, func(c *AppConfig, v string) {
		c.FileRoot = v
	}},

	// Boolean overrides
	{"ADAPTIVE", []string{"adaptive"}, func(c *AppConfig, v string) {
		c.Adaptive = parseBoolEnv(v, c.Adaptive)
	}},
	{"STRICT", []string{"strict"}, func(c *AppConfig, v string) {
		c.Strict = parseBoolEnv(v, c.Strict)
	}},
	{"SERVE", []string{"serve"}, func(c *AppConfig, v string) {
		c.Serve = parseBoolEnv(v, c.Serve)
	}},
	{"VERBOSE", []string{"v"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with RECIPSUM_):
//   - SIZE, TASKS, THRESHOLD, WORKERS, SEED, TIMEOUT, ALGO, DIST, INPUT,
//     OUTPUT, ADDR, FILE_ROOT, ADAPTIVE, STRICT, SERVE, VERBOSE, QUIET
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
