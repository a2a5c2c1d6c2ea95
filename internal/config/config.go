// Package config provides dsakit settings: built-in defaults, an optional JSON
// file, and DSAKIT_* environment overrides. Command-line flags are applied on
// top by the cli package.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Bounds accepted by Validate.
const (
	MaxTreeLevels = 5
	MaxDiscs      = 9
)

// FileName is the config file looked up in the home directory.
const FileName = ".dsakit.json"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid setting")

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TreeConfig configures the fixed-shape tree.
type TreeConfig struct {
	Levels int `json:"levels"`
	Range
}

// HanoiConfig configures the puzzle and the auto-solve pace.
type HanoiConfig struct {
	Discs   int `json:"discs"`
	DelayMS int `json:"delayMs"`
}

// Delay returns the pause between auto-solve moves.
func (h HanoiConfig) Delay() time.Duration {
	return time.Duration(h.DelayMS) * time.Millisecond
}

// Config holds every dsakit setting.
type Config struct {
	Tree     TreeConfig  `json:"tree"`
	BST      Range       `json:"bst"`
	Capacity int         `json:"capacity"`
	Hanoi    HanoiConfig `json:"hanoi"`
	LogFile  string      `json:"logFile,omitempty"`
	Debug    bool        `json:"debug,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Tree:     TreeConfig{Levels: 3, Range: Range{Min: 1, Max: 99}},
		BST:      Range{Min: 1, Max: 99},
		Capacity: 10,
		Hanoi:    HanoiConfig{Discs: 3, DelayMS: 400},
	}
}

// Load returns the defaults overlaid with the config file (DSAKIT_CONFIG or
// ~/.dsakit.json) and then the environment.
func Load() (*Config, error) {
	path := os.Getenv("DSAKIT_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, FileName)
		}
	}

	return LoadFrom(path, os.Getenv)
}

// LoadFrom is Load with an explicit file path and environment lookup.
// A missing file is not an error.
func LoadFrom(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"DSAKIT_TREE_LEVELS", &c.Tree.Levels},
		{"DSAKIT_TREE_MIN", &c.Tree.Min},
		{"DSAKIT_TREE_MAX", &c.Tree.Max},
		{"DSAKIT_BST_MIN", &c.BST.Min},
		{"DSAKIT_BST_MAX", &c.BST.Max},
		{"DSAKIT_CAPACITY", &c.Capacity},
		{"DSAKIT_DISCS", &c.Hanoi.Discs},
	}
	for _, e := range ints {
		s := getenv(e.key)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", e.key, s, err)
		}
		*e.dst = v
	}

	if s := getenv("DSAKIT_DELAY"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("failed to parse DSAKIT_DELAY=%q: %w", s, err)
		}
		c.Hanoi.DelayMS = int(d / time.Millisecond)
	}
	if s := getenv("DSAKIT_LOG_FILE"); s != "" {
		c.LogFile = s
	}
	if getenv("DSAKIT_DEBUG") != "" {
		c.Debug = true
	}

	return nil
}

// Validate checks the setup bounds and reports every violation at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Tree.Validate(),
		c.BST.Validate("bst"),
		ValidateCapacity(c.Capacity),
		c.Hanoi.Validate(),
	)
}

// Validate checks the depth and the value range.
func (t TreeConfig) Validate() error {
	var err error
	if t.Levels < 1 || t.Levels > MaxTreeLevels {
		err = fmt.Errorf("%w: tree levels %d not in [1, %d]", ErrInvalid, t.Levels, MaxTreeLevels)
	}

	return errors.Join(err, t.Range.Validate("tree"))
}

// Validate checks the disc count and the delay.
func (h HanoiConfig) Validate() error {
	var errs []error
	if h.Discs < 1 || h.Discs > MaxDiscs {
		errs = append(errs, fmt.Errorf("%w: discs %d not in [1, %d]", ErrInvalid, h.Discs, MaxDiscs))
	}
	if h.DelayMS < 0 {
		errs = append(errs, fmt.Errorf("%w: delay must not be negative", ErrInvalid))
	}

	return errors.Join(errs...)
}

// ValidateCapacity requires a positive garage capacity.
func ValidateCapacity(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: capacity %d must be positive", ErrInvalid, n)
	}

	return nil
}

// Validate requires Min < Max; name prefixes the error.
func (r Range) Validate(name string) error {
	if r.Min >= r.Max {
		return fmt.Errorf("%w: %s min %d must be less than max %d", ErrInvalid, name, r.Min, r.Max)
	}

	return nil
}
