// Package config provides YAML configuration for pillrow
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/pill"
)

var (
	// ErrNegativeDebounce is returned when layout.debounce is below zero.
	ErrNegativeDebounce = errors.New("config: layout.debounce must not be negative")
	// ErrNoPills is returned when the configuration yields no pills at all.
	ErrNoPills = errors.New("config: no pills configured")
)

// Config represents the pillrow configuration
type Config struct {
	Layout  LayoutConfig  `yaml:"layout"`
	Display DisplayConfig `yaml:"display"`
	Pills   []pill.Pill   `yaml:"pills"`
	Sources []string      `yaml:"sources"` // doublestar globs of pill files
	Log     LogConfig     `yaml:"log"`
	State   StateConfig   `yaml:"state"`

	// Path is the file the configuration was loaded from, empty for defaults.
	Path string `yaml:"-"`
}

// LayoutConfig controls the layout planner and resize handling
type LayoutConfig struct {
	BinPacking bool          `yaml:"binPacking"`
	Debounce   time.Duration `yaml:"debounce"`
}

// DisplayConfig controls what is displayed and how
type DisplayConfig struct {
	Decoration string   `yaml:"decoration"` // glyph shown on toggled pills
	Show       []string `yaml:"show"`
	Hide       []string `yaml:"hide"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// StateConfig controls toggle persistence
type StateConfig struct {
	Persist bool   `yaml:"persist"`
	Path    string `yaml:"path"`
}

// Load loads configuration with priority:
// 1. explicit path, when not empty
// 2. Project-level: <projectDir>/.pillrow.yaml
// 3. Global: <config dir>/pillrow/config.yaml
// 4. Default: built-in defaults
func Load(explicit, projectDir string) (*Config, error) {
	if explicit != "" {
		return loadFile(explicit)
	}

	// Try project-level config first
	projectConfig := filepath.Join(projectDir, ProjectFile)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return loadFile(projectConfig)
	}

	// Try global config
	if globalConfig := GlobalConfigPath(); globalConfig != "" {
		if info, err := os.Stat(globalConfig); err == nil && !info.IsDir() {
			return loadFile(globalConfig)
		}
	}

	// Return default config
	return DefaultConfig(), nil
}

// loadFile loads configuration from a specific file
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Path = path

	// Files that only list sources do not get the built-in pills.
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err == nil {
		if _, ok := keys["pills"]; !ok && len(cfg.Sources) > 0 {
			cfg.Pills = nil
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			BinPacking: false,
			Debounce:   16 * time.Millisecond,
		},
		Display: DisplayConfig{
			Decoration: "★",
		},
		Pills: []pill.Pill{
			{ID: "go", Value: "Go"},
			{ID: "tui", Value: "Terminal UI"},
			{ID: "layout", Value: "Layout"},
			{ID: "bin-packing", Value: "Bin packing"},
			{ID: "resize", Value: "Resize"},
			{ID: "frames", Value: "Frame messages"},
		},
		Log: LogConfig{
			Level: "info",
		},
		State: StateConfig{
			Persist: true,
		},
	}
}

// Validate checks and normalizes the configuration.
func (c *Config) Validate() error {
	if c.Layout.Debounce < 0 {
		return ErrNegativeDebounce
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = "info" // Default to info
	}
	if c.Display.Decoration == "" {
		c.Display.Decoration = "★"
	}
	return pill.Validate(c.Pills)
}

// Mode returns the configured packing mode.
func (c *Config) Mode() layout.Mode {
	if c.Layout.BinPacking {
		return layout.ModeBinPacking
	}
	return layout.ModeDefault
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// StatePath returns where toggles are saved.
func (c *Config) StatePath() string {
	if c.State.Path != "" {
		return c.State.Path
	}
	return DefaultStatePath()
}

// baseDir is the directory relative source globs are resolved against.
func (c *Config) baseDir() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// SourceFiles expands the source globs into file paths, sorted per pattern.
func (c *Config) SourceFiles() ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range c.Sources {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(c.baseDir(), pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad source pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// LoadPills returns the inline pills followed by the pills of every source file,
// filtered by the display show and hide lists.
func (c *Config) LoadPills() ([]pill.Pill, error) {
	pills := append([]pill.Pill(nil), c.Pills...)

	files, err := c.SourceFiles()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		filePills, err := loadPillFile(f)
		if err != nil {
			return nil, err
		}
		pills = append(pills, filePills...)
	}

	if err := pill.Validate(pills); err != nil {
		return nil, err
	}
	pills = layout.FilterPills(pills, c.Display.Show, c.Display.Hide)
	if len(pills) == 0 {
		return nil, ErrNoPills
	}
	return pills, nil
}

// loadPillFile reads a YAML list of pills.
func loadPillFile(path string) ([]pill.Pill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pill file: %w", err)
	}
	var pills []pill.Pill
	if err := yaml.Unmarshal(data, &pills); err != nil {
		return nil, fmt.Errorf("failed to parse pill file %s: %w", path, err)
	}
	return pills, nil
}

// WatchPaths lists the files whose changes should reload the pills.
func (c *Config) WatchPaths() ([]string, error) {
	files, err := c.SourceFiles()
	if err != nil {
		return nil, err
	}
	if c.Path != "" {
		files = append([]string{c.Path}, files...)
	}
	return files, nil
}
