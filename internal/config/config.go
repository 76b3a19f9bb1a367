// Package config loads and validates the tidydesk configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tidydesk/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	serr "tidydesk/internal/errors"
)

// Collision strategies for files that already exist at the destination.
const (
	CollisionTimestamp = "timestamp" // rename by inserting a timestamp before the extension
	CollisionSkip      = "skip"      // leave the source file where it is
	CollisionOverwrite = "overwrite" // replace the destination file
)

// Desktop scopes all operations to one directory.
type Desktop struct {
	Path          string `yaml:"path"`           // Desktop root; defaults to ~/Desktop
	IncludeHidden bool   `yaml:"include_hidden"` // Include dotfiles in status listings
}

// Settings holds general behavior switches.
type Settings struct {
	DryRun     bool   `yaml:"dry_run"`     // If true, organize only previews
	CreateDirs bool   `yaml:"create_dirs"` // Create category directories as needed
	Collision  string `yaml:"collision"`   // timestamp, skip, or overwrite
	LogLevel   string `yaml:"log_level"`   // logrus level name
}

// LLM configures the chat-completion service used for categorization.
type LLM struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`  // Supports ${VAR} expansion
	BaseURL string `yaml:"base_url"` // Optional OpenAI-compatible endpoint override
	Model   string `yaml:"model"`
}

// Watch configures the auto-organize watcher.
type Watch struct {
	SettleSeconds int `yaml:"settle_seconds"` // Quiet period after the last event before organizing
}

// Config represents the application configuration structure.
type Config struct {
	Desktop  Desktop      `yaml:"desktop"`
	Settings Settings     `yaml:"settings"`
	LLM      LLM          `yaml:"llm"`
	Rules    []types.Rule `yaml:"rules"` // Fallback glob rules, checked before the extension table
	Watch    Watch        `yaml:"watch"`
}

// LoadConfig loads configuration from the default location
// (~/.config/tidydesk/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "tidydesk", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Defaults if no config file
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal over the defaults; keys absent from the file keep them.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Environment references in credentials, e.g. ${OPENAI_API_KEY}
	cfg.LLM.APIKey = os.ExpandEnv(cfg.LLM.APIKey)
	cfg.LLM.BaseURL = os.ExpandEnv(cfg.LLM.BaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// New creates a configuration with safe defaults.
func New() *Config {
	cfg := &Config{}

	cfg.Desktop.Path = defaultDesktopPath()
	cfg.Desktop.IncludeHidden = false

	cfg.Settings.DryRun = false
	cfg.Settings.CreateDirs = true
	cfg.Settings.Collision = CollisionTimestamp
	cfg.Settings.LogLevel = "info"

	cfg.LLM.Enabled = true
	cfg.LLM.Model = "gpt-4o-mini"

	cfg.Watch.SettleSeconds = 2

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return serr.NewConfigError("nil config", "", nil)
	}

	if c.Desktop.Path == "" {
		return serr.NewConfigError("desktop path is required", "desktop.path", nil)
	}

	switch c.Settings.Collision {
	case CollisionTimestamp, CollisionSkip, CollisionOverwrite:
	default:
		return serr.NewConfigError(
			fmt.Sprintf("invalid collision setting: %s", c.Settings.Collision),
			"settings.collision", nil)
	}

	if c.Watch.SettleSeconds < 0 {
		return serr.NewConfigError("settle period must be >= 0 seconds", "watch.settle_seconds", nil)
	}

	for i, rule := range c.Rules {
		if rule.Pattern == "" {
			return serr.NewConfigError(fmt.Sprintf("rule %d: pattern is required", i), "rules", nil)
		}
		if rule.Category == "" {
			return serr.NewConfigError(fmt.Sprintf("rule %d: category is required", i), "rules", nil)
		}
		if _, err := glob.Compile(rule.Pattern); err != nil {
			return serr.NewConfigError(fmt.Sprintf("rule %d: invalid pattern", i), rule.Pattern, err)
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
// The desktop root points at the given directory and the LLM is disabled so
// tests run against the deterministic fallback.
func NewTestConfig(desktop string) *Config {
	cfg := New()
	cfg.Desktop.Path = desktop
	cfg.LLM.Enabled = false
	cfg.Settings.LogLevel = "error"
	return cfg
}

func defaultDesktopPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Desktop"
	}
	return filepath.Join(home, "Desktop")
}
