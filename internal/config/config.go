package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/classdesk/internal/api"
)

// Environment overrides.
const (
	EnvAPIURL   = "CLASSDESK_API_URL"
	EnvLogLevel = "LOG_LEVEL"
)

// DefaultDateLayout renders dates like "Mon Jan 01 2024".
const DefaultDateLayout = "Mon Jan 02 2006"

// Config holds CLI configuration stored at ~/.classdesk/config.
type Config struct {
	APIKey         string `yaml:"api_key"`
	Username       string `yaml:"username"`
	BaseURL        string `yaml:"base_url,omitempty"`
	DateLayout     string `yaml:"date_layout,omitempty"`
	ResetOnCancel  bool   `yaml:"reset_on_cancel"`
	ResyncOnUpdate bool   `yaml:"resync_on_update"`
	LogLevel       string `yaml:"log_level,omitempty"`
}

// Dir returns the directory holding the config and log files.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".classdesk")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// LogPath returns where the TUI writes its structured log.
func LogPath() string {
	return filepath.Join(Dir(), "classdesk.log")
}

// LoadDotEnv loads .env from the working directory when present.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("config missing api_key")
	}

	cfg.ApplyEnv()
	return &cfg, nil
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	// WriteFile keeps the mode of an existing file.
	return os.Chmod(path, 0600)
}

// ApplyEnv overlays environment overrides onto the config.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// APIBaseURL returns the configured API root, falling back to the default.
func (c *Config) APIBaseURL() string {
	if c == nil || strings.TrimSpace(c.BaseURL) == "" {
		if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
			return v
		}
		return api.DefaultBaseURL
	}
	return c.BaseURL
}

// DisplayDateLayout returns the layout used for view-mode dates.
func (c *Config) DisplayDateLayout() string {
	if c == nil || strings.TrimSpace(c.DateLayout) == "" {
		return DefaultDateLayout
	}
	return c.DateLayout
}

// NewClient builds an API client from the config.
func (c *Config) NewClient() *api.Client {
	apiKey := ""
	if c != nil {
		apiKey = c.APIKey
	}
	return api.NewClient(c.APIBaseURL(), apiKey)
}
