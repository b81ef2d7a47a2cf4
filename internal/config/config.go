package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file
const (
	EnvDBPath      = "TALENTO_DB_PATH"
	EnvChatURL     = "TALENTO_CHAT_URL"
	EnvHTTPAddr    = "TALENTO_HTTP_ADDR"
	EnvNATSURL     = "TALENTO_NATS_URL"
	EnvLogLevel    = "TALENTO_LOG_LEVEL"
	EnvStrictEdits = "TALENTO_STRICT_EDITS"
)

// Defaults
const (
	DefaultHTTPAddr       = "127.0.0.1:8080"
	DefaultChatURL        = "http://localhost:5000"
	DefaultChatTimeout    = 30 * time.Second
	DefaultStatusInterval = time.Minute
	DefaultEventsSubject  = "talento.board.changed"
	DefaultLogLevel       = "info"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Server      ServerConfig   `yaml:"server"`
	Chat        ChatConfig     `yaml:"chat"`
	Events      EventsConfig   `yaml:"events"`
	Pipeline    PipelineConfig `yaml:"pipeline"`
	Log         LogConfig      `yaml:"log"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	Theme       Theme          `yaml:"theme"`
}

// DatabaseConfig locates the board database. Empty means ~/.talento/board.db.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures `talento serve`
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ChatConfig points at the assistant API
type ChatConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	StatusInterval time.Duration `yaml:"status_interval"`
}

// EventsConfig enables NATS publishing when NATSURL is set
type EventsConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// PipelineConfig tunes board transitions
type PipelineConfig struct {
	// StrictEdits rejects edits of unknown candidates instead of re-adding them
	StrictEdits bool `yaml:"strict_edits"`
}

// LogConfig sets the slog level: debug, info, warn or error
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		c := Default()
		c.applyEnv()
		return c, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, falling back to defaults when it doesn't exist
func LoadFrom(path string) (*Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "talento", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "talento", "config.yaml"), nil
}

// Validate rejects values that cannot be used
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Chat.Timeout <= 0 {
		return fmt.Errorf("%w: chat.timeout must be positive", ErrInvalidConfig)
	}
	if c.Chat.StatusInterval <= 0 {
		return fmt.Errorf("%w: chat.status_interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultHTTPAddr
	}
	if c.Chat.BaseURL == "" {
		c.Chat.BaseURL = DefaultChatURL
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = DefaultChatTimeout
	}
	if c.Chat.StatusInterval == 0 {
		c.Chat.StatusInterval = DefaultStatusInterval
	}
	if c.Events.Subject == "" {
		c.Events.Subject = DefaultEventsSubject
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvChatURL); v != "" {
		c.Chat.BaseURL = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvNATSURL); v != "" {
		c.Events.NATSURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStrictEdits); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Pipeline.StrictEdits = b
		}
	}
}
