package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "d", defaults.DeleteCard)
	assert.Equal(t, "<", defaults.MoveCardLeft)
	assert.Equal(t, ">", defaults.MoveCardRight)
	assert.Equal(t, "enter", defaults.ViewCard)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultChatURL, cfg.Chat.BaseURL)
	assert.Equal(t, DefaultChatTimeout, cfg.Chat.Timeout)
	assert.Equal(t, DefaultEventsSubject, cfg.Events.Subject)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Pipeline.StrictEdits)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "talento")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
database:
  path: /tmp/board.db
chat:
  base_url: http://chat.internal:9000
  timeout: 5s
pipeline:
  strict_edits: true
log:
  level: DEBUG
key_mappings:
  quit: x
theme:
  preset: monochrome
  accent: "#FF0000"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/board.db", cfg.Database.Path)
	assert.Equal(t, "http://chat.internal:9000", cfg.Chat.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, DefaultStatusInterval, cfg.Chat.StatusInterval)
	assert.True(t, cfg.Pipeline.StrictEdits)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Partial key mappings keep the other defaults
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "d", cfg.KeyMappings.DeleteCard)

	// Custom colors override the preset, the rest come from it
	assert.Equal(t, "#FF0000", cfg.Theme.Accent)
	assert.Equal(t, MonochromeTheme().Subtle, cfg.Theme.Subtle)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDBPath, "/data/talento.db")
	t.Setenv(EnvChatURL, "http://assistant:5000")
	t.Setenv(EnvHTTPAddr, ":9090")
	t.Setenv(EnvNATSURL, "nats://broker:4222")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvStrictEdits, "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/talento.db", cfg.Database.Path)
	assert.Equal(t, "http://assistant:5000", cfg.Chat.BaseURL)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "nats://broker:4222", cfg.Events.NATSURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Pipeline.StrictEdits)
}

func TestLoadFrom_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "chat: [unclosed"},
		{"bad level", "log:\n  level: verbose\n"},
		{"negative timeout", "chat:\n  timeout: -1s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadFrom(path)
			assert.Error(t, err)
		})
	}
}
