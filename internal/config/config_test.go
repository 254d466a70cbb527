package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "whisper-1", cfg.WhisperModel)
	assert.Equal(t, 60*time.Second, cfg.TranscribeTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrentTranscriptions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("TRANSCRIBE_TIMEOUT", "90s")
	t.Setenv("MAX_CONCURRENT_TRANSCRIPTIONS", "2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.TranscribeTimeout)
	assert.Equal(t, 2, cfg.MaxConcurrentTranscriptions)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9000\"\ndb_driver: sqlite\ndb_path: /tmp/users.db\nwhisper_model: whisper-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/tmp/users.db", cfg.DBPath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing session secret",
			mutate:  func(c *Config) { c.SessionSecret = "" },
			wantErr: "SESSION_SECRET",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.DBDriver = "mysql" },
			wantErr: "unknown db driver",
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *Config) { c.DBDriver = "postgres"; c.DBDSN = "" },
			wantErr: "DB_DSN",
		},
		{
			name:    "zero worker cap",
			mutate:  func(c *Config) { c.MaxConcurrentTranscriptions = 0 },
			wantErr: "at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.SessionSecret = "s"
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
