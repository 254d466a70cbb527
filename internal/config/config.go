package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// DBDriver selects the credential store backend: "sqlite" or "postgres".
	DBDriver string `yaml:"db_driver"`
	DBPath   string `yaml:"db_path"`
	DBDSN    string `yaml:"db_dsn"`

	UploadDir string `yaml:"upload_dir"`
	OutputDir string `yaml:"output_dir"`
	FontPath  string `yaml:"font_path"`

	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`

	OpenAIAPIKey      string        `yaml:"-"`
	WhisperModel      string        `yaml:"whisper_model"`
	TranscribeTimeout time.Duration `yaml:"transcribe_timeout"`

	// MaxConcurrentTranscriptions caps simultaneous calls to the
	// external speech model so one slow inference cannot starve the
	// rest of the server.
	MaxConcurrentTranscriptions int `yaml:"max_concurrent_transcriptions"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Host:                        "0.0.0.0",
		Port:                        "5000",
		Environment:                 "development",
		ReadTimeout:                 30 * time.Second,
		WriteTimeout:                2 * time.Minute,
		IdleTimeout:                 2 * time.Minute,
		DBDriver:                    "sqlite",
		DBPath:                      "data/users.db",
		UploadDir:                   "uploads",
		OutputDir:                   "outputs",
		FontPath:                    "fonts/KGPrimaryDots.ttf",
		SessionTTL:                  24 * time.Hour,
		WhisperModel:                "whisper-1",
		TranscribeTimeout:           60 * time.Second,
		MaxConcurrentTranscriptions: 4,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variable overrides, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Host, "HOST")
	setString(&c.Port, "PORT")
	setString(&c.Environment, "ENVIRONMENT")
	setString(&c.DBDriver, "DB_DRIVER")
	setString(&c.DBPath, "DB_PATH")
	setString(&c.DBDSN, "DB_DSN")
	setString(&c.UploadDir, "UPLOAD_DIR")
	setString(&c.OutputDir, "OUTPUT_DIR")
	setString(&c.FontPath, "FONT_PATH")
	setString(&c.SessionSecret, "SESSION_SECRET")
	setString(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.WhisperModel, "WHISPER_MODEL")
	setDuration(&c.SessionTTL, "SESSION_TTL")
	setDuration(&c.TranscribeTimeout, "TRANSCRIBE_TIMEOUT")
	setInt(&c.MaxConcurrentTranscriptions, "MAX_CONCURRENT_TRANSCRIPTIONS")
}

// Validate checks settings that have no sensible fallback.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET must be set")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH must be set for the sqlite driver")
		}
	case "postgres":
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown db driver %q (expected sqlite or postgres)", c.DBDriver)
	}
	if c.MaxConcurrentTranscriptions < 1 {
		return fmt.Errorf("max_concurrent_transcriptions must be at least 1")
	}
	return nil
}

// Addr returns the host:port the HTTP server should listen on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
