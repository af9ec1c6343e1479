package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "8000"
	DefaultModel    = "gemini-2.0-flash-exp-image-generation"
	DefaultLocation = "us-central1"
	// 画像2枚をBase64で受け取るため余裕を持たせる
	DefaultMaxBodySize       = 20 << 20
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// Config は環境変数から読み込まれたアプリケーション設定です。
type Config struct {
	Server ServerConfig
	GenAI  GenAIConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port              string        `validate:"required,numeric"`
	MaxBodySize       int64         `validate:"gt=0"`
	ReadHeaderTimeout time.Duration `validate:"gte=0"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

// GenAIConfig holds the generation provider settings. The API key may be
// empty at boot; /api/generate reports it per request.
type GenAIConfig struct {
	Backend  string `validate:"oneof=gemini vertex"`
	APIKey   string
	Model    string `validate:"required"`
	Project  string `validate:"required_if=Backend vertex"`
	Location string `validate:"required_if=Backend vertex"`
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
}

// Load reads .env.local and .env (both optional) and then the process
// environment. Values already present in the environment win.
func Load() *Config {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load env file", "file", file, "error", err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", DefaultPort),
			MaxBodySize:       getEnvAsInt64("MAX_BODY_SIZE", DefaultMaxBodySize),
			ReadHeaderTimeout: getDuration("READ_HEADER_TIMEOUT", DefaultReadHeaderTimeout),
			ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		},
		GenAI: GenAIConfig{
			Backend:  strings.ToLower(getEnv("GENAI_BACKEND", BackendGemini)),
			APIKey:   os.Getenv("GEMINI_API_KEY"),
			Model:    getEnv("GEMINI_MODEL", DefaultModel),
			Project:  getEnv("GOOGLE_CLOUD_PROJECT", os.Getenv("PROJECT_ID")),
			Location: getEnv("GOOGLE_CLOUD_LOCATION", DefaultLocation),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
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

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
