package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type Env string

const (
	EnvDevelopment Env = "development"
	EnvDocker      Env = "docker"
)

// Ortam profiline göre ana dizinler
var baseDirs = map[Env]string{
	EnvDevelopment: "test-data",
	EnvDocker:      "/app",
}

type Config struct {
	Env      Env
	Server   ServerConfig
	Storage  StorageConfig
	Image    ImageConfig
	Cleanup  CleanupConfig
	S3       S3Config
	Locale   string
	LogLevel string
}

type ServerConfig struct {
	Port string
	Host string
}

type StorageConfig struct {
	BaseDir string
	Roots   Roots
}

type ImageConfig struct {
	PreviewExtension string
	DefaultQuality   int
	MaxAttempts      int
	Backoff          time.Duration
}

type CleanupConfig struct {
	MaxAge   time.Duration // 0: kapalı
	Schedule string
}

type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

func LoadConfig() *Config {
	env := Env(getEnv("APP_ENV", string(EnvDocker)))
	base, ok := baseDirs[env]
	if !ok {
		log.Warnf("unknown APP_ENV %q, falling back to %s", env, EnvDocker)
		env = EnvDocker
		base = baseDirs[EnvDocker]
	}
	base = getEnv("APP_BASE_DIR", base)

	// Göreli yollar proje köküne göre çözülür
	if !filepath.IsAbs(base) {
		projectRoot, err := findProjectRoot()
		if err != nil {
			panic(err)
		}
		base = filepath.Join(projectRoot, base)
	}

	config := &Config{
		Env: env,
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3005"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Storage: StorageConfig{
			BaseDir: base,
			Roots:   NewRoots(base),
		},
		Image: ImageConfig{
			PreviewExtension: strings.TrimPrefix(getEnv("PREVIEW_EXTENSION", "jpg"), "."),
			DefaultQuality:   getEnvAsInt("JPEG_QUALITY", 60),
			MaxAttempts:      getEnvAsInt("TRANSCODE_ATTEMPTS", 3),
			Backoff:          getEnvAsDuration("TRANSCODE_BACKOFF", time.Second),
		},
		Cleanup: CleanupConfig{
			MaxAge:   getEnvAsDuration("TEMP_CLEANUP_MAX_AGE", 0),
			Schedule: getEnv("TEMP_CLEANUP_SCHEDULE", "0 */5 * * * *"),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "eu-central-1"),
			Prefix: getEnv("S3_PREFIX", ""),
		},
		Locale:   getEnv("APP_LOCALE", "en"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if config.Image.MaxAttempts < 1 {
		config.Image.MaxAttempts = 1
	}
	if config.Image.DefaultQuality < 1 || config.Image.DefaultQuality > 100 {
		log.Warnf("JPEG_QUALITY %d out of range, using 60", config.Image.DefaultQuality)
		config.Image.DefaultQuality = 60
	}

	return config
}

// ParseLogLevel maps LOG_LEVEL values onto fiber log levels.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warnf("invalid integer for %s: %q", key, value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Warnf("invalid duration for %s: %q", key, value)
	}
	return defaultValue
}
