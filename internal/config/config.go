package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort   string
	LogLevel  string
	LogFormat string

	// SeedBuildings loads the example records at startup
	SeedBuildings bool

	// Change feed; disabled when RedisHost is empty
	RedisHost         string
	RedisPort         string
	RedisEventsStream string
	RedisEventsMaxLen int64

	// Snapshot storage; disabled when MinioEndpoint is empty
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool

	ShutdownTimeout time.Duration
}

// RedisEnabled reports whether the change feed is configured.
func (c *Config) RedisEnabled() bool { return c.RedisHost != "" }

// MinioEnabled reports whether snapshot storage is configured.
func (c *Config) MinioEnabled() bool { return c.MinioEndpoint != "" }

// LoadConfig loads configuration from environment variables, after merging in
// a .env file when one exists. Variables already set in the environment win.
func LoadConfig(envPath ...string) (*Config, error) {
	if err := godotenv.Load(envPath...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load env file %v: %v", envPath, err)
	}

	seed, err := getBool("SEED_BUILDINGS", true)
	if err != nil {
		return nil, err
	}
	minioSSL, err := getBool("MINIO_SSL", false)
	if err != nil {
		return nil, err
	}
	maxLen, err := getInt64("REDIS_EVENTS_MAXLEN", 1000)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppPort:   getEnv("BUILDINGS_PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		SeedBuildings: seed,

		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisEventsStream: getEnv("REDIS_EVENTS_STREAM", "buildings:events"),
		RedisEventsMaxLen: maxLen,

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,

		ShutdownTimeout: shutdownTimeout,
	}
	if cfg.MinioEnabled() && (cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "") {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %v", key, err)
	}
	return b, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %v", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %v", key, err)
	}
	return d, nil
}
