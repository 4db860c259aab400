package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/1B05H1N/resilient-go/exec"
)

// Config carries process-level client settings: where to send requests
// and how the retry budget is shaped. Loading lives here, apart from the
// executor, so the retry and classification logic stays testable without
// any environment setup.
type Config struct {
	ApiUrl      string
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

func Default() Config {
	return Config{
		ApiUrl:      "https://api.example.com",
		Timeout:     30 * time.Second,
		MaxAttempts: 3,
		RetryDelay:  1000 * time.Millisecond,
	}
}

// FromEnv reads configuration from the environment, loading a .env file
// first when one exists in the working directory.
//
// Keys: API_URL, TIMEOUT, MAX_RETRIES, RETRY_DELAY. Durations accept Go
// duration strings ("500ms", "2s"); a bare integer is taken as seconds.
func FromEnv() Config {
	_ = godotenv.Load()

	def := Default()
	return Config{
		ApiUrl:      getEnv("API_URL", def.ApiUrl),
		Timeout:     getEnvDuration("TIMEOUT", def.Timeout),
		MaxAttempts: getEnvInt("MAX_RETRIES", def.MaxAttempts),
		RetryDelay:  getEnvDuration("RETRY_DELAY", def.RetryDelay),
	}
}

// fileConfig is the YAML schema. Durations are split into explicit
// units so the file stays obvious without custom unmarshalling.
type fileConfig struct {
	ApiUrl         string `yaml:"api_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxAttempts    int    `yaml:"max_attempts"`
	RetryDelayMs   int    `yaml:"retry_delay_ms"`
}

// FromFile reads a YAML config file. Missing keys keep their defaults.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := Default()
	if fc.ApiUrl != "" {
		cfg.ApiUrl = fc.ApiUrl
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.MaxAttempts
	}
	if fc.RetryDelayMs > 0 {
		cfg.RetryDelay = time.Duration(fc.RetryDelayMs) * time.Millisecond
	}
	return cfg, nil
}

// Policy maps the loaded values onto an executor policy.
func (c Config) Policy() exec.Policy {
	return exec.Policy{
		MaxAttempts: c.MaxAttempts,
		Delay:       c.RetryDelay,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
