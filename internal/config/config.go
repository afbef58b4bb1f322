package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     string `yaml:"port"`
	Provider string `yaml:"provider"`

	GeminiAPIKey   string `yaml:"gemini_api_key"`
	GeminiModel    string `yaml:"gemini_model"`
	GeminiAuthMode string `yaml:"gemini_auth_mode"`
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	OpenAIModel    string `yaml:"openai_model"`

	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

func defaults() *Config {
	return &Config{
		Port:                  "8000",
		Provider:              "gemini",
		GeminiModel:           "gemini-2.5-flash",
		GeminiAuthMode:        "query",
		OpenAIModel:           "gpt-4.1-mini",
		RequestTimeoutSeconds: 30,
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load resolves configuration as defaults, then the optional YAML file named
// by CONFIG_FILE, then env vars. API keys may be absent: engines refuse
// per-request instead of failing startup.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Provider = getEnv("PROVIDER", cfg.Provider)
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)
	cfg.GeminiAuthMode = getEnv("GEMINI_AUTH_MODE", cfg.GeminiAuthMode)
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", cfg.OpenAIModel)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: bad REQUEST_TIMEOUT_SECONDS %q", v)
		}
		cfg.RequestTimeoutSeconds = n
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 30
	}

	return cfg, nil
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
