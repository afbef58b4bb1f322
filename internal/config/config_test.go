package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "PROVIDER",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_AUTH_MODE",
		"OPENAI_API_KEY", "OPENAI_MODEL",
		"REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" || cfg.GeminiAuthMode != "query" {
		t.Errorf("gemini defaults: %q %q", cfg.GeminiModel, cfg.GeminiAuthMode)
	}
	if cfg.GeminiAPIKey != "" || cfg.OpenAIAPIKey != "" {
		t.Error("keys must default empty, not fatal")
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("port: \"9090\"\nprovider: gpt\ngemini_model: gemini-2.0-flash\nrequest_timeout_seconds: 12\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Provider != "gpt" {
		t.Errorf("got %q %q", cfg.Port, cfg.Provider)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.RequestTimeout() != 12*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout())
	}
	if cfg.OpenAIModel != "gpt-4.1-mini" {
		t.Errorf("unset file field lost its default: %q", cfg.OpenAIModel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\ngemini_api_key: file-key\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port = %q, env must win", cfg.Port)
	}
	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("GeminiAPIKey = %q, env must win", cfg.GeminiAPIKey)
	}
	if cfg.RequestTimeoutSeconds != 25 {
		t.Errorf("RequestTimeoutSeconds = %d", cfg.RequestTimeoutSeconds)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")
	if _, err := Load(); err == nil {
		t.Error("bad timeout accepted")
	}

	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")
	if _, err := Load(); err == nil {
		t.Error("zero timeout accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := Load(); err == nil {
		t.Error("missing config file not reported")
	}
}
