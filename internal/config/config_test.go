// Package config_test tests configuration loading and validation.
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/castilho/resumobot/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const minimalConfig = `
telegram:
  token: "123456:test-token"
  admin_user_id: 99
gemini:
  api_key: "test-api-key"
`

// TestLoadConfigDefaults verifies that a minimal config file loads with
// defaults applied for everything unspecified.
func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig(writeConfigFile(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Telegram.Token != "123456:test-token" {
		t.Errorf("Telegram.Token = %q, want %q", cfg.Telegram.Token, "123456:test-token")
	}
	if cfg.Telegram.AdminUserID != 99 {
		t.Errorf("Telegram.AdminUserID = %d, want 99", cfg.Telegram.AdminUserID)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Gemini.Model != config.DefaultGeminiModel {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, config.DefaultGeminiModel)
	}
	if cfg.Gemini.Temperature != 0.7 {
		t.Errorf("Gemini.Temperature = %v, want 0.7", cfg.Gemini.Temperature)
	}
	if cfg.Gemini.MaxOutputTokens != 500 {
		t.Errorf("Gemini.MaxOutputTokens = %d, want 500", cfg.Gemini.MaxOutputTokens)
	}
	if cfg.Database.Path != config.DefaultDBPath {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, config.DefaultDBPath)
	}
	if cfg.Summary.CacheTTL != time.Hour {
		t.Errorf("Summary.CacheTTL = %v, want 1h", cfg.Summary.CacheTTL)
	}
	if cfg.Messages.Welcome == "" {
		t.Error("Messages.Welcome is empty, want default text")
	}

	task, ok := cfg.Scheduler.Tasks["sql_maintenance"]
	if !ok {
		t.Fatal("Scheduler.Tasks missing sql_maintenance entry")
	}
	if !task.Enabled || task.Schedule == "" {
		t.Errorf("sql_maintenance task = %+v, want enabled with a schedule", task)
	}
}

// TestLoadConfigOverrides verifies that file values win over defaults.
func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()

	content := `
telegram:
  token: "123456:test-token"
  admin_user_id: 99
log:
  level: debug
  json: false
gemini:
  api_key: "test-api-key"
  model: "gemini-2.0-pro"
  timeout: 30s
summary:
  cache_ttl: 10m
`
	cfg, err := config.LoadConfig(writeConfigFile(t, content))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Gemini.Model != "gemini-2.0-pro" {
		t.Errorf("Gemini.Model = %q, want %q", cfg.Gemini.Model, "gemini-2.0-pro")
	}
	if cfg.Gemini.Timeout != 30*time.Second {
		t.Errorf("Gemini.Timeout = %v, want 30s", cfg.Gemini.Timeout)
	}
	if cfg.Summary.CacheTTL != 10*time.Minute {
		t.Errorf("Summary.CacheTTL = %v, want 10m", cfg.Summary.CacheTTL)
	}
}

// TestLoadConfigValidation verifies that incomplete or invalid configs are
// rejected.
func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "missing telegram token",
			content: `
telegram:
  admin_user_id: 99
gemini:
  api_key: "test-api-key"
`,
		},
		{
			name: "missing gemini api key",
			content: `
telegram:
  token: "123456:test-token"
  admin_user_id: 99
`,
		},
		{
			name: "negative admin user id",
			content: `
telegram:
  token: "123456:test-token"
  admin_user_id: -5
gemini:
  api_key: "test-api-key"
`,
		},
		{
			name: "invalid log level",
			content: minimalConfig + `
log:
  level: loud
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := config.LoadConfig(writeConfigFile(t, tc.content)); err == nil {
				t.Error("LoadConfig succeeded, want validation error")
			}
		})
	}
}

// TestLoadConfigEnvOnly verifies the bot can be configured entirely
// through BOT_-prefixed environment variables, with no config file.
func TestLoadConfigEnvOnly(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:env-token")
	t.Setenv("BOT_TELEGRAM_ADMIN_USER_ID", "77")
	t.Setenv("BOT_GEMINI_API_KEY", "env-api-key")

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Telegram.Token != "123456:env-token" {
		t.Errorf("Telegram.Token = %q, want %q", cfg.Telegram.Token, "123456:env-token")
	}
	if cfg.Telegram.AdminUserID != 77 {
		t.Errorf("Telegram.AdminUserID = %d, want 77", cfg.Telegram.AdminUserID)
	}
	if cfg.Gemini.APIKey != "env-api-key" {
		t.Errorf("Gemini.APIKey = %q, want %q", cfg.Gemini.APIKey, "env-api-key")
	}
	if cfg.Gemini.Model != config.DefaultGeminiModel {
		t.Errorf("Gemini.Model = %q, want default %q", cfg.Gemini.Model, config.DefaultGeminiModel)
	}
}

// TestLoadConfigEnvOverridesFile verifies environment variables win over
// file values for the bound keys.
func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123456:env-wins")

	cfg, err := config.LoadConfig(writeConfigFile(t, minimalConfig))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Telegram.Token != "123456:env-wins" {
		t.Errorf("Telegram.Token = %q, want %q", cfg.Telegram.Token, "123456:env-wins")
	}
	if cfg.Telegram.AdminUserID != 99 {
		t.Errorf("Telegram.AdminUserID = %d, want file value 99", cfg.Telegram.AdminUserID)
	}
}

// TestLoadConfigMissingFile verifies that an absent config file is not an
// error by itself; validation of required values still applies.
func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("LoadConfig succeeded without required values, want validation error")
	}
}
