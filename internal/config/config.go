// Package config provides configuration loading, validation, and management
// for the summarizer bot. It reads from config.yaml, BOT_* environment
// variables, and built-in defaults, and validates the result before the
// application starts serving requests.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/viper"
)

// Config defines the application configuration for all components:
// logging, Telegram transport, Gemini integration, database, summary
// pipeline, scheduler, and user-facing message texts.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Summary   SummaryConfig   `mapstructure:"summary"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LogConfig controls logger verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot token and admin identity. BotInfo is filled
// at startup from GetMe and is not read from the config file.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`

	BotInfo *models.User `mapstructure:"-"`
}

// GeminiConfig holds the text-generation API credentials and the fixed
// decoding parameters used for summary generation.
type GeminiConfig struct {
	APIKey           string        `mapstructure:"api_key"           validate:"required"`
	Model            string        `mapstructure:"model"             validate:"required"`
	Temperature      float32       `mapstructure:"temperature"       validate:"min=0,max=2"`
	MaxOutputTokens  int32         `mapstructure:"max_output_tokens" validate:"min=1,max=8192"`
	FrequencyPenalty float32       `mapstructure:"frequency_penalty" validate:"min=-2,max=2"`
	PresencePenalty  float32       `mapstructure:"presence_penalty"  validate:"min=-2,max=2"`
	Timeout          time.Duration `mapstructure:"timeout"           validate:"min=1s,max=10m"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SummaryConfig controls the formatted-summary cache.
type SummaryConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
}

// TaskConfig enables and schedules a single scheduler task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their cron configuration.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// MessagesConfig holds all user-facing bot message texts.
type MessagesConfig struct {
	Welcome            string `mapstructure:"welcome"`
	Help               string `mapstructure:"help"`
	NothingToSummarize string `mapstructure:"nothing_to_summarize"`
	SummaryError       string `mapstructure:"summary_error"`
	GeneralError       string `mapstructure:"general_error"`
	NotAuthorized      string `mapstructure:"not_authorized"`
}

// LoadConfig reads configuration from the given YAML file path, overlays
// BOT_* environment variables, applies defaults, and validates the result.
// A missing config file is allowed; missing required values are not.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal only sees environment values for keys viper already knows
	// about. The required secrets have no defaults, so they are bound
	// explicitly to allow env-only deployments.
	for _, key := range []string{"telegram.token", "telegram.admin_user_id", "gemini.api_key"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		// Config file not found is okay, defaults and env vars still apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("gemini.temperature", DefaultGeminiTemperature)
	v.SetDefault("gemini.max_output_tokens", DefaultGeminiMaxOutputTokens)
	v.SetDefault("gemini.frequency_penalty", DefaultGeminiFrequencyPenalty)
	v.SetDefault("gemini.presence_penalty", DefaultGeminiPresencePenalty)
	v.SetDefault("gemini.timeout", DefaultGeminiTimeout)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("summary.cache_ttl", DefaultSummaryCacheTTL)

	v.SetDefault("scheduler.tasks.sql_maintenance.enabled", true)
	v.SetDefault("scheduler.tasks.sql_maintenance.schedule", DefaultMaintenanceSchedule)

	v.SetDefault("messages.welcome", DefaultMessages.Welcome)
	v.SetDefault("messages.help", DefaultMessages.Help)
	v.SetDefault("messages.nothing_to_summarize", DefaultMessages.NothingToSummarize)
	v.SetDefault("messages.summary_error", DefaultMessages.SummaryError)
	v.SetDefault("messages.general_error", DefaultMessages.GeneralError)
	v.SetDefault("messages.not_authorized", DefaultMessages.NotAuthorized)
}

// isNotExist reports whether err means the config file was not found. With
// an explicit SetConfigFile the underlying os error surfaces instead of
// viper.ConfigFileNotFoundError, so both are checked.
func isNotExist(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return strings.Contains(err.Error(), "no such file")
}
