package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment `mapstructure:"-"`

	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Addr returns the host:port the server listens on
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LLMConfig holds the completion provider settings
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds the zap logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultBaseURL     = "https://openrouter.ai/api/v1"
	DefaultModel       = "qwen/qwq-32b:free"
	DefaultTemperature = 0.5
	DefaultMaxTokens   = 2500
)

// envBindings maps config keys to the environment variables that feed them
var envBindings = map[string][]string{
	"server.host":     {"SERVER_HOST"},
	"server.port":     {"PORT", "SERVER_PORT"},
	"llm.api_key":     {"OPENAI_API_KEY"},
	"llm.base_url":    {"OPENAI_BASE_URL"},
	"llm.model":       {"LLM_MODEL"},
	"llm.temperature": {"LLM_TEMPERATURE"},
	"llm.max_tokens":  {"LLM_MAX_TOKENS"},
	"llm.timeout":     {"LLM_TIMEOUT"},
	"logging.level":   {"LOG_LEVEL"},
	"logging.format":  {"LOG_FORMAT"},
}

// LoadConfig reads configuration from the environment (and Docker secrets for the
// API key) and validates it.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	setDefaults(v, env)
	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Environment = env

	if cfg.LLM.APIKey == "" {
		key, err := loadAPIKey()
		if err != nil {
			return nil, err
		}
		cfg.LLM.APIKey = key
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, env Environment) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("llm.base_url", DefaultBaseURL)
	v.SetDefault("llm.model", DefaultModel)
	v.SetDefault("llm.temperature", DefaultTemperature)
	v.SetDefault("llm.max_tokens", DefaultMaxTokens)
	v.SetDefault("llm.timeout", time.Duration(0))

	if env == Development {
		v.SetDefault("logging.level", "debug")
		v.SetDefault("logging.format", "console")
	} else {
		v.SetDefault("logging.level", "info")
		v.SetDefault("logging.format", "json")
	}
}

// loadAPIKey falls back to OPENAI_API_KEY_FILE, then to the openai_api_key Docker secret
func loadAPIKey() (string, error) {
	if keyFile := os.Getenv("OPENAI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file is empty")
		}
		return key, nil
	}
	return readSecret("openai_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
