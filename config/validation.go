package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every setting and reports all problems at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.LLM.APIKey == "" {
		errs = append(errs, ValidationError{"llm.api_key", "OPENAI_API_KEY, OPENAI_API_KEY_FILE or the openai_api_key secret must be set"})
	}
	if cfg.LLM.BaseURL == "" {
		errs = append(errs, ValidationError{"llm.base_url", "must not be empty"})
	}
	if cfg.LLM.Model == "" {
		errs = append(errs, ValidationError{"llm.model", "must not be empty"})
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, ValidationError{"llm.temperature", fmt.Sprintf("%v is outside [0, 2]", cfg.LLM.Temperature)})
	}
	if cfg.LLM.MaxTokens <= 0 {
		errs = append(errs, ValidationError{"llm.max_tokens", "must be positive"})
	}
	if cfg.LLM.Timeout < 0 {
		errs = append(errs, ValidationError{"llm.timeout", "must not be negative"})
	}

	port, err := strconv.Atoi(cfg.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{"server.port", fmt.Sprintf("invalid port %q", cfg.Server.Port)})
	}

	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
}
