package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	apperrors "audio-summarizer/internal/app/errors"
)

var (
	transcriberProviders = []string{ProviderWhisperCpp, ProviderOpenAI}
	summarizerProviders  = []string{ProviderOpenAI, ProviderGemini}
	logLevels            = []string{"debug", "info", "warn", "error"}
)

// Validate fills zero values with defaults and rejects invalid settings.
func (c *Config) Validate() error {
	c.fillDefaults()

	if strings.TrimSpace(c.OutputDir) == "" {
		return apperrors.RequiredField("output_dir")
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	for name, timeout := range map[string]time.Duration{
		"read":  c.Server.ReadTimeout,
		"write": c.Server.WriteTimeout,
		"idle":  c.Server.IdleTimeout,
	} {
		if err := ValidateTimeout(timeout, name); err != nil {
			return err
		}
	}
	if !lo.Contains(logLevels, c.Logging.Level) {
		return apperrors.InvalidField("logging.level", fmt.Sprintf("must be one of %s", strings.Join(logLevels, ", ")))
	}
	if err := c.Transcriber.Validate(); err != nil {
		return err
	}
	return c.Summarizer.Validate()
}

// Validate checks the transcriber provider and its credentials.
func (t *TranscriberConfig) Validate() error {
	if !lo.Contains(transcriberProviders, t.Provider) {
		return apperrors.InvalidField("transcriber.provider", fmt.Sprintf("unknown provider %q", t.Provider))
	}
	switch t.Provider {
	case ProviderWhisperCpp:
		if t.BinaryPath == "" {
			return apperrors.RequiredField("transcriber.binary_path")
		}
		if t.ModelPath == "" {
			return apperrors.RequiredField("transcriber.model_path")
		}
	case ProviderOpenAI:
		if t.APIKey == "" {
			return fmt.Errorf("transcriber %s: %w", t.Provider, apperrors.ErrMissingAPIKey)
		}
	}
	return nil
}

// Validate checks the summarizer provider, credentials and length bounds.
func (s *SummarizerConfig) Validate() error {
	if !lo.Contains(summarizerProviders, s.Provider) {
		return apperrors.InvalidField("summarizer.provider", fmt.Sprintf("unknown provider %q", s.Provider))
	}
	if s.APIKey == "" {
		return fmt.Errorf("summarizer %s: %w", s.Provider, apperrors.ErrMissingAPIKey)
	}
	return ValidateLengthBounds(s.MinLength, s.MaxLength)
}

func (c *Config) fillDefaults() {
	defaults := Default()
	c.OutputDir = lo.CoalesceOrEmpty(c.OutputDir, defaults.OutputDir)
	c.Server.Host = lo.CoalesceOrEmpty(c.Server.Host, defaults.Server.Host)
	c.Server.Port = lo.CoalesceOrEmpty(c.Server.Port, defaults.Server.Port)
	c.Server.Environment = lo.CoalesceOrEmpty(c.Server.Environment, defaults.Server.Environment)
	c.Server.ReadTimeout = lo.CoalesceOrEmpty(c.Server.ReadTimeout, defaults.Server.ReadTimeout)
	c.Server.WriteTimeout = lo.CoalesceOrEmpty(c.Server.WriteTimeout, defaults.Server.WriteTimeout)
	c.Server.IdleTimeout = lo.CoalesceOrEmpty(c.Server.IdleTimeout, defaults.Server.IdleTimeout)
	c.Server.MaxUploadMB = lo.CoalesceOrEmpty(c.Server.MaxUploadMB, defaults.Server.MaxUploadMB)
	c.Transcriber.Provider = lo.CoalesceOrEmpty(c.Transcriber.Provider, defaults.Transcriber.Provider)
	c.Summarizer.Provider = lo.CoalesceOrEmpty(c.Summarizer.Provider, defaults.Summarizer.Provider)
	c.Summarizer.MinLength = lo.CoalesceOrEmpty(c.Summarizer.MinLength, defaults.Summarizer.MinLength)
	c.Summarizer.MaxLength = lo.CoalesceOrEmpty(c.Summarizer.MaxLength, defaults.Summarizer.MaxLength)
	c.Summarizer.Seed = lo.CoalesceOrEmpty(c.Summarizer.Seed, defaults.Summarizer.Seed)
	c.Logging.Level = strings.ToLower(lo.CoalesceOrEmpty(c.Logging.Level, defaults.Logging.Level))
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return apperrors.InvalidField(name+" timeout", "must be positive")
	}
	if timeout > 30*time.Minute {
		return apperrors.InvalidField(name+" timeout", "too large (max 30 minutes)")
	}
	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return apperrors.RequiredField(name + " port")
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return apperrors.InvalidField(name+" port", fmt.Sprintf("%q is not a port number", port))
	}
	return nil
}

// ValidateLengthBounds checks the summary word bounds.
func ValidateLengthBounds(minLength, maxLength int) error {
	if minLength <= 0 || maxLength <= 0 {
		return apperrors.InvalidField("summarizer length", "bounds must be positive")
	}
	if minLength > maxLength {
		return apperrors.InvalidField("summarizer length", fmt.Sprintf("min_length %d exceeds max_length %d", minLength, maxLength))
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, provider string) error {
	switch provider {
	case ProviderOpenAI:
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	case ProviderGemini:
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}
	return nil
}
