package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names
const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderWhisperCpp = "whisper_cpp"
)

// DefaultConfigFile is read when no --config flag is given, if it exists.
const DefaultConfigFile = "config.yaml"

// Config is the application configuration.
type Config struct {
	OutputDir   string            `yaml:"output_dir"`
	Server      ServerConfig      `yaml:"server"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig holds HTTP shell settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	Environment  string        `yaml:"environment"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	MaxUploadMB  int64         `yaml:"max_upload_mb"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// TranscriberConfig selects and configures the speech-to-text backend.
type TranscriberConfig struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"-"`
}

// SummarizerConfig selects and configures the summarization backend.
type SummarizerConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
	Seed      int    `yaml:"seed"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"-"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultHTTPPort,
			Environment:  "development",
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
			MaxUploadMB:  DefaultMaxUploadMB,
			CORSOrigins:  []string{"*"},
		},
		Transcriber: TranscriberConfig{
			Provider:   ProviderWhisperCpp,
			BinaryPath: DefaultWhisperCppBinary,
			ModelPath:  DefaultWhisperCppModel,
		},
		Summarizer: SummarizerConfig{
			Provider:  ProviderOpenAI,
			MinLength: DefaultMinLength,
			MaxLength: DefaultMaxLength,
			Seed:      DefaultSeed,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in that order, then validates it. An empty path falls back to
// DefaultConfigFile and tolerates its absence.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides file values with environment variables.
func (c *Config) ApplyEnv() error {
	c.OutputDir = getEnvOrDefault("SUMMARIZER_OUTPUT_DIR", c.OutputDir)
	c.Server.Host = getEnvOrDefault("SUMMARIZER_HOST", c.Server.Host)
	c.Server.Port = getEnvOrDefault("SUMMARIZER_PORT", c.Server.Port)
	c.Server.Environment = getEnvOrDefault("SUMMARIZER_ENV", c.Server.Environment)
	c.Transcriber.Provider = getEnvOrDefault("SUMMARIZER_TRANSCRIBER", c.Transcriber.Provider)
	c.Transcriber.BinaryPath = getEnvOrDefault("WHISPER_CPP_BINARY", c.Transcriber.BinaryPath)
	c.Transcriber.ModelPath = getEnvOrDefault("WHISPER_CPP_MODEL", c.Transcriber.ModelPath)
	c.Summarizer.Provider = getEnvOrDefault("SUMMARIZER_SUMMARIZER", c.Summarizer.Provider)
	c.Logging.Level = getEnvOrDefault("LOG_LEVEL", c.Logging.Level)

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return fmt.Errorf("failed to get API keys: %w", err)
	}
	c.Transcriber.APIKey = keyFor(c.Transcriber.Provider, apiKeys)
	c.Summarizer.APIKey = keyFor(c.Summarizer.Provider, apiKeys)
	return nil
}

func keyFor(provider string, keys *APIKeys) string {
	switch provider {
	case ProviderOpenAI:
		return keys.OpenAI
	case ProviderGemini:
		return keys.Gemini
	default:
		return ""
	}
}

// Address is the host:port the HTTP shell listens on.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
