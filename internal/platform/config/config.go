package config

import (
	"os"
	"strings"
	"time"

	"agerange/pkg/validation"
)

// ProviderMode chooses which backend the service uses.
type ProviderMode string

const (
	// ProviderAuto uses the platform when it is available, else the mock.
	ProviderAuto     ProviderMode = "auto"
	ProviderMock     ProviderMode = "mock"
	ProviderPlatform ProviderMode = "platform"
)

// IsValid checks if the mode is one of the supported enum values.
func (m ProviderMode) IsValid() bool {
	return m == ProviderAuto || m == ProviderMock || m == ProviderPlatform
}

// Config captures process level configuration for the age range service.
type Config struct {
	Provider     ProviderMode  `env:"AGERANGE_PROVIDER" validate:"oneof=auto mock platform"`
	MockScenario string        `env:"AGERANGE_MOCK_SCENARIO"`
	MockProfile  string        `env:"AGERANGE_MOCK_PROFILE"`
	MockLatency  time.Duration `env:"AGERANGE_MOCK_LATENCY" validate:"min=0"`
	LogLevel     string        `env:"AGERANGE_LOG_LEVEL" validate:"notblank,oneof=debug info warn warning error"`
	LogFormat    string        `env:"AGERANGE_LOG_FORMAT" validate:"oneof=json text"`

	// MockLatencyRaw is AGERANGE_MOCK_LATENCY as read. MockLatency stays zero
	// when it does not parse, and Validate reports it.
	MockLatencyRaw string `env:"AGERANGE_MOCK_LATENCY" validate:"omitempty,duration"`
}

// Defaults applied by FromEnv when a variable is unset.
var (
	DefaultProvider  = ProviderAuto
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// FromEnv builds a Config from environment variables so main stays lean.
// It never fails; call Validate before using the result.
func FromEnv() Config {
	cfg := Config{
		Provider:     ProviderMode(os.Getenv("AGERANGE_PROVIDER")),
		MockScenario: os.Getenv("AGERANGE_MOCK_SCENARIO"),
		MockProfile:  os.Getenv("AGERANGE_MOCK_PROFILE"),
		LogLevel:     strings.ToLower(strings.TrimSpace(os.Getenv("AGERANGE_LOG_LEVEL"))),
		LogFormat:    os.Getenv("AGERANGE_LOG_FORMAT"),
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	cfg.MockLatencyRaw = strings.TrimSpace(os.Getenv("AGERANGE_MOCK_LATENCY"))
	if cfg.MockLatencyRaw != "" {
		if d, err := time.ParseDuration(cfg.MockLatencyRaw); err == nil {
			cfg.MockLatency = d
		}
	}

	return cfg
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	return validation.Validate(c)
}
