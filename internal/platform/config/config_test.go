package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "agerange/pkg/domain-errors"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"AGERANGE_PROVIDER", "AGERANGE_MOCK_SCENARIO", "AGERANGE_MOCK_PROFILE",
		"AGERANGE_MOCK_LATENCY", "AGERANGE_LOG_LEVEL", "AGERANGE_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, ProviderAuto, cfg.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Zero(t, cfg.MockLatency)
	assert.Empty(t, cfg.MockScenario)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("AGERANGE_PROVIDER", "mock")
	t.Setenv("AGERANGE_MOCK_SCENARIO", "sharing_teen")
	t.Setenv("AGERANGE_MOCK_PROFILE", "/etc/agerange/teen.yaml")
	t.Setenv("AGERANGE_MOCK_LATENCY", "250ms")
	t.Setenv("AGERANGE_LOG_LEVEL", "debug")
	t.Setenv("AGERANGE_LOG_FORMAT", "text")

	cfg := FromEnv()
	assert.Equal(t, Config{
		Provider:       ProviderMock,
		MockScenario:   "sharing_teen",
		MockProfile:    "/etc/agerange/teen.yaml",
		MockLatency:    250 * time.Millisecond,
		MockLatencyRaw: "250ms",
		LogLevel:       "debug",
		LogFormat:      "text",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_RejectsTypos(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"latency without a valid unit", "AGERANGE_MOCK_LATENCY", "5sec", `AGERANGE_MOCK_LATENCY must be a duration such as 250ms or 2s, got "5sec"`},
		{"unknown log level", "AGERANGE_LOG_LEVEL", "verbose", `AGERANGE_LOG_LEVEL must be one of [debug info warn warning error], got "verbose"`},
		{"blank log level", "AGERANGE_LOG_LEVEL", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AGERANGE_PROVIDER", "")
			t.Setenv("AGERANGE_LOG_FORMAT", "")
			t.Setenv(tt.key, tt.value)

			cfg := FromEnv()
			err := cfg.Validate()
			if tt.wantMsg == "" {
				// Blank means unset, so the default applies.
				require.NoError(t, err)
				assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestFromEnv_BadLatencyLeavesZero(t *testing.T) {
	t.Setenv("AGERANGE_MOCK_LATENCY", "soon")
	cfg := FromEnv()
	assert.Zero(t, cfg.MockLatency)
	assert.Equal(t, "soon", cfg.MockLatencyRaw)
}

func TestFromEnv_LogLevelCaseInsensitive(t *testing.T) {
	t.Setenv("AGERANGE_LOG_LEVEL", " WARN ")
	t.Setenv("AGERANGE_LOG_FORMAT", "")
	t.Setenv("AGERANGE_PROVIDER", "")
	t.Setenv("AGERANGE_MOCK_LATENCY", "")
	cfg := FromEnv()
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := Config{Provider: ProviderPlatform, LogLevel: "info", LogFormat: "json"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown provider", Config{Provider: "real", LogLevel: "info", LogFormat: "json"}},
		{"negative latency", Config{Provider: ProviderMock, LogLevel: "info", LogFormat: "json", MockLatency: -time.Second}},
		{"unparsed latency", Config{Provider: ProviderMock, LogLevel: "info", LogFormat: "json", MockLatencyRaw: "5sec"}},
		{"unknown log format", Config{Provider: ProviderMock, LogLevel: "info", LogFormat: "xml"}},
		{"blank log level", Config{Provider: ProviderMock, LogLevel: " ", LogFormat: "json"}},
		{"unknown log level", Config{Provider: ProviderMock, LogLevel: "trace", LogFormat: "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestValidate_NamesTheVariable(t *testing.T) {
	err := Config{Provider: "real", LogLevel: "info", LogFormat: "json"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGERANGE_PROVIDER")
}
