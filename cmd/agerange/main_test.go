package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers"
	"agerange/internal/agerange/providers/mock"
	dErrors "agerange/pkg/domain-errors"
)

func TestParseGates(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "single", raw: "13", want: []int{13}},
		{name: "tiered", raw: "13,15,18", want: []int{13, 15, 18}},
		{name: "spaces", raw: " 13 , 16", want: []int{13, 16}},
		{name: "unordered kept as given", raw: "18,13", want: []int{18, 13}},
		{name: "too many", raw: "1,2,3,4", wantErr: true},
		{name: "not a number", raw: "13,teen", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gates, err := parseGates(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, gates.Values())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitNotAvailable, exitCode(providers.ErrNotAvailable))
	assert.Equal(t, exitInvalidRequest, exitCode(providers.ErrInvalidRequest))
	assert.Equal(t, exitUnknown, exitCode(providers.ErrUnknown))
	assert.Equal(t, exitCancelled, exitCode(context.DeadlineExceeded))
	assert.Equal(t, exitFailure, exitCode(dErrors.New(dErrors.CodeInvalidInput, "bad flag")))
}

func TestRequestCommand(t *testing.T) {
	t.Setenv("AGERANGE_LOG_LEVEL", "error")

	t.Run("sharing teen", func(t *testing.T) {
		out, err := execute(t, "request", "--provider", "mock", "--scenario", "sharing_teen", "--gates", "13,18")
		require.NoError(t, err)

		var got requestOutput
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, string(models.ResponseSharing), got.Outcome)
		assert.Equal(t, []int{13, 18}, got.Gates)
		require.NotNil(t, got.AgeRange)
		assert.Equal(t, 14, *got.AgeRange.LowerBound)
		assert.Equal(t, 17, *got.AgeRange.UpperBound)
		assert.Equal(t, models.DeclarationSelf, got.AgeRange.Declaration)
		assert.Equal(t, map[string]bool{"13": true, "18": false}, got.AgeRange.MeetsGates)
	})

	t.Run("default scenario declines", func(t *testing.T) {
		out, err := execute(t, "request", "--provider", "mock")
		require.NoError(t, err)
		assert.Contains(t, string(out), `"outcome": "declined_sharing"`)
		assert.NotContains(t, string(out), "age_range")
	})

	t.Run("error scenario fails with its kind", func(t *testing.T) {
		_, err := execute(t, "request", "--provider", "mock", "--scenario", "error_not_available")
		require.Error(t, err)
		assert.ErrorIs(t, err, providers.ErrNotAvailable)
		assert.Equal(t, exitNotAvailable, exitCode(err))
	})

	t.Run("unknown scenario", func(t *testing.T) {
		_, err := execute(t, "request", "--provider", "mock", "--scenario", "sharing_toddler")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("timeout waits on the mock latency", func(t *testing.T) {
		t.Setenv("AGERANGE_MOCK_LATENCY", "1m")
		_, err := execute(t, "request", "--provider", "mock", "--timeout", "10ms")
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, exitCancelled, exitCode(err))
	})

	t.Run("profile sets the initial scenario", func(t *testing.T) {
		path := writeProfile(t, "scenario: sharing_adult\n")
		out, err := execute(t, "request", "--provider", "mock", "--profile", path, "--gates", "18")
		require.NoError(t, err)
		assert.Contains(t, string(out), `"18": true`)
	})
}

func TestScenariosCommand(t *testing.T) {
	out, err := execute(t, "scenarios")
	require.NoError(t, err)

	text := string(out)
	for _, s := range mock.Scenarios() {
		assert.Contains(t, text, string(s))
	}
	assert.Contains(t, text, "declined_sharing (default)")
	assert.Contains(t, text, "sharing 8-12, guardian_declared, controls: content_restrictions")
	assert.Contains(t, text, "sharing 18+, self_declared, controls: none")
}

func TestSettingsCommand(t *testing.T) {
	t.Run("describes the profile", func(t *testing.T) {
		path := writeProfile(t, `scenario: sharing_child
settings:
  date_of_birth: 2015-06-01
  sharing_preference: always_share
  parental_controls: [content_restrictions, screen_time_limits]
`)
		out, err := execute(t, "settings", "--profile", path)
		require.NoError(t, err)

		var got settingsOutput
		require.NoError(t, json.Unmarshal(out, &got))
		assert.Equal(t, mock.ScenarioSharingChild, got.Scenario)
		assert.Equal(t, "2015-06-01", got.DateOfBirth)
		assert.Equal(t, models.SharingAlwaysShare, got.SharingPreference)
		assert.Equal(t, "content_restrictions, screen_time_limits", got.ParentalControls)
		require.NotNil(t, got.Over18)
	})

	t.Run("profile required", func(t *testing.T) {
		t.Setenv("AGERANGE_MOCK_PROFILE", "")
		_, err := execute(t, "settings")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "settings", "--profile", filepath.Join(t.TempDir(), "absent.yaml"))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestRenderSettings_Age(t *testing.T) {
	dob := time.Date(2000, time.March, 10, 0, 0, 0, 0, time.UTC)
	profile := &mock.Profile{
		Scenario: mock.DefaultScenario,
		Settings: models.MockSettings{DateOfBirth: &dob, SharingPreference: models.SharingAskFirst},
	}

	got := renderSettings(profile, time.Date(2018, time.March, 9, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, got.Age)
	assert.Equal(t, 17, *got.Age)
	assert.False(t, *got.Over18)
	assert.Equal(t, "none", got.ParentalControls)

	got = renderSettings(&mock.Profile{}, time.Now())
	assert.Nil(t, got.Age)
	assert.Empty(t, got.DateOfBirth)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("AGERANGE_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("AGERANGE_TEST_VALUE", "")
	os.Unsetenv("AGERANGE_TEST_VALUE")

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("AGERANGE_TEST_VALUE"))

	assert.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))
	assert.NoError(t, loadEnvFile(""))
}

func execute(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.ExecuteContext(context.Background())
	return out.Bytes(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
