package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"agerange/internal/agerange/models"
	"agerange/internal/agerange/providers/mock"
	"agerange/internal/platform/config"
	"agerange/pkg/domain"
	dErrors "agerange/pkg/domain-errors"
)

type settingsOutput struct {
	Scenario          mock.Scenario                `json:"scenario"`
	DateOfBirth       string                       `json:"date_of_birth,omitempty"`
	Age               *int                         `json:"age,omitempty"`
	Over18            *bool                        `json:"over_18,omitempty"`
	SharingPreference models.MockSharingPreference `json:"sharing_preference"`
	ParentalControls  string                       `json:"parental_controls"`
}

func newSettingsCmd() *cobra.Command {
	var flagProfile string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "describe the mock settings carried by a profile",
		Long: `Prints the mock user settings from a profile file. The settings are
descriptive: scenarios alone decide what a request returns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagProfile
			if path == "" {
				path = config.FromEnv().MockProfile
			}
			if path == "" {
				return dErrors.New(dErrors.CodeInvalidInput, "--profile is required")
			}

			profile, err := mock.LoadProfile(path)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(renderSettings(profile, time.Now()))
		},
	}
	cmd.Flags().StringVar(&flagProfile, "profile", "", "mock profile YAML file (env: AGERANGE_MOCK_PROFILE)")
	return cmd
}

func renderSettings(profile *mock.Profile, now time.Time) settingsOutput {
	s := profile.Settings
	out := settingsOutput{
		Scenario:          profile.Scenario,
		SharingPreference: s.SharingPreference,
		ParentalControls:  s.ActiveParentalControls.String(),
	}
	if age, ok := s.Age(now); ok {
		over18 := domain.IsOver18(*s.DateOfBirth, now)
		out.DateOfBirth = s.DateOfBirth.Format(time.DateOnly)
		out.Age = &age
		out.Over18 = &over18
	}
	return out
}
