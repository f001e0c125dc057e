package mock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"agerange/internal/agerange/models"
	dErrors "agerange/pkg/domain-errors"
)

// Profile is a mock configuration loaded from YAML:
//
//	scenario: sharing_child
//	settings:
//	  date_of_birth: 2015-06-01
//	  sharing_preference: ask_first
//	  parental_controls: [content_restrictions, screen_time_limits]
type Profile struct {
	Scenario Scenario
	Settings models.MockSettings
}

type profileFile struct {
	Scenario string `yaml:"scenario"`
	Settings struct {
		DateOfBirth       string   `yaml:"date_of_birth"`
		SharingPreference string   `yaml:"sharing_preference"`
		ParentalControls  []string `yaml:"parental_controls"`
	} `yaml:"settings"`
}

const dateOfBirthLayout = "2006-01-02"

// LoadProfile reads and parses the profile at path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("mock profile %s not found", path))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("read mock profile %s", path))
	}
	profile, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("parse mock profile %s: %w", path, err)
	}
	return profile, nil
}

// ParseProfile decodes profile YAML. An omitted scenario means DefaultScenario
// and an omitted sharing preference means ask_first.
func ParseProfile(data []byte) (*Profile, error) {
	var raw profileFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("invalid mock profile yaml: %v", err))
	}

	profile := &Profile{Scenario: DefaultScenario}
	if raw.Scenario != "" {
		s, err := ParseScenario(raw.Scenario)
		if err != nil {
			return nil, err
		}
		profile.Scenario = s
	}

	if raw.Settings.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthLayout, raw.Settings.DateOfBirth)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("date_of_birth %q must be YYYY-MM-DD", raw.Settings.DateOfBirth))
		}
		profile.Settings.DateOfBirth = &dob
	}

	profile.Settings.SharingPreference = models.SharingAskFirst
	if raw.Settings.SharingPreference != "" {
		pref, err := models.ParseSharingPreference(raw.Settings.SharingPreference)
		if err != nil {
			return nil, err
		}
		profile.Settings.SharingPreference = pref
	}

	controls, err := models.ParseParentalControls(raw.Settings.ParentalControls)
	if err != nil {
		return nil, err
	}
	profile.Settings.ActiveParentalControls = controls

	return profile, nil
}
