package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite covers the calendar arithmetic behind mock settings descriptions.
// Invariant: the birthday itself counts as the new age.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *AgeSuite) TestAgeOn() {
	s.Run("birthday counts", func() {
		s.Equal(18, AgeOn(date(2000, 1, 15), date(2018, 1, 15)))
	})

	s.Run("day before birthday", func() {
		s.Equal(17, AgeOn(date(2000, 1, 15), time.Date(2018, 1, 14, 23, 59, 59, 0, time.UTC)))
	})

	s.Run("child in the mock child range", func() {
		s.Equal(10, AgeOn(date(2015, 6, 1), date(2025, 11, 1)))
	})

	s.Run("reference before birth yields zero", func() {
		s.Equal(0, AgeOn(date(2020, 1, 1), date(2019, 1, 1)))
	})

	s.Run("Feb 29 birthday turns over on Mar 1", func() {
		s.Equal(17, AgeOn(date(2000, 2, 29), date(2018, 2, 28)))
		s.Equal(18, AgeOn(date(2000, 2, 29), date(2018, 3, 1)))
	})
}

func (s *AgeSuite) TestIsAtLeast() {
	birth := date(2010, 4, 10)

	s.True(IsAtLeast(birth, date(2023, 4, 10), 13))
	s.False(IsAtLeast(birth, date(2023, 4, 9), 13))
	s.True(IsAtLeast(birth, date(2025, 4, 10), 15))
	s.True(IsAtLeast(birth, birth, 0))
}

func (s *AgeSuite) TestIsOver18() {
	s.Run("exactly 18th birthday", func() {
		s.True(IsOver18(date(2000, 1, 15), date(2018, 1, 15)))
	})

	s.Run("17 years old", func() {
		s.False(IsOver18(date(2000, 6, 15), date(2017, 6, 15)))
	})

	s.Run("timezones are normalised to UTC", func() {
		pst := time.FixedZone("PST", -8*60*60)
		birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, pst)
		now := time.Date(2018, 1, 15, 8, 0, 0, 0, time.UTC)
		s.True(IsOver18(birthDate, now))
	})
}
