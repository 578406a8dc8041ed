package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"coretypes/pkg/domain"
)

type TemporalSuite struct {
	suite.Suite
}

func TestTemporalSuite(t *testing.T) {
	suite.Run(t, new(TemporalSuite))
}

func (s *TemporalSuite) TestLocalDate() {
	midnight := time.Date(2000, time.November, 22, 0, 0, 0, 0, time.UTC)

	s.Run("accepts UTC midnight", func() {
		s.True(domain.IsLocalDate(midnight))
		s.True(domain.IsLocalDate(&midnight))
	})

	s.Run("rejects any time of day", func() {
		s.False(domain.IsLocalDate(midnight.Add(22 * time.Hour)))
		s.False(domain.IsLocalDate(midnight.Add(time.Minute)))
		s.False(domain.IsLocalDate(midnight.Add(time.Second)))
		s.False(domain.IsLocalDate(midnight.Add(time.Millisecond)))
		s.False(domain.IsLocalDate(midnight.Add(time.Nanosecond)))
	})

	s.Run("judges in UTC regardless of location", func() {
		tokyo := time.FixedZone("JST", 9*60*60)
		s.True(domain.IsLocalDate(midnight.In(tokyo)))
		s.False(domain.IsLocalDate(time.Date(2000, time.November, 22, 0, 0, 0, 0, tokyo)))
	})

	s.Run("rejects non-time values", func() {
		var nilTime *time.Time
		for _, v := range []any{midnight.UnixMilli(), "2020-10-12", nil, nilTime} {
			s.False(domain.IsLocalDate(v), "%#v", v)
		}
	})

	s.Run("constructs with the same value", func() {
		d := domain.MustLocalDate(midnight)
		s.Equal(midnight, d.Time)
		s.Equal(domain.Instant{Time: midnight}, d.Instant())
	})

	s.Run("constructor fails on a timestamp", func() {
		_, err := domain.AsLocalDate(midnight.Add(22 * time.Hour))
		s.Error(err)
		_, err = domain.AsLocalDate("2020-10-12")
		s.Error(err)
	})
}

func (s *TemporalSuite) TestInstant() {
	s.Run("accepts any time value", func() {
		s.True(domain.IsInstant(time.Now()))
		s.True(domain.IsInstant(time.Time{}))
		s.True(domain.IsInstant(domain.NewLocalDate(2020, 1, 1)))
	})

	s.Run("rejects numbers and strings", func() {
		for _, v := range []any{103, "2010-11-12T13:14:15Z", nil} {
			s.False(domain.IsInstant(v), "%#v", v)
		}
		_, err := domain.AsInstant(123)
		s.Error(err)
	})

	s.Run("constructs with the same value", func() {
		t := time.Date(2000, time.November, 22, 22, 0, 0, 0, time.UTC)
		s.Equal(t, domain.MustInstant(t).Time)
	})
}

func (s *TemporalSuite) TestNewLocalDate() {
	s.Run("builds UTC midnight with zero-based months", func() {
		d := domain.NewLocalDate(2020, 3, 4)
		s.Equal(time.Date(2020, time.April, 4, 0, 0, 0, 0, time.UTC), d.Time)
		s.True(domain.IsLocalDate(d))

		s.Equal(time.January, domain.NewLocalDate(2020, 0, 1).Month())
	})

	s.Run("rolls over out-of-range fields", func() {
		s.Equal(domain.NewLocalDate(2021, 0, 1), domain.NewLocalDate(2020, 12, 1))
		s.Equal(domain.NewLocalDate(2019, 11, 1), domain.NewLocalDate(2020, -1, 1))
		s.Equal(domain.NewLocalDate(2020, 1, 29), domain.NewLocalDate(2020, 2, 0))
		s.Equal(domain.NewLocalDate(2021, 2, 1), domain.NewLocalDate(2021, 1, 29))
	})

	s.Run("LocalDateOf truncates to the UTC day", func() {
		t := time.Date(2024, time.July, 9, 23, 59, 59, 999, time.FixedZone("X", -2*60*60))
		s.Equal(domain.NewLocalDate(2024, 6, 10), domain.LocalDateOf(t))
	})
}

func (s *TemporalSuite) TestNow() {
	s.Run("reads an injected clock", func() {
		fixed := time.Date(2031, time.May, 6, 7, 8, 9, 0, time.UTC)
		now := domain.NowFrom(func() time.Time { return fixed })
		s.Equal(fixed, now.Time)
	})

	s.Run("defaults to the system clock", func() {
		before := time.Now()
		now := domain.Now()
		s.False(now.Before(before))
		s.True(domain.IsInstant(now))

		s.False(domain.NowFrom(nil).Before(before))
	})
}
