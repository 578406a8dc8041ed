package domain

import (
	"fmt"
	"math"
	"time"

	dErrors "coretypes/pkg/domain-errors"
)

// Duration is a NonNegativeInt counting milliseconds.
type Duration float64

// TimeUnit names the unit of an amount passed to DurationOf.
type TimeUnit string

// Short units.
const (
	Milliseconds TimeUnit = "milliseconds"
	Seconds      TimeUnit = "seconds"
	Minutes      TimeUnit = "minutes"
	Hours        TimeUnit = "hours"
)

// Long units. Months and years have no fixed length, so DurationOf
// leaves amounts in those units unconverted.
const (
	Days   TimeUnit = "days"
	Weeks  TimeUnit = "weeks"
	Months TimeUnit = "months"
	Years  TimeUnit = "years"
)

const refDuration = "Duration"

// maxMilliseconds is 2^63, the first count int64 cannot hold.
const maxMilliseconds = 0x1p63

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

var timeUnits = map[TimeUnit]bool{
	Milliseconds: true,
	Seconds:      true,
	Minutes:      true,
	Hours:        true,
	Days:         true,
	Weeks:        true,
	Months:       true,
	Years:        true,
}

// ParseTimeUnit validates a unit tag from external input.
func ParseTimeUnit(s string) (TimeUnit, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "time unit cannot be empty")
	}
	u := TimeUnit(s)
	if !u.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown time unit: %s", s))
	}
	return u, nil
}

// IsValid reports whether u is one of the known unit tags.
func (u TimeUnit) IsValid() bool {
	return timeUnits[u]
}

func (u TimeUnit) String() string {
	return string(u)
}

// IsDuration is IsNonNegativeInt under another name.
func IsDuration(x any) bool {
	return IsNonNegativeInt(x)
}

// AsDuration returns x re-typed as Duration when IsDuration(x) holds.
//
// Usage: call at trust boundaries, on values decoded from external input.
//
// Errors: returns a CodeValidation error wrapping a *ValidationError
// (matching ErrNotRefined) when x is not a Duration; no other errors are
// expected.
func AsDuration(x any) (Duration, error) {
	if !IsDuration(x) {
		return 0, reject(refDuration, x)
	}
	f, _ := number(x)
	return Duration(f), nil
}

// MustDuration is AsDuration for constants and tests. It panics on failure.
func MustDuration(x any) Duration {
	return must(AsDuration(x))
}

// DurationOf converts amount in unit to milliseconds. Milliseconds, months,
// years and unknown units return amount as is.
//
// amount is not validated: a negative or fractional amount yields a value
// that fails IsDuration. Callers holding untrusted amounts should check the
// result with AsDuration.
func DurationOf(amount float64, unit TimeUnit) Duration {
	switch unit {
	case Seconds:
		return Duration(amount * msPerSecond)
	case Minutes:
		return Duration(amount * msPerMinute)
	case Hours:
		return Duration(amount * msPerHour)
	case Days:
		return Duration(amount * msPerDay)
	case Weeks:
		return Duration(amount * msPerWeek)
	default:
		return Duration(amount)
	}
}

func (d Duration) NonNegativeInt() NonNegativeInt { return NonNegativeInt(d) }

func (n NonNegativeInt) Duration() Duration { return Duration(n) }

// Milliseconds returns the count as an integer, saturating at math.MaxInt64.
func (d Duration) Milliseconds() int64 {
	if float64(d) >= maxMilliseconds {
		return math.MaxInt64
	}
	return int64(d)
}

// Std converts to a time.Duration, saturating at its range.
func (d Duration) Std() time.Duration {
	ns := float64(d) * float64(time.Millisecond)
	switch {
	case ns >= float64(1<<63-1):
		return time.Duration(1<<63 - 1)
	case ns <= -float64(1<<63):
		return time.Duration(-1 << 63)
	}
	return time.Duration(ns)
}
