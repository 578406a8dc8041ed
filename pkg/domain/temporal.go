package domain

import "time"

// LocalDate is a calendar day: a time whose UTC hour, minute, second and
// sub-second parts are all zero. It shares time.Time's representation; the
// refinement is the invariant, not a separate encoding.
type LocalDate struct {
	time.Time
}

// Instant is a point in time. Every time.Time qualifies; the type exists to
// keep instants and calendar days apart.
type Instant struct {
	time.Time
}

// Clock returns the current time.
type Clock func() time.Time

const (
	refLocalDate = "LocalDate"
	refInstant   = "Instant"
)

// IsLocalDate requires the whole time-of-day to be zero in UTC, including
// nanoseconds below the millisecond. Go times carry nanoseconds, so this is
// stricter than a millisecond-precision midnight check.
func IsLocalDate(x any) bool {
	t, ok := instant(x)
	if !ok {
		return false
	}
	u := t.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// AsLocalDate returns x re-typed as LocalDate when IsLocalDate(x) holds.
//
// Usage: call at trust boundaries, on values decoded from external input.
//
// Errors: returns a CodeValidation error wrapping a *ValidationError
// (matching ErrNotRefined) when x is not a LocalDate; no other errors are
// expected.
func AsLocalDate(x any) (LocalDate, error) {
	if !IsLocalDate(x) {
		return LocalDate{}, reject(refLocalDate, x)
	}
	t, _ := instant(x)
	return LocalDate{Time: t}, nil
}

// MustLocalDate is AsLocalDate for constants and tests. It panics on failure.
func MustLocalDate(x any) LocalDate {
	return must(AsLocalDate(x))
}

// IsInstant reports whether x is any time value. time.Time, LocalDate,
// Instant and non-nil pointers to them are accepted; strings are never parsed.
func IsInstant(x any) bool {
	_, ok := instant(x)
	return ok
}

// AsInstant returns x as Instant, or a CodeValidation error matching
// ErrNotRefined.
func AsInstant(x any) (Instant, error) {
	t, ok := instant(x)
	if !ok {
		return Instant{}, reject(refInstant, x)
	}
	return Instant{Time: t}, nil
}

// MustInstant is AsInstant for constants and tests. It panics on failure.
func MustInstant(x any) Instant {
	return must(AsInstant(x))
}

// Instant views the calendar day as the point in time of its UTC midnight.
func (d LocalDate) Instant() Instant { return Instant{Time: d.Time} }

// NewLocalDate returns UTC midnight of the given day. Month is 0-based, so
// NewLocalDate(2020, 3, 4) is April 4. Out-of-range fields roll over like
// time.Date: month 12 is January of the following year, day 0 is the last day
// of the previous month.
//
// Parts far outside the calendar overflow time.Time's internal seconds and
// the result is not a LocalDate. Callers taking parts from external input
// should bound them and check the result with AsLocalDate.
func NewLocalDate(year, month, day int) LocalDate {
	return LocalDate{Time: time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)}
}

// LocalDateOf returns the UTC calendar day containing t.
func LocalDateOf(t time.Time) LocalDate {
	u := t.UTC()
	return NewLocalDate(u.Year(), int(u.Month())-1, u.Day())
}

// Now reads the system clock.
func Now() Instant {
	return NowFrom(time.Now)
}

// NowFrom reads clock, falling back to the system clock when nil.
func NowFrom(clock Clock) Instant {
	if clock == nil {
		clock = time.Now
	}
	return Instant{Time: clock()}
}
