package domain

import "regexp"

// NonEmptyString is a string of at least one byte.
type NonEmptyString string

// Email is a NonEmptyString shaped like local-part@domain.
// Invariant: the local part is dot-separated atoms or a quoted string; the
// domain is a bracketed dotted-quad or labels ending in an alphabetic label
// of two or more letters. Matching is permissive and ASCII-oriented.
type Email string

const (
	refNonEmptyString = "NonEmptyString"
	refEmail          = "Email"
)

// space is the ECMAScript whitespace class, which is wider than RE2's
// ASCII \s.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:` + space + `@"]+(\.[^<>()\[\]\\.,;:` + space + `@"]+)*)|(".+"))` +
		`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
)

// IsNonEmptyString reports whether x is a string of at least one byte.
// Any value of string kind is accepted; other kinds are never formatted.
func IsNonEmptyString(x any) bool {
	s, ok := text(x)
	return ok && len(s) > 0
}

// AsNonEmptyString returns x re-typed as NonEmptyString when IsNonEmptyString(x) holds.
//
// Usage: call at trust boundaries, on values decoded from external input.
//
// Errors: returns a CodeValidation error wrapping a *ValidationError
// (matching ErrNotRefined) when x is not a NonEmptyString; no other errors are
// expected.
func AsNonEmptyString(x any) (NonEmptyString, error) {
	s, ok := text(x)
	if !ok || len(s) == 0 {
		return "", reject(refNonEmptyString, x)
	}
	return NonEmptyString(s), nil
}

// MustNonEmptyString is AsNonEmptyString for constants and tests. It panics on failure.
func MustNonEmptyString(x any) NonEmptyString {
	return must(AsNonEmptyString(x))
}

// IsEmail reports whether x is a string shaped like local-part@domain.
func IsEmail(x any) bool {
	s, ok := text(x)
	return ok && len(s) > 0 && emailPattern.MatchString(s)
}

// AsEmail returns x as Email, or a CodeValidation error matching
// ErrNotRefined.
func AsEmail(x any) (Email, error) {
	if !IsEmail(x) {
		return "", reject(refEmail, x)
	}
	s, _ := text(x)
	return Email(s), nil
}

// MustEmail is AsEmail for constants and tests. It panics on failure.
func MustEmail(x any) Email {
	return must(AsEmail(x))
}

func (e Email) NonEmptyString() NonEmptyString { return NonEmptyString(e) }
