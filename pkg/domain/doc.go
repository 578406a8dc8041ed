// Package domain provides refinement types: primitives narrowed by a runtime
// predicate to a meaningful subset (an integer, a positive number, a v4 UUID,
// a calendar day, a millisecond duration).
//
// Every refinement X comes with:
//
//   - IsX(v any) bool: total predicate, never panics, no coercion.
//   - AsX(v any) (X, error): returns v re-typed as X, or a validation error.
//   - MustX(v any) X: AsX that panics, for constants and tests.
//
// Refined types are defined types over their primitive (float64, string or
// time.Time), so equality and arithmetic behave exactly as on the primitive.
// A direct conversion such as Int(10.5) compiles but bypasses validation;
// construct via AsX at trust boundaries.
//
// Numbers follow IEEE-754 double semantics: NaN and ±Inf are never refined,
// and negative zero is non-negative but not positive.
//
// Usage:
//
//	n, err := domain.AsPositiveInt(payload["count"])
//	if err != nil {
//	    return err // dErrors.CodeValidation
//	}
//	timeout := domain.DurationOf(30, domain.Seconds)
//	day := domain.NewLocalDate(2024, 1, 29) // February 29, months are 0-based
//
// Domain purity: apart from NewUUID and Now, nothing here performs I/O or
// reads the clock. Both have injectable counterparts (UUIDGenerator, NowFrom).
package domain
