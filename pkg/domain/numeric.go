package domain

// Int is a finite number without a fractional part.
type Int float64

// PositiveNumber is a finite number strictly greater than zero.
// Negative zero is not positive.
type PositiveNumber float64

// NonNegativeNumber is a PositiveNumber or zero of either sign.
type NonNegativeNumber float64

// NegativeNumber is a finite number strictly less than zero.
type NegativeNumber float64

// PositiveInt is an Int that is also a PositiveNumber.
type PositiveInt float64

// NonNegativeInt is an Int that is also a NonNegativeNumber.
type NonNegativeInt float64

// NegativeInt is an Int that is also a NegativeNumber.
type NegativeInt float64

const (
	refInt               = "Int"
	refPositiveNumber    = "PositiveNumber"
	refNonNegativeNumber = "NonNegativeNumber"
	refNegativeNumber    = "NegativeNumber"
	refPositiveInt       = "PositiveInt"
	refNonNegativeInt    = "NonNegativeInt"
	refNegativeInt       = "NegativeInt"
)

// IsInt reports whether x is a finite number with no fractional part.
// Any Go integer or float kind is accepted; strings are never parsed.
func IsInt(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && integral(f)
}

// AsInt returns x re-typed as Int when IsInt(x) holds.
//
// Usage: call at trust boundaries, on values decoded from external input.
//
// Errors: returns a CodeValidation error wrapping a *ValidationError
// (matching ErrNotRefined) when x is not an Int; no other errors are
// expected.
func AsInt(x any) (Int, error) {
	if !IsInt(x) {
		return 0, reject(refInt, x)
	}
	f, _ := number(x)
	return Int(f), nil
}

// MustInt is AsInt for constants and tests. It panics on failure.
func MustInt(x any) Int {
	return must(AsInt(x))
}

// IsPositiveNumber reports whether x is a finite number greater than zero.
func IsPositiveNumber(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && f > 0
}

// AsPositiveNumber returns x as PositiveNumber, or a CodeValidation error matching
// ErrNotRefined.
func AsPositiveNumber(x any) (PositiveNumber, error) {
	if !IsPositiveNumber(x) {
		return 0, reject(refPositiveNumber, x)
	}
	f, _ := number(x)
	return PositiveNumber(f), nil
}

// MustPositiveNumber is AsPositiveNumber for constants and tests. It panics on failure.
func MustPositiveNumber(x any) PositiveNumber {
	return must(AsPositiveNumber(x))
}

// IsNonNegativeNumber accepts both signed zeros, unlike IsPositiveNumber
// which rejects -0.
func IsNonNegativeNumber(x any) bool {
	if IsPositiveNumber(x) {
		return true
	}
	f, ok := number(x)
	return ok && f == 0
}

// AsNonNegativeNumber returns x as NonNegativeNumber, or a CodeValidation error matching
// ErrNotRefined.
func AsNonNegativeNumber(x any) (NonNegativeNumber, error) {
	if !IsNonNegativeNumber(x) {
		return 0, reject(refNonNegativeNumber, x)
	}
	f, _ := number(x)
	return NonNegativeNumber(f), nil
}

// MustNonNegativeNumber is AsNonNegativeNumber for constants and tests. It panics on failure.
func MustNonNegativeNumber(x any) NonNegativeNumber {
	return must(AsNonNegativeNumber(x))
}

// IsNegativeNumber reports whether x is a finite number less than zero.
func IsNegativeNumber(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && f < 0
}

// AsNegativeNumber returns x as NegativeNumber, or a CodeValidation error matching
// ErrNotRefined.
func AsNegativeNumber(x any) (NegativeNumber, error) {
	if !IsNegativeNumber(x) {
		return 0, reject(refNegativeNumber, x)
	}
	f, _ := number(x)
	return NegativeNumber(f), nil
}

// MustNegativeNumber is AsNegativeNumber for constants and tests. It panics on failure.
func MustNegativeNumber(x any) NegativeNumber {
	return must(AsNegativeNumber(x))
}

// The integer intersections re-test the sign inequality directly instead of
// composing the sign predicates; results agree with the composition.

func IsPositiveInt(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && f > 0 && integral(f)
}

// AsPositiveInt returns x as PositiveInt, or a CodeValidation error matching
// ErrNotRefined.
func AsPositiveInt(x any) (PositiveInt, error) {
	if !IsPositiveInt(x) {
		return 0, reject(refPositiveInt, x)
	}
	f, _ := number(x)
	return PositiveInt(f), nil
}

// MustPositiveInt is AsPositiveInt for constants and tests. It panics on failure.
func MustPositiveInt(x any) PositiveInt {
	return must(AsPositiveInt(x))
}

// IsNonNegativeInt reports whether x is both an Int and a NonNegativeNumber.
func IsNonNegativeInt(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && f >= 0 && integral(f)
}

// AsNonNegativeInt returns x as NonNegativeInt, or a CodeValidation error matching
// ErrNotRefined.
func AsNonNegativeInt(x any) (NonNegativeInt, error) {
	if !IsNonNegativeInt(x) {
		return 0, reject(refNonNegativeInt, x)
	}
	f, _ := number(x)
	return NonNegativeInt(f), nil
}

// MustNonNegativeInt is AsNonNegativeInt for constants and tests. It panics on failure.
func MustNonNegativeInt(x any) NonNegativeInt {
	return must(AsNonNegativeInt(x))
}

// IsNegativeInt reports whether x is both an Int and a NegativeNumber.
func IsNegativeInt(x any) bool {
	f, ok := number(x)
	return ok && finite(f) && f < 0 && integral(f)
}

// AsNegativeInt returns x as NegativeInt, or a CodeValidation error matching
// ErrNotRefined.
func AsNegativeInt(x any) (NegativeInt, error) {
	if !IsNegativeInt(x) {
		return 0, reject(refNegativeInt, x)
	}
	f, _ := number(x)
	return NegativeInt(f), nil
}

// MustNegativeInt is AsNegativeInt for constants and tests. It panics on failure.
func MustNegativeInt(x any) NegativeInt {
	return must(AsNegativeInt(x))
}

// Widening conversions. Each follows a lattice edge, so no check is needed.

func (n PositiveNumber) NonNegativeNumber() NonNegativeNumber { return NonNegativeNumber(n) }

func (n PositiveInt) Int() Int                             { return Int(n) }
func (n PositiveInt) PositiveNumber() PositiveNumber       { return PositiveNumber(n) }
func (n PositiveInt) NonNegativeInt() NonNegativeInt       { return NonNegativeInt(n) }
func (n PositiveInt) NonNegativeNumber() NonNegativeNumber { return NonNegativeNumber(n) }

func (n NonNegativeInt) Int() Int                             { return Int(n) }
func (n NonNegativeInt) NonNegativeNumber() NonNegativeNumber { return NonNegativeNumber(n) }

func (n NegativeInt) Int() Int                       { return Int(n) }
func (n NegativeInt) NegativeNumber() NegativeNumber { return NegativeNumber(n) }
