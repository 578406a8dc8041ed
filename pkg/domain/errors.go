package domain

import (
	"errors"
	"fmt"

	dErrors "coretypes/pkg/domain-errors"
)

// ErrNotRefined matches every validation failure returned by an As constructor.
var ErrNotRefined = errors.New("value does not satisfy refinement")

// ValidationError describes a value rejected by a refinement.
// Constructors return it wrapped in a dErrors.CodeValidation error;
// use errors.As to recover it.
type ValidationError struct {
	Refinement string
	Value      any
	Type       string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("value %v of type %s is not %s %s", e.Value, e.Type, article(e.Refinement), e.Refinement)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrNotRefined
}

// IsValidationFailure reports whether err came from a refinement constructor.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrNotRefined)
}

func reject(refinement string, value any) error {
	ve := &ValidationError{
		Refinement: refinement,
		Value:      value,
		Type:       typeName(value),
	}
	return dErrors.Wrap(ve, dErrors.CodeValidation, ve.Error())
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func article(name string) string {
	if name == "" {
		return "a"
	}
	switch name[0] {
	case 'A', 'E', 'I', 'O':
		return "an"
	}
	return "a"
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
