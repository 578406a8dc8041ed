package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"coretypes/pkg/domain"
	dErrors "coretypes/pkg/domain-errors"
)

type NumericSuite struct {
	suite.Suite
}

func TestNumericSuite(t *testing.T) {
	suite.Run(t, new(NumericSuite))
}

var (
	negZero = math.Copysign(0, -1)
	nan     = math.NaN()
	posInf  = math.Inf(1)
	negInf  = math.Inf(-1)
)

// nonNumbers are rejected by every numeric predicate, whatever they look like.
var nonNumbers = []any{"1", "0", "", true, false, nil, []int{1}, struct{}{}, new(float64), complex(1, 0)}

func (s *NumericSuite) assertRejectsNonNumbers(is func(any) bool) {
	for _, v := range nonNumbers {
		s.False(is(v), "%#v must not be treated as a number", v)
	}
}

func (s *NumericSuite) TestInt() {
	s.Run("accepts integral numbers", func() {
		for _, v := range []any{1.0, 0.0, -1.0, 1000.0, negZero, 3, int8(-4), uint16(9), float32(2), int64(1 << 53)} {
			s.True(domain.IsInt(v), "%#v", v)
		}
	})

	s.Run("rejects fractions and non-finite values", func() {
		for _, v := range []any{10.5, -0.25, float32(1.5), nan, posInf, negInf} {
			s.False(domain.IsInt(v), "%#v", v)
		}
	})

	s.Run("rejects non-numbers without coercion", func() {
		s.assertRejectsNonNumbers(domain.IsInt)
	})

	s.Run("rejects integers float64 cannot hold exactly", func() {
		s.False(domain.IsInt(int64(math.MaxInt64)))
		s.False(domain.IsInt(uint64(math.MaxUint64)))
		s.False(domain.IsInt(int64(1<<53 + 1)))
	})

	s.Run("constructs with the same value", func() {
		s.Equal(domain.Int(10), domain.MustInt(10.0))
		s.Equal(domain.Int(0), domain.MustInt(0))
		s.Equal(domain.Int(-10), domain.MustInt(-10))
	})

	s.Run("constructor fails with a validation error", func() {
		for _, v := range []any{10.5, "1", "0", nil, true, false, posInf, nan} {
			_, err := domain.AsInt(v)
			s.Require().Error(err, "%#v", v)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.True(domain.IsValidationFailure(err))
		}
	})

	s.Run("Must panics on rejection", func() {
		s.Panics(func() { domain.MustInt(10.5) })
	})
}

func (s *NumericSuite) TestPositiveNumber() {
	s.Run("accepts numbers above zero", func() {
		for _, v := range []any{1.0, 10.3214, 2.315463, 1, math.SmallestNonzeroFloat64} {
			s.True(domain.IsPositiveNumber(v), "%#v", v)
		}
	})

	s.Run("rejects zero of either sign", func() {
		s.False(domain.IsPositiveNumber(0.0))
		s.False(domain.IsPositiveNumber(negZero))
	})

	s.Run("rejects negatives and non-finite values", func() {
		for _, v := range []any{-1.0, -10.3214, posInf, negInf, nan} {
			s.False(domain.IsPositiveNumber(v), "%#v", v)
		}
	})

	s.Run("rejects non-numbers", func() {
		s.assertRejectsNonNumbers(domain.IsPositiveNumber)
	})

	s.Run("constructs and widens", func() {
		n := domain.MustPositiveNumber(2.315463)
		s.Equal(domain.PositiveNumber(2.315463), n)
		s.Equal(domain.NonNegativeNumber(2.315463), n.NonNegativeNumber())
	})

	s.Run("constructor rejects negative zero", func() {
		_, err := domain.AsPositiveNumber(negZero)
		s.Error(err)
	})
}

func (s *NumericSuite) TestNonNegativeNumber() {
	s.Run("accepts positives and both zeros", func() {
		for _, v := range []any{1.0, 1.2342, 0.0, negZero, 0} {
			s.True(domain.IsNonNegativeNumber(v), "%#v", v)
		}
	})

	s.Run("rejects negatives and non-finite values", func() {
		for _, v := range []any{-1.0, -1.2342, posInf, negInf, nan} {
			s.False(domain.IsNonNegativeNumber(v), "%#v", v)
		}
	})

	s.Run("rejects non-numbers", func() {
		s.assertRejectsNonNumbers(domain.IsNonNegativeNumber)
	})

	s.Run("keeps the sign of zero", func() {
		n := domain.MustNonNegativeNumber(negZero)
		s.True(math.Signbit(float64(n)))
	})
}

func (s *NumericSuite) TestNegativeNumber() {
	s.Run("accepts numbers below zero", func() {
		for _, v := range []any{-1.0, -0.5, -1e300, int32(-7)} {
			s.True(domain.IsNegativeNumber(v), "%#v", v)
		}
	})

	s.Run("rejects zero, positives and non-finite values", func() {
		for _, v := range []any{0.0, negZero, 1.0, posInf, negInf, nan} {
			s.False(domain.IsNegativeNumber(v), "%#v", v)
		}
	})

	s.Run("rejects non-numbers", func() {
		s.assertRejectsNonNumbers(domain.IsNegativeNumber)
	})

	s.Run("constructs", func() {
		s.Equal(domain.NegativeNumber(-0.5), domain.MustNegativeNumber(-0.5))
		_, err := domain.AsNegativeNumber(0)
		s.Error(err)
	})
}

func (s *NumericSuite) TestPositiveInt() {
	s.Run("accepts positive integers", func() {
		s.True(domain.IsPositiveInt(1))
		s.True(domain.IsPositiveInt(2020.0))
	})

	s.Run("rejects everything else", func() {
		for _, v := range []any{0, negZero, 11.1, -1, posInf, negInf, nan} {
			s.False(domain.IsPositiveInt(v), "%#v", v)
		}
		s.assertRejectsNonNumbers(domain.IsPositiveInt)
	})

	s.Run("widens along the lattice", func() {
		n := domain.MustPositiveInt(1)
		s.Equal(domain.Int(1), n.Int())
		s.Equal(domain.PositiveNumber(1), n.PositiveNumber())
		s.Equal(domain.NonNegativeInt(1), n.NonNegativeInt())
		s.Equal(domain.NonNegativeNumber(1), n.NonNegativeNumber())
	})
}

func (s *NumericSuite) TestNonNegativeInt() {
	s.Run("accepts zero and positive integers", func() {
		for _, v := range []any{0, 0.0, negZero, 1, 1241} {
			s.True(domain.IsNonNegativeInt(v), "%#v", v)
		}
	})

	s.Run("rejects everything else", func() {
		for _, v := range []any{-1, 1.2, -1.2, posInf, negInf, nan} {
			s.False(domain.IsNonNegativeInt(v), "%#v", v)
		}
		s.assertRejectsNonNumbers(domain.IsNonNegativeInt)
	})

	s.Run("widens along the lattice", func() {
		n := domain.MustNonNegativeInt(0)
		s.Equal(domain.Int(0), n.Int())
		s.Equal(domain.NonNegativeNumber(0), n.NonNegativeNumber())
		s.Equal(domain.Duration(0), n.Duration())
	})
}

func (s *NumericSuite) TestNegativeInt() {
	s.Run("accepts negative integers", func() {
		s.True(domain.IsNegativeInt(-1))
		s.Equal(domain.NegativeInt(-12), domain.MustNegativeInt(-12))
	})

	s.Run("rejects everything else", func() {
		for _, v := range []any{0, negZero, 1, -1.2, 1241, posInf, negInf, nan} {
			s.False(domain.IsNegativeInt(v), "%#v", v)
		}
		s.assertRejectsNonNumbers(domain.IsNegativeInt)
	})

	s.Run("widens along the lattice", func() {
		n := domain.MustNegativeInt(-1)
		s.Equal(domain.Int(-1), n.Int())
		s.Equal(domain.NegativeNumber(-1), n.NegativeNumber())
	})
}

func (s *NumericSuite) TestRefinedValuesBehaveAsPrimitives() {
	a := domain.MustPositiveInt(3)
	b := domain.MustPositiveInt(4)

	s.Equal(domain.PositiveInt(7), a+b)
	s.True(a < b)
	s.Equal(3.0, float64(a))

	seen := map[domain.Int]bool{domain.MustInt(5): true}
	s.True(seen[domain.Int(5)])
}
