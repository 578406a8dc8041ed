package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"coretypes/pkg/domain"
)

type TextSuite struct {
	suite.Suite
}

func TestTextSuite(t *testing.T) {
	suite.Run(t, new(TextSuite))
}

type label string

func (s *TextSuite) TestNonEmptyString() {
	s.Run("accepts any string with content", func() {
		s.True(domain.IsNonEmptyString("allo"))
		s.True(domain.IsNonEmptyString(" "))
		s.True(domain.IsNonEmptyString(label("custom string type")))
	})

	s.Run("rejects empty and non-string values", func() {
		for _, v := range []any{"", nil, []any{}, []byte("bytes"), 1, true, func() string { return "x" }} {
			s.False(domain.IsNonEmptyString(v), "%#v", v)
		}
	})

	s.Run("constructs with the same value", func() {
		s.Equal(domain.NonEmptyString("YipeeKaiYai"), domain.MustNonEmptyString("YipeeKaiYai"))
	})

	s.Run("constructor fails on empty string", func() {
		_, err := domain.AsNonEmptyString("")
		s.Require().Error(err)

		var ve *domain.ValidationError
		s.Require().True(errors.As(err, &ve))
		s.Equal("NonEmptyString", ve.Refinement)
		s.Equal("", ve.Value)
		s.Equal("string", ve.Type)
	})
}

func (s *TextSuite) TestEmail() {
	s.Run("accepts common addresses", func() {
		for _, v := range []string{
			"paulhollywood@gmail.com",
			"paul.hollyword@gmail.com",
			"cool_katz1@gmail.com",
			"first+tag@sub.example.co.uk",
			`"very unusual"@example.org`,
			"user@[192.168.0.1]",
		} {
			s.True(domain.IsEmail(v), v)
		}
	})

	s.Run("rejects malformed addresses", func() {
		for _, v := range []string{
			"cool_katz1@gmail",
			"",
			"rutabega",
			"aethelred.com",
			"two@@example.com",
			".leading@example.com",
			"double..dot@example.com",
			"space in@example.com",
			"nbsp\u00a0in@example.com",
			"user@example.c",
			"user@example.c0m",
			"user@[192.168.0]",
		} {
			s.False(domain.IsEmail(v), v)
		}
	})

	s.Run("rejects non-strings including callables", func() {
		for _, v := range []any{nil, 42, func() string { return "aethelred@gmail.com" }} {
			s.False(domain.IsEmail(v))
		}
		_, err := domain.AsEmail(func() string { return "aethelred@gmail" })
		s.Error(err)
	})

	s.Run("constructs and widens", func() {
		e := domain.MustEmail("aethelred@gmail.com")
		s.Equal(domain.Email("aethelred@gmail.com"), e)
		s.Equal(domain.NonEmptyString("aethelred@gmail.com"), e.NonEmptyString())
	})
}
