package domain

import (
	"crypto/rand"
	"io"
	"regexp"

	"github.com/google/uuid"

	dErrors "coretypes/pkg/domain-errors"
)

// UUID is a NonEmptyString in canonical 8-4-4-4-12 hex form with version
// nibble 4 and variant nibble 8, 9, a or b. Case is preserved as given.
type UUID string

const refUUID = "UUID"

var uuidPattern = regexp.MustCompile(`(?i)^[0-9A-F]{8}-[0-9A-F]{4}-4[0-9A-F]{3}-[89AB][0-9A-F]{3}-[0-9A-F]{12}$`)

// IsUUID reports whether x is a string in canonical version 4 UUID form, in either case.
// Any value of string kind is accepted; other kinds are never formatted.
func IsUUID(x any) bool {
	s, ok := text(x)
	return ok && len(s) > 0 && uuidPattern.MatchString(s)
}

// AsUUID returns x re-typed as UUID when IsUUID(x) holds.
//
// Usage: call at trust boundaries, on values decoded from external input.
//
// Errors: returns a CodeValidation error wrapping a *ValidationError
// (matching ErrNotRefined) when x is not a UUID; no other errors are
// expected.
func AsUUID(x any) (UUID, error) {
	if !IsUUID(x) {
		return "", reject(refUUID, x)
	}
	s, _ := text(x)
	return UUID(s), nil
}

// MustUUID is AsUUID for constants and tests. It panics on failure.
func MustUUID(x any) UUID {
	return must(AsUUID(x))
}

func (u UUID) NonEmptyString() NonEmptyString { return NonEmptyString(u) }

// NewUUID returns a random version 4 UUID drawn from crypto/rand.
// It panics if the system entropy source fails, like uuid.New.
func NewUUID() UUID {
	return UUID(uuid.New().String())
}

// UUIDGenerator produces version 4 UUIDs from an injected entropy source.
// It holds no state besides the reader; it is as safe for concurrent use as
// the reader is.
type UUIDGenerator struct {
	rand io.Reader
}

// NewUUIDGenerator builds a generator reading from r.
// A nil r selects crypto/rand.
func NewUUIDGenerator(r io.Reader) *UUIDGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &UUIDGenerator{rand: r}
}

// New reads 16 bytes from the generator's source and stamps the version and
// variant bits. The result always satisfies IsUUID.
func (g *UUIDGenerator) New() (UUID, error) {
	id, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate uuid")
	}
	return UUID(id.String()), nil
}
