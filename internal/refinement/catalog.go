package refinement

import (
	"slices"

	"coretypes/pkg/domain"
	dErrors "coretypes/pkg/domain-errors"
	"coretypes/pkg/platform/sentinel"
)

// Catalog names, accepted as path segments and CLI arguments.
const (
	NameInt               = "int"
	NamePositiveNumber    = "positive_number"
	NameNonNegativeNumber = "non_negative_number"
	NameNegativeNumber    = "negative_number"
	NamePositiveInt       = "positive_int"
	NameNonNegativeInt    = "non_negative_int"
	NameNegativeInt       = "negative_int"
	NameNonEmptyString    = "non_empty_string"
	NameUUID              = "uuid"
	NameEmail             = "email"
	NameLocalDate         = "local_date"
	NameInstant           = "instant"
	NameDuration          = "duration"
)

// Entry binds a refinement name to its predicate and constructor.
type Entry struct {
	Name    string
	Kind    InputKind
	Is      func(any) bool
	Refine  func(any) (any, error)
	Implies []string
}

func entry[T any](name string, kind InputKind, is func(any) bool, as func(any) (T, error), implies ...string) Entry {
	return Entry{
		Name: name,
		Kind: kind,
		Is:   is,
		Refine: func(x any) (any, error) {
			v, err := as(x)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Implies: implies,
	}
}

// Catalog is the fixed set of refinements exposed by the service.
// It is immutable after construction and safe for concurrent use.
type Catalog struct {
	entries map[string]Entry
	names   []string
}

// NewCatalog builds the catalog of every supported refinement.
// Implies lists the direct widenings along the numeric lattice.
func NewCatalog() *Catalog {
	entries := []Entry{
		entry(NameInt, KindNumber, domain.IsInt, domain.AsInt),
		entry(NamePositiveNumber, KindNumber, domain.IsPositiveNumber, domain.AsPositiveNumber, NameNonNegativeNumber),
		entry(NameNonNegativeNumber, KindNumber, domain.IsNonNegativeNumber, domain.AsNonNegativeNumber),
		entry(NameNegativeNumber, KindNumber, domain.IsNegativeNumber, domain.AsNegativeNumber),
		entry(NamePositiveInt, KindNumber, domain.IsPositiveInt, domain.AsPositiveInt,
			NameInt, NamePositiveNumber, NameNonNegativeInt, NameNonNegativeNumber),
		entry(NameNonNegativeInt, KindNumber, domain.IsNonNegativeInt, domain.AsNonNegativeInt,
			NameInt, NameNonNegativeNumber),
		entry(NameNegativeInt, KindNumber, domain.IsNegativeInt, domain.AsNegativeInt, NameInt, NameNegativeNumber),
		entry(NameNonEmptyString, KindString, domain.IsNonEmptyString, domain.AsNonEmptyString),
		entry(NameUUID, KindString, domain.IsUUID, domain.AsUUID, NameNonEmptyString),
		entry(NameEmail, KindString, domain.IsEmail, domain.AsEmail, NameNonEmptyString),
		entry(NameLocalDate, KindTime, domain.IsLocalDate, domain.AsLocalDate, NameInstant),
		entry(NameInstant, KindTime, domain.IsInstant, domain.AsInstant),
		entry(NameDuration, KindNumber, domain.IsDuration, domain.AsDuration, NameNonNegativeInt),
	}

	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		c.entries[e.Name] = e
		c.names = append(c.names, e.Name)
	}
	slices.Sort(c.names)
	return c
}

// Lookup returns the entry for name. Unknown names produce a not_found
// error wrapping sentinel.ErrNotFound.
func (c *Catalog) Lookup(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "unknown refinement: "+name)
	}
	return e, nil
}

// Names returns every refinement name in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Describe returns the public descriptors in name order.
func (c *Catalog) Describe() []Descriptor {
	out := make([]Descriptor, 0, len(c.names))
	for _, name := range c.names {
		e := c.entries[name]
		out = append(out, Descriptor{Name: e.Name, Kind: e.Kind, Implies: slices.Clone(e.Implies)})
	}
	return out
}
