// Package strvals implements Values, a compact immutable container for
// zero, one, or many strings.
//
// Values is meant for header-like data: most keys carry exactly one
// value, so the single-value case is stored inline without allocating a
// slice.  A Values behaves as a read-only ordered sequence of strings and
// compares equal to any other representation (string, []string, Values)
// of the same canonical sequence.
//
// PreEncoded pairs a Values with a text encoding and caches its encoded
// bytes, for values that are written out verbatim many times.
//
// The zero Values is Empty.  Values is safe for concurrent use since no
// operation mutates it after construction.
package strvals

import "strings"

// Kind is the shape of a Values.
type Kind uint8

const (
	KindEmpty Kind = iota // no value
	KindOne               // a single string, stored inline
	KindMany              // two or more strings in a slice
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindOne:
		return "one"
	case KindMany:
		return "many"
	default:
		return "unknown"
	}
}

// Values is zero, one, or many strings.
//
// Exactly one payload is meaningful per kind:
//
//   - KindEmpty: neither
//   - KindOne:   one
//   - KindMany:  many (len >= 2)
type Values struct {
	kind Kind
	one  string
	many []string
}

// Empty is the Values with no elements.  It equals the zero Values.
var Empty = Values{}

// FromString returns a Values holding exactly s.  The empty string is a
// value like any other; use Empty for "no value".
func FromString(s string) Values {
	return Values{kind: KindOne, one: s}
}

// FromStringPtr is FromString for an optional string: nil yields Empty.
func FromStringPtr(s *string) Values {
	if s == nil {
		return Empty
	}
	return FromString(*s)
}

// FromSlice returns a Values over a.  A nil or empty slice yields Empty and
// a single-element slice is stored inline.  Otherwise a is retained without
// copying; callers must not modify it afterwards.
func FromSlice(a []string) Values {
	switch len(a) {
	case 0:
		return Empty
	case 1:
		return FromString(a[0])
	default:
		return Values{kind: KindMany, many: a}
	}
}

// New is FromSlice over its arguments.
func New(values ...string) Values {
	return FromSlice(values)
}

// Kind reports the shape of v.
func (v Values) Kind() Kind {
	return v.kind
}

// Len returns the number of strings in v.
func (v Values) Len() int {
	switch v.kind {
	case KindEmpty:
		return 0
	case KindOne:
		return 1
	case KindMany:
		return len(v.many)
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// Single collapses v to one string.  ok is false for Empty, which stands
// for "no value".  A multi-value set cannot be collapsed and yields an
// ERR_INVALID_SHAPE error.
func (v Values) Single() (s string, ok bool, err error) {
	switch v.kind {
	case KindEmpty:
		return "", false, nil
	case KindOne:
		return v.one, true, nil
	case KindMany:
		return "", false, newErr(ErrCodeInvalidShape, "cannot collapse multiple values to a single string")
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// ToSlice returns the canonical sequence of v.  Empty yields a non-nil
// empty slice.  For a multi-value set the backing slice itself is
// returned and must not be modified.
func (v Values) ToSlice() []string {
	switch v.kind {
	case KindEmpty:
		return []string{}
	case KindOne:
		return []string{v.one}
	case KindMany:
		return v.many
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// String joins the elements with Separator.  Empty yields "".
func (v Values) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindOne:
		return v.one
	case KindMany:
		return strings.Join(v.many, Separator)
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// IsNullOrEmpty reports whether v is Empty or holds a single empty string.
func IsNullOrEmpty(v Values) bool {
	switch v.kind {
	case KindEmpty:
		return true
	case KindOne:
		return v.one == ""
	case KindMany:
		return false
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}
