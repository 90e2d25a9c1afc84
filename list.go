package strvals

import "strconv"

// ReadOnlyList is the indexed-collection contract Values satisfies.  The
// mutating half exists so Values can stand in wherever a general list is
// expected; on Values every mutator fails with ERR_NOT_SUPPORTED.
type ReadOnlyList interface {
	Len() int
	Index(i int) (string, error)
	IndexOf(s string) int
	Contains(s string) bool
	CopyTo(dst []string, start int) error
	IsReadOnly() bool

	SetAt(i int, s string) error
	Insert(i int, s string) error
	RemoveAt(i int) error
	Remove(s string) (bool, error)
	Add(s string) error
	Clear() error
}

var _ ReadOnlyList = Values{}

// Index returns the i'th string.  i outside [0, Len()) is an
// ERR_INDEX_OUT_OF_RANGE error, including any i on Empty.
func (v Values) Index(i int) (string, error) {
	switch v.kind {
	case KindEmpty:
		// no valid index
	case KindOne:
		if i == 0 {
			return v.one, nil
		}
	case KindMany:
		if i >= 0 && i < len(v.many) {
			return v.many[i], nil
		}
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
	return "", newErr(ErrCodeIndexOutOfRange, "index "+strconv.Itoa(i)+" out of range [0,"+strconv.Itoa(v.Len())+")")
}

// at is Index for an i already known to be in range.
func (v Values) at(i int) string {
	if v.kind == KindOne {
		return v.one
	}
	return v.many[i]
}

// IndexOf returns the position of the first element byte-equal to s, or -1.
func (v Values) IndexOf(s string) int {
	switch v.kind {
	case KindEmpty:
		return -1
	case KindOne:
		if v.one == s {
			return 0
		}
		return -1
	case KindMany:
		for i, e := range v.many {
			if e == s {
				return i
			}
		}
		return -1
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// Contains reports whether s is an element of v.
func (v Values) Contains(s string) bool {
	return v.IndexOf(s) != -1
}

// CopyTo copies the Len() strings of v into dst starting at dst[start].
// A negative start, or too little room after it, is an
// ERR_INVALID_ARGUMENT error and dst is left untouched.
func (v Values) CopyTo(dst []string, start int) error {
	if start < 0 {
		return newErr(ErrCodeInvalidArgument, "negative start index "+strconv.Itoa(start))
	}
	n := v.Len()
	if start > len(dst) || len(dst)-start < n {
		return newErr(ErrCodeInvalidArgument, "destination too small: need "+strconv.Itoa(n)+
			" from index "+strconv.Itoa(start)+", have "+strconv.Itoa(len(dst)))
	}
	switch v.kind {
	case KindEmpty:
	case KindOne:
		dst[start] = v.one
	case KindMany:
		copy(dst[start:], v.many)
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
	return nil
}

// IsReadOnly is always true.
func (Values) IsReadOnly() bool { return true }

func (Values) SetAt(int, string) error { return errReadOnly("SetAt") }
func (Values) Insert(int, string) error { return errReadOnly("Insert") }
func (Values) RemoveAt(int) error { return errReadOnly("RemoveAt") }
func (Values) Remove(string) (bool, error) { return false, errReadOnly("Remove") }
func (Values) Add(string) error { return errReadOnly("Add") }
func (Values) Clear() error { return errReadOnly("Clear") }
