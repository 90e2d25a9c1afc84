package strvals

// Equal reports whether a and b hold the same canonical sequence: same
// length and byte-equal strings at every position.  Empty equals Empty
// only; it does not equal FromString("").
func Equal(a, b Values) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	switch a.kind {
	case KindEmpty:
		return true
	case KindOne:
		return a.one == b.at(0)
	case KindMany:
		for i, s := range a.many {
			if s != b.at(i) {
				return false
			}
		}
		return true
	default:
		panic("strvals: invalid kind " + a.kind.String())
	}
}

// NotEqual is !Equal(a, b).
func NotEqual(a, b Values) bool {
	return !Equal(a, b)
}

// Equal reports whether v and o hold the same canonical sequence.
func (v Values) Equal(o Values) bool {
	return Equal(v, o)
}

// EqualString reports whether v is exactly the single string s.
func (v Values) EqualString(s string) bool {
	return Equal(v, FromString(s))
}

// EqualStrings reports whether v holds exactly the elements of a, in
// order.  A nil or empty a equals Empty.
func (v Values) EqualStrings(a []string) bool {
	return Equal(v, FromSlice(a))
}

// EqualAny compares v with o after converting o to Values.  o may be
// anything Equals accepts; any other type is unequal.
func (v Values) EqualAny(o any) bool {
	ov, ok := asValues(o)
	return ok && Equal(v, ov)
}

// Equals compares two operands in either order.  Each may be a Values,
// *Values, PreEncoded, string, *string, []string, or nil; nil and a nil
// *string or *Values stand for Empty.  Operands of any other type are
// never equal to anything.
func Equals(a, b any) bool {
	av, ok := asValues(a)
	if !ok {
		return false
	}
	bv, ok := asValues(b)
	if !ok {
		return false
	}
	return Equal(av, bv)
}

func asValues(o any) (Values, bool) {
	switch t := o.(type) {
	case nil:
		return Empty, true
	case Values:
		return t, true
	case *Values:
		if t == nil {
			return Empty, true
		}
		return *t, true
	case PreEncoded:
		return t.values, true
	case *PreEncoded:
		if t == nil {
			return Empty, true
		}
		return t.values, true
	case string:
		return FromString(t), true
	case *string:
		return FromStringPtr(t), true
	case []string:
		return FromSlice(t), true
	default:
		return Empty, false
	}
}
