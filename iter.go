package strvals

import "iter"

// Enumerator steps through a Values one element at a time.
//
//	e := v.Enumerate()
//	for e.Next() {
//		use(e.Current())
//	}
//
// Current is "" until the first successful Next.  Once the elements are
// exhausted Next keeps returning false and Current keeps its last value.
type Enumerator struct {
	values  Values
	next    int
	current string
}

// Enumerate returns an Enumerator positioned before the first element.
func (v Values) Enumerate() Enumerator {
	return Enumerator{values: v}
}

// Next advances to the next element and reports whether there was one.
func (e *Enumerator) Next() bool {
	switch e.values.kind {
	case KindEmpty:
		return false
	case KindOne:
		if e.next != 0 {
			return false
		}
		e.current = e.values.one
	case KindMany:
		if e.next >= len(e.values.many) {
			return false
		}
		e.current = e.values.many[e.next]
	default:
		panic("strvals: invalid kind " + e.values.kind.String())
	}
	e.next++
	return true
}

// Current returns the element at the enumerator's position.
func (e *Enumerator) Current() string {
	return e.current
}

// Reset moves the enumerator back before the first element.
func (e *Enumerator) Reset() {
	e.next = 0
	e.current = ""
}

// All returns an iterator over the elements of v in order.
func (v Values) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		e := v.Enumerate()
		for e.Next() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}

// Indexed returns an iterator over index/element pairs of v.
func (v Values) Indexed() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for s := range v.All() {
			if !yield(i, s) {
				return
			}
			i++
		}
	}
}
