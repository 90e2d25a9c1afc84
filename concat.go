package strvals

// Concat returns the elements of a followed by the elements of b.  Empty
// is the identity on either side, in which case the other operand is
// returned as is.  Otherwise the result gets one fresh slice of
// a.Len()+b.Len() elements; neither operand is modified.
func Concat(a, b Values) Values {
	na, nb := a.Len(), b.Len()
	if na == 0 {
		return b
	}
	if nb == 0 {
		return a
	}
	out := make([]string, na+nb)
	_ = a.CopyTo(out, 0)  // sized above, cannot fail
	_ = b.CopyTo(out, na) // sized above, cannot fail
	return Values{kind: KindMany, many: out}
}

// AppendString returns v followed by s.
func AppendString(v Values, s string) Values {
	return Concat(v, FromString(s))
}

// PrependString returns s followed by v.
func PrependString(s string, v Values) Values {
	return Concat(FromString(s), v)
}
