package strvals

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// PreEncodedSource is implemented by anything that may carry an encoded
// form of its value.  Writers on a hot path check it before encoding.
type PreEncodedSource interface {
	TryGetPreEncoded() (encoded []byte, enc encoding.Encoding, ok bool)
}

var (
	_ PreEncodedSource = Values{}
	_ PreEncodedSource = PreEncoded{}
)

// TryGetPreEncoded always reports ok=false for a plain Values: encoding
// only ever happens in NewPreEncoded.
func (Values) TryGetPreEncoded() ([]byte, encoding.Encoding, bool) {
	return nil, nil, false
}

// PreEncoded is a Values together with the bytes of its String() form in
// one text encoding.  The bytes are computed once, by NewPreEncoded.
type PreEncoded struct {
	values  Values
	encoded []byte
	enc     encoding.Encoding
}

// NewPreEncoded encodes v.String() with enc.  Empty v or a nil enc is an
// ERR_REQUIRED_VALUE_MISSING error.  A single empty string is accepted and
// encodes to a non-nil zero-length buffer.
func NewPreEncoded(v Values, enc encoding.Encoding) (PreEncoded, error) {
	if v.Len() == 0 {
		return PreEncoded{}, newErr(ErrCodeRequiredValueMissing, "values must not be empty")
	}
	if enc == nil {
		return PreEncoded{}, newErr(ErrCodeRequiredValueMissing, "encoding must not be nil")
	}
	b, err := Encode(v, enc)
	if err != nil {
		return PreEncoded{}, err
	}
	return PreEncoded{values: v, encoded: b, enc: enc}, nil
}

// Values returns the wrapped Values.
func (p PreEncoded) Values() Values {
	return p.values
}

// String returns the wrapped Values' String form.
func (p PreEncoded) String() string {
	return p.values.String()
}

// TryGetPreEncoded returns the cached bytes and the encoding they were
// produced with.  Every call returns the same slice; it must not be
// modified.  ok is false only for the zero PreEncoded.
func (p PreEncoded) TryGetPreEncoded() ([]byte, encoding.Encoding, bool) {
	if p.enc == nil {
		return nil, nil, false
	}
	return p.encoded, p.enc, true
}

// Encode returns v.String() in enc.  Runes enc cannot represent are
// replaced with its replacement character rather than failing.  The
// result is never nil.
func Encode(v Values, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return nil, newErr(ErrCodeRequiredValueMissing, "encoding must not be nil")
	}
	s := v.String()
	if s == "" {
		return []byte{}, nil
	}
	b, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, newErr(ErrCodeEncoding, err.Error())
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// LookupEncoding returns the encoding registered with IANA under name,
// e.g. "US-ASCII", "ISO-8859-1" or "UTF-8".  Matching is
// case-insensitive.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, newErr(ErrCodeEncoding, "unknown charset "+name)
	}
	if enc == nil {
		return nil, newErr(ErrCodeEncoding, "unsupported charset "+name)
	}
	return enc, nil
}
