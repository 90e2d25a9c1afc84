package strvals

import "github.com/goccy/go-json"

// MarshalJSON encodes Empty as null, a single value as a JSON string and
// multiple values as an array of strings.
func (v Values) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindEmpty:
		return []byte("null"), nil
	case KindOne:
		return json.Marshal(v.one)
	case KindMany:
		return json.Marshal(v.many)
	default:
		panic("strvals: invalid kind " + v.kind.String())
	}
}

// ParseJSON converts raw JSON into Values.  Accepted shapes are null, a
// string, and an array of strings; anything else is an ERR_TYPE error and
// malformed input is an ERR_JSON error.
func ParseJSON(raw []byte) (Values, error) {
	if len(raw) > MaxEncodedBytes {
		return Empty, newErr(ErrCodeLimitSize, "input exceeds MaxEncodedBytes")
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Empty, newErr(ErrCodeJSON, err.Error())
	}
	switch t := doc.(type) {
	case nil:
		return Empty, nil
	case string:
		return FromString(t), nil
	case []any:
		if len(t) > MaxValues {
			return Empty, newErr(ErrCodeLimitSize, "array length exceeds limit")
		}
		out := make([]string, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return Empty, newErr(ErrCodeType, "array element is not a string")
			}
			out[i] = s
		}
		return FromSlice(out), nil
	default:
		return Empty, newErr(ErrCodeType, "expected null, string or array of strings")
	}
}
