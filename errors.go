package strvals

import "fmt"

// Error codes.  Every error returned by this package is an *Error
// carrying one of these.
const (
	ErrCodeIndexOutOfRange      = "ERR_INDEX_OUT_OF_RANGE"
	ErrCodeNotSupported         = "ERR_NOT_SUPPORTED"
	ErrCodeInvalidArgument      = "ERR_INVALID_ARGUMENT"
	ErrCodeInvalidShape         = "ERR_INVALID_SHAPE"
	ErrCodeRequiredValueMissing = "ERR_REQUIRED_VALUE_MISSING"
	ErrCodeEncoding             = "ERR_ENCODING"
	ErrCodeBinHdr               = "ERR_BIN_HDR"
	ErrCodeBinFormat            = "ERR_BIN_FORMAT"
	ErrCodeLimitSize            = "ERR_LIMIT_SIZE"
	ErrCodeJSON                 = "ERR_JSON"
	ErrCodeType                 = "ERR_TYPE"
)

// Sentinels for errors.Is.  Matching compares codes only, so
// errors.Is(err, ErrNotSupported) holds for any ERR_NOT_SUPPORTED error.
var (
	ErrIndexOutOfRange      = &Error{Code: ErrCodeIndexOutOfRange}
	ErrNotSupported         = &Error{Code: ErrCodeNotSupported}
	ErrInvalidArgument      = &Error{Code: ErrCodeInvalidArgument}
	ErrInvalidShape         = &Error{Code: ErrCodeInvalidShape}
	ErrRequiredValueMissing = &Error{Code: ErrCodeRequiredValueMissing}
)

// Error is the error type for all strvals operations.
type Error struct {
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newErr(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// errReadOnly is shared by every mutator of the read-only list contract.
func errReadOnly(op string) *Error {
	return newErr(ErrCodeNotSupported, op+": collection is read-only")
}
