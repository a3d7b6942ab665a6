package urlq

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrParse indicates a raw query string that could not be decoded.
	ErrParse = errors.New("malformed query")

	// ErrBind indicates a parameter value that could not be converted
	// to its target field type.
	ErrBind = errors.New("bind failed")

	// ErrUnsupportedKind indicates a tagged struct field whose type the
	// binder cannot handle.
	ErrUnsupportedKind = errors.New("unsupported field kind")
)

// ParseError reports the query segment that failed to decode.
// It unwraps to ErrParse.
type ParseError struct {
	Err     error  // Underlying sentinel error (ErrParse)
	Segment string // Raw "key=value" segment that failed
	Cause   error  // Original error from escape decoding
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: segment %q: %v", e.Err.Error(), e.Segment, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for escape decoding failures.
func newParseError(segment string, cause error) error {
	return &ParseError{
		Err:     ErrParse,
		Segment: segment,
		Cause:   cause,
	}
}

// BindError reports which struct field failed during binding.
// It unwraps to its sentinel (ErrBind or ErrUnsupportedKind).
type BindError struct {
	Err   error  // Underlying sentinel error
	Field string // Struct field name that failed
	Cause error  // Original conversion error, if any
}

func (e *BindError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: field %s: %v", e.Err.Error(), e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: field %s", e.Err.Error(), e.Field)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// newBindError creates a BindError for field conversion failures.
func newBindError(sentinel error, field string, cause error) error {
	return &BindError{
		Err:   sentinel,
		Field: field,
		Cause: cause,
	}
}
