package eaf

import "errors"

var (
	// ErrMalformedXML means the file is not well-formed XML.
	ErrMalformedXML = errors.New("malformed XML")
	// ErrMissingTimeSlot means an annotation references a time slot that is
	// undefined or carries no time value.
	ErrMissingTimeSlot = errors.New("missing time slot reference")
	// ErrUnresolvedRef means a reference annotation points at an annotation
	// that does not exist.
	ErrUnresolvedRef = errors.New("unresolved annotation reference")
)

// ParseError is a per-file failure. It wraps the underlying cause (an I/O
// error, ErrMalformedXML, ErrMissingTimeSlot or ErrUnresolvedRef), so
// errors.Is sees through it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "parsing " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
