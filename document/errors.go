package document

import "errors"

// ErrInvalidDocument matches every *ParseError via errors.Is.
var ErrInvalidDocument = errors.New("document: invalid document")

// ErrNilSet is returned when exporting without a letter set.
var ErrNilSet = errors.New("document: nil letter set")

// ParseError reports a payload that cannot be imported at all.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "document: " + e.Reason + ": " + e.Err.Error()
	}
	return "document: " + e.Reason
}

// Unwrap returns the underlying decode error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInvalidDocument.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidDocument }
