// Package errs defines the error taxonomy shared by the region, blob and nbt packages.
//
// Every decoding failure caused by malformed input is reported as a *FormatError
// whose Kind is one of the sentinel errors below. Both the kind and ErrFormat can be
// matched with errors.Is:
//
//	_, err := region.Read(data)
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // the location table points past the end of the file
//	}
//	if errors.Is(err, errs.ErrFormat) {
//	    // any malformed-input failure
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError regardless of its kind.
var ErrFormat = errors.New("malformed input")

var (
	// ErrTruncated reports a read past the end of the buffer, or a compressed stream
	// that ended before it was complete.
	ErrTruncated = errors.New("truncated input")
	// ErrOutOfBounds reports a location entry whose byte range exceeds the container.
	ErrOutOfBounds = errors.New("chunk range out of bounds")
	// ErrUnsupportedCompression reports a compression method other than zlib.
	ErrUnsupportedCompression = errors.New("unsupported compression method")
	// ErrUnknownTagKind reports a tag kind byte outside 0-12, or End where a payload is required.
	ErrUnknownTagKind = errors.New("unknown tag kind")
	// ErrInvalidUTF8 reports a name or string payload that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
	// ErrInvalidLength reports a length or count field that decodes as negative.
	ErrInvalidLength = errors.New("invalid length")
	// ErrResourceLimit reports input that exceeds the configured nesting depth or
	// single-allocation size.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// FormatError describes a malformed-input failure at a byte offset of the buffer
// being decoded. Offset is -1 when the failure has no meaningful position.
type FormatError struct {
	Kind   error
	Offset int
	Detail string
}

var _ error = (*FormatError)(nil)

// Errorf builds a *FormatError of the given kind.
func Errorf(kind error, offset int, format string, args ...any) *FormatError {
	return &FormatError{
		Kind:   kind,
		Offset: offset,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	msg := e.Kind.Error()
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes both the kind and ErrFormat to errors.Is and errors.As.
func (e *FormatError) Unwrap() []error {
	return []error{e.Kind, ErrFormat}
}
