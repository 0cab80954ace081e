package codec

import (
	"errors"
	"fmt"
)

// Kind classifies a decode failure.
type Kind int

const (
	MalformedCount Kind = iota + 1
	MalformedRecord
	NumberFormat
)

func (k Kind) String() string {
	switch k {
	case MalformedCount:
		return "malformed count"
	case MalformedRecord:
		return "malformed record"
	case NumberFormat:
		return "number format"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching by kind.
var (
	ErrMalformedCount  = &DecodeError{Kind: MalformedCount}
	ErrMalformedRecord = &DecodeError{Kind: MalformedRecord}
	ErrNumberFormat    = &DecodeError{Kind: NumberFormat}
)

// DecodeError describes why a party file could not be decoded. Line is
// 1-based; zero means the error is not tied to a line.
type DecodeError struct {
	Kind Kind
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches any DecodeError of the same Kind.
func (e *DecodeError) Is(target error) bool {
	var t *DecodeError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func decodeErr(kind Kind, line int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Line: line, Err: fmt.Errorf(format, args...)}
}
