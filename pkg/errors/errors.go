package errors

import (
	"fmt"
	"strings"
)

// ErrorCode classifies the failure modes of the library.
type ErrorCode int

const (
	// Unknown is the zero value; wraps errors from outside the library.
	Unknown ErrorCode = iota

	// InvalidConfiguration marks engine construction failures, such as an
	// odd population size. Fatal to construction; fix the options and retry.
	InvalidConfiguration

	// InvalidEncoding marks a specimen whose length does not match the
	// phenotype's shape. The engine never produces such specimens; built-in
	// problems raise it when a caller hands them one.
	InvalidEncoding

	// InvalidInput marks malformed external input, such as a puzzle or
	// experiment file that fails to parse.
	InvalidInput

	// NotFound marks a missing record, such as an unknown run in a journal.
	NotFound

	// StorageFailed marks a journal read or write that did not complete.
	StorageFailed

	// Canceled marks an operation cut short by its context.
	Canceled
)

// Error carries a code, a human-readable message, an optional wrapped
// cause, and structured context fields.
type Error struct {
	code     ErrorCode
	message  string
	original error
	fields   Fields
}

// Fields holds structured context attached to an error.
type Fields map[string]interface{}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.message)

	if e.original != nil {
		b.WriteString(": ")
		b.WriteString(e.original.Error())
	}

	if len(e.fields) > 0 {
		b.WriteString(" [")
		for k, v := range e.fields {
			fmt.Fprintf(&b, "%s=%v ", k, v)
		}
		b.WriteString("]")
	}

	return strings.TrimSpace(b.String())
}

func (e *Error) Unwrap() error {
	return e.original
}

// Code returns the error's classification.
func (e *Error) Code() ErrorCode {
	return e.code
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) error {
	return &Error{
		code:    code,
		message: message,
	}
}

// Newf creates an error with a code and a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a code and message to an existing error. Returns nil when
// err is nil so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		code:     code,
		message:  message,
		original: err,
	}
}

// WithFields attaches structured context to an error, merging with any
// fields already present.
func WithFields(err error, fields Fields) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		merged := make(Fields, len(e.fields)+len(fields))
		for k, v := range e.fields {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}

		return &Error{
			code:     e.code,
			message:  e.message,
			original: e.original,
			fields:   merged,
		}
	}

	return &Error{
		code:     Unknown,
		message:  err.Error(),
		original: err,
		fields:   fields,
	}
}

// Is matches errors by code, so errors.Is works against a sentinel built
// with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// As supports errors.As for **Error targets.
func (e *Error) As(target interface{}) bool {
	errorPtr, ok := target.(**Error)
	if !ok {
		return false
	}
	*errorPtr = e
	return true
}

// Fields returns a copy of the structured context.
func (e *Error) Fields() Fields {
	if e.fields == nil {
		return Fields{}
	}
	fields := make(Fields, len(e.fields))
	for k, v := range e.fields {
		fields[k] = v
	}
	return fields
}
