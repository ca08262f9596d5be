// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "fmt"

// ErrorKind classifies the failures a Reader can report. It does not
// define distinct Go error types, mirroring the way Token classifies
// lexical tokens: a single concrete error type (*ReaderError) carries one
// of these kinds.
type ErrorKind byte

const (
	UnterminatedString ErrorKind = iota
	BadEscape
	UnexpectedEndOfInput
	UnexpectedCharacter
	BadIdentifier
	IntegerOverflow
	CoercionFailure
	UnexpectedToken
	TrailingGarbage
	IllegalState
	IOError
)

var errorKindName = [...]string{
	UnterminatedString:   "unterminated string",
	BadEscape:            "bad escape",
	UnexpectedEndOfInput: "unexpected end of input",
	UnexpectedCharacter:  "unexpected character",
	BadIdentifier:        "bad identifier",
	IntegerOverflow:      "integer overflow",
	CoercionFailure:      "coercion failure",
	UnexpectedToken:      "unexpected token",
	TrailingGarbage:      "trailing garbage",
	IllegalState:         "illegal state",
	IOError:              "I/O error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindName) {
		return errorKindName[k]
	}
	return "unknown error"
}

// ReaderError is the concrete error type reported by a Reader. It records
// the kind of failure, a human-readable message, and the line/column at
// which the failure was detected, mirroring the offset-carrying posError
// and the LineCol-carrying SyntaxError this design is grounded on.
type ReaderError struct {
	Kind         ErrorKind
	Message      string
	LineNumber   int
	LinePosition int

	err error // wrapped cause, if any
}

// Error satisfies the error interface.
func (e *ReaderError) Error() string {
	return fmt.Sprintf("%s at line %d, position %d: %s", e.Kind, e.LineNumber, e.LinePosition, e.Message)
}

// Unwrap supports error wrapping with errors.Is/errors.As.
func (e *ReaderError) Unwrap() error { return e.err }

func (r *Reader) fail(kind ErrorKind, msg string, args ...any) error {
	err := &ReaderError{
		Kind:         kind,
		Message:      fmt.Sprintf(msg, args...),
		LineNumber:   r.LineNumber(),
		LinePosition: r.LinePosition(),
	}
	r.state = Error
	r.err = err
	return err
}

// checkIOError reports the underlying source's I/O error, if any, as a
// ReaderError. Call this before treating an exhausted charWindow as a
// clean end of input: a genuine read failure must not be mistaken for
// EOF.
func (r *Reader) checkIOError() error {
	if err := r.win.err(); err != nil {
		return r.failWrap(IOError, err, "reading input")
	}
	return nil
}

func (r *Reader) failWrap(kind ErrorKind, cause error, msg string, args ...any) error {
	err := r.fail(kind, msg, args...).(*ReaderError)
	err.err = cause
	return err
}
