// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "io"

// readMode biases how the next scalar token is materialized. It is set by
// a typed Read* adapter for the duration of a single top-level call and
// reset to modeRead on entry to any Read*.
type readMode byte

const (
	modeRead readMode = iota
	modeReadAsInt32
	modeReadAsDecimal
	modeReadAsBytes
	modeReadAsDateTimeOffset
)

// Reader is a streaming, forward-only lexical reader over a permissive
// superset of JSON. A Reader must not be used from more than one
// goroutine at a time; distinct Readers over distinct sources are
// independent.
type Reader struct {
	win *charWindow
	buf stringBuffer

	src        io.Reader
	closeInput bool
	locale     Locale

	state ReaderState
	stack []container

	mode readMode
	cur  Token
	err  error
}

// NewReader constructs a Reader that consumes input from src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		win:    newCharWindow(src),
		src:    src,
		locale: invariantLocale{},
		state:  Start,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Token returns a snapshot of the most recently read token.
func (r *Reader) Token() Token { return r.cur }

// Kind reports the Kind of the most recently read token.
func (r *Reader) Kind() Kind { return r.cur.kind }

// HasLineInfo reports whether the reader tracks line/column information.
// Always true.
func (r *Reader) HasLineInfo() bool { return true }

// LineNumber reports the 1-based line of the most recently consumed byte.
// After Close it reports 0.
func (r *Reader) LineNumber() int {
	if r.win == nil {
		return 0
	}
	return r.win.line
}

// LinePosition reports the number of bytes consumed since the start of the
// current line, i.e. the 0-based column of the next byte. After Close it
// reports 0.
func (r *Reader) LinePosition() int {
	if r.win == nil {
		return 0
	}
	return r.win.column()
}

// CurrentState reports the reader's position within the container/value
// structure of the input.
func (r *Reader) CurrentState() ReaderState { return r.state }

// Err returns the error that put the reader into the Error state, if any.
func (r *Reader) Err() error { return r.err }

// Close transitions the reader to the Closed state and releases its
// internal buffers. If CloseInput was enabled and the upstream source
// implements io.Closer, Close propagates to it.
func (r *Reader) Close() error {
	if r.state == Closed {
		return nil
	}
	r.state = Closed
	r.buf.buf = nil
	r.win = nil
	if r.closeInput {
		if c, ok := r.src.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}

// Read advances the reader to the next token and reports whether one was
// produced. At the end of input it returns (false, nil); a malformed
// input returns (false, non-nil error) and leaves the reader in the Error
// state, where all further reads return (false, nil) without side
// effects.
func (r *Reader) Read() (bool, error) {
	r.mode = modeRead
	return r.readInternal()
}

// readInternal is the top-level dispatch loop, grounded on the teacher's
// Scanner.Next state dispatch and Stream's container-balance bookkeeping,
// folded into a single type because Go has no base-class delegation for a
// shared container-state contract.
func (r *Reader) readInternal() (bool, error) {
	for {
		switch r.state {
		case Start, Property, Array, ArrayStart, Constructor, ConstructorStart:
			return r.parseValue()

		case Object, ObjectStart:
			return r.parseObject()

		case PostValue:
			emitted, done, err := r.parsePostValue()
			if err != nil {
				return false, err
			}
			if done {
				return emitted, nil
			}
			continue

		case Finished:
			return r.parseFinished()

		case Complete, Closed, Error:
			return false, nil

		default:
			return false, r.fail(IllegalState, "invalid reader state %v", r.state)
		}
	}
}

// parseFinished is reached once the top-level value (and any enclosing
// containers) has been fully consumed. Only trailing whitespace and block
// comments are legal from here on.
func (r *Reader) parseFinished() (bool, error) {
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		r.state = Complete
		return false, nil
	}
	if r.win.cur() == '/' {
		return r.parseComment()
	}
	return false, r.fail(TrailingGarbage, "additional text encountered after finished reading JSON content")
}

// skipWhitespace consumes runs of space/tab/CR/LF, refilling as needed. It
// does not consume comments.
func (r *Reader) skipWhitespace() error {
	for {
		if r.win.atEnd() {
			if !r.win.ensure(0, true) {
				return nil
			}
		}
		c := r.win.cur()
		if isLineBreak(c) {
			r.win.consumeNewline(true)
			continue
		}
		if isSpace(c) {
			r.win.advance()
			continue
		}
		return nil
	}
}

// push opens a new container and sets the corresponding *Start state.
func (r *Reader) push(c container, start ReaderState) {
	r.stack = append(r.stack, c)
	r.state = start
}

// pop closes the innermost container and moves to PostValue or Finished.
func (r *Reader) pop() {
	if len(r.stack) > 0 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	r.setStateAfterValue()
}

// top reports the innermost open container; the second result is false if
// the stack is empty (we are at the top level).
func (r *Reader) top() (container, bool) {
	if len(r.stack) == 0 {
		return 0, false
	}
	return r.stack[len(r.stack)-1], true
}

// setStateAfterValue moves the reader to PostValue if a container is
// still open, or Finished at the top level. This is the Go stand-in for
// the original base class's implicit state transition after any scalar
// or End* token.
func (r *Reader) setStateAfterValue() {
	if len(r.stack) == 0 {
		r.state = Finished
	} else {
		r.state = PostValue
	}
}

// setStateBasedOnCurrent returns to the expecting-element state for the
// innermost open container, the Go stand-in for the base class's
// SetStateBasedOnCurrent, invoked after a comma is consumed in PostValue.
func (r *Reader) setStateBasedOnCurrent() {
	c, ok := r.top()
	if !ok {
		r.state = Finished
		return
	}
	switch c {
	case containerObject:
		r.state = Object
	case containerArray:
		r.state = Array
	case containerConstructor:
		r.state = Constructor
	}
}

// setToken records tok as the current token and advances the reader
// state. Structural tokens open or close containers; PropertyName moves
// to Property; Comment leaves the state untouched; any other kind is a
// scalar value and moves to PostValue/Finished.
func (r *Reader) setToken(tok Token) {
	r.cur = tok
	switch tok.kind {
	case StartObject:
		r.push(containerObject, ObjectStart)
	case StartArray:
		r.push(containerArray, ArrayStart)
	case StartConstructor:
		r.push(containerConstructor, ConstructorStart)
	case EndObject, EndArray, EndConstructor:
		r.pop()
	case PropertyName:
		r.state = Property
	case Comment:
		// Comments are a side channel; they do not affect container state.
	default:
		r.setStateAfterValue()
	}
}
