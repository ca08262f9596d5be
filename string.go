// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"encoding/base64"
	"unicode/utf16"

	"go4.org/mem"
)

// parseString scans a quoted string value and, once materialized, checks
// it against the "/Date(...)/ " and (under ReadAsBytes) base64 upgrade
// rules before emitting the final token.
func (r *Reader) parseString(quote byte) (bool, error) {
	ref, err := r.scanQuotedBody(quote)
	if err != nil {
		return false, err
	}
	return r.finishString(ref, quote)
}

// scanQuotedBody scans the body of a quote-delimited string (a value
// string or a quoted property name) and returns a borrowed or owned
// reference to its decoded content. It takes the zero-copy path — a
// direct borrow into the charWindow — whenever the body contains no
// escape sequences, and falls back to the stringBuffer only once a
// backslash is seen.
func (r *Reader) scanQuotedBody(quote byte) (stringRef, error) {
	r.win.advance() // past opening quote
	r.win.shiftIfNeeded()
	start := r.win.pos
	usingBuf := false
	lastCopied := start
	r.buf.reset()

	for {
		if r.win.atEnd() && !r.win.ensure(0, true) {
			if err := r.checkIOError(); err != nil {
				return stringRef{}, err
			}
			return stringRef{}, r.fail(UnterminatedString, "unterminated string literal")
		}
		c := r.win.cur()
		switch {
		case c == quote:
			var ref stringRef
			if usingBuf {
				r.buf.appendSlice(r.win.chars[lastCopied:r.win.pos])
				ref = r.buf.ref()
			} else {
				ref = stringRef{chars: mem.B(r.win.chars[start:r.win.pos])}
			}
			r.win.advance()
			return ref, nil

		case c == '\\':
			if !usingBuf {
				usingBuf = true
				r.buf.reset()
			}
			r.buf.appendSlice(r.win.chars[lastCopied:r.win.pos])
			r.win.advance() // past backslash
			if err := r.decodeEscape(); err != nil {
				return stringRef{}, err
			}
			lastCopied = r.win.pos

		case isLineBreak(c):
			r.win.consumeNewline(true)
			continue

		case c < 0x20:
			return stringRef{}, r.fail(UnexpectedCharacter, "unescaped control character %#02x in string literal", c)

		default:
			r.win.advance()
		}
	}
}

// decodeEscape decodes the escape sequence starting just past the
// backslash the caller already consumed, appending the decoded bytes to
// r.buf and advancing the window past the sequence.
func (r *Reader) decodeEscape() error {
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return err
		}
		return r.fail(UnterminatedString, "unterminated escape sequence")
	}
	c := r.win.cur()
	switch c {
	case '"', '\'', '\\', '/':
		r.buf.appendByte(c)
		r.win.advance()
	case 'b':
		r.buf.appendByte('\b')
		r.win.advance()
	case 'f':
		r.buf.appendByte('\f')
		r.win.advance()
	case 'n':
		r.buf.appendByte('\n')
		r.win.advance()
	case 'r':
		r.buf.appendByte('\r')
		r.win.advance()
	case 't':
		r.buf.appendByte('\t')
		r.win.advance()
	case 'u':
		return r.decodeUnicodeEscape()
	default:
		return r.fail(BadEscape, "invalid escape character %q", c)
	}
	return nil
}

// decodeUnicodeEscape decodes a "\uXXXX" escape, combining it with an
// immediately following "\uYYYY" low surrogate when the first unit is a
// high surrogate, so a character outside the Basic Multilingual Plane
// round-trips as a single rune rather than two replacement characters.
func (r *Reader) decodeUnicodeEscape() error {
	r.win.advance() // past 'u'
	v, err := r.readHex4()
	if err != nil {
		return err
	}
	if utf16.IsSurrogate(rune(v)) && r.win.ensure(1, true) && r.win.at(0) == '\\' && r.win.at(1) == 'u' {
		save := r.win.pos
		r.win.advance()
		r.win.advance()
		v2, err := r.readHex4()
		if err != nil {
			r.win.pos = save
		} else if combined := utf16.DecodeRune(rune(v), rune(v2)); combined != 0xFFFD {
			r.buf.appendRune(combined)
			return nil
		} else {
			r.win.pos = save
		}
	}
	r.buf.appendRune(rune(v))
	return nil
}

// readHex4 decodes exactly four hex digits at the current position and
// advances past them.
func (r *Reader) readHex4() (int, error) {
	if !r.win.ensure(3, true) {
		if err := r.checkIOError(); err != nil {
			return 0, err
		}
		return 0, r.fail(BadEscape, "incomplete unicode escape")
	}
	v := 0
	for i := 0; i < 4; i++ {
		d := r.win.at(i)
		if !isHexDigit(d) {
			return 0, r.fail(BadEscape, "invalid hex digit %q in unicode escape", d)
		}
		v = v*16 + hexDigitValue(d)
	}
	for i := 0; i < 4; i++ {
		r.win.advance()
	}
	return v, nil
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// finishString applies the read-mode upgrade rules to a fully scanned
// string body: ReadAsBytes decodes it as base64, and otherwise it is
// checked against the "/Date(...)/ " literal shape before falling back to
// a plain String token.
func (r *Reader) finishString(ref stringRef, quote byte) (bool, error) {
	if r.mode == modeReadAsBytes {
		return r.emitBytesFromString(ref)
	}
	s := ref.String()
	ms, offset, hasOffset, ok, err := parseDateLiteralBody(s)
	if err != nil {
		return false, r.failWrap(CoercionFailure, err, "malformed date literal %s", Quote(s))
	}
	if ok {
		return r.emitDateToken(ms, offset, hasOffset)
	}
	r.setToken(Token{kind: String, str: s, quoteChar: quote})
	return true, nil
}

func (r *Reader) emitBytesFromString(ref stringRef) (bool, error) {
	s := ref.String()
	if s == "" {
		r.setToken(Token{kind: Bytes, bs: []byte{}})
		return true, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return false, r.failWrap(CoercionFailure, err, "invalid base64 string %s", Quote(s))
	}
	r.setToken(Token{kind: Bytes, bs: b})
	return true, nil
}
