// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// parseObject scans the content of an object container at the point where
// a member name, a comment, or the closing '}' is expected.
func (r *Reader) parseObject() (bool, error) {
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		return false, r.fail(UnexpectedEndOfInput, "unexpected end of input inside object")
	}
	switch c := r.win.cur(); {
	case c == '}':
		r.win.advance()
		r.setToken(Token{kind: EndObject})
		return true, nil
	case c == '/':
		return r.parseComment()
	default:
		return r.parseProperty()
	}
}

// parseProperty scans a quoted or unquoted member name followed by ':'.
func (r *Reader) parseProperty() (bool, error) {
	c := r.win.cur()
	var name string
	var quote byte
	switch {
	case c == '"' || c == '\'':
		ref, err := r.scanQuotedBody(c)
		if err != nil {
			return false, err
		}
		name = ref.String()
		quote = c
	case isIdentPart(c):
		id, err := r.scanUnquotedIdentifier()
		if err != nil {
			return false, err
		}
		name = id
	default:
		return false, r.fail(UnexpectedCharacter, "unexpected character %q, expected a property name", c)
	}

	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		return false, r.fail(UnexpectedEndOfInput, "unexpected end of input, expected ':' after %q", name)
	}
	if r.win.cur() != ':' {
		return false, r.fail(UnexpectedCharacter, "expected ':' after property name %q", name)
	}
	r.win.advance()
	r.setToken(Token{kind: PropertyName, str: name, quoteChar: quote})
	return true, nil
}

// scanUnquotedIdentifier scans a run of [A-Za-z0-9_$] bytes, the grammar
// for a bareword object key.
func (r *Reader) scanUnquotedIdentifier() (string, error) {
	start := r.win.pos
	for {
		if r.win.atEnd() && !r.win.ensure(0, true) {
			if err := r.checkIOError(); err != nil {
				return "", err
			}
			break
		}
		if !isIdentPart(r.win.cur()) {
			break
		}
		r.win.advance()
	}
	return string(r.win.chars[start:r.win.pos]), nil
}
