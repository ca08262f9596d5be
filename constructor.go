// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// parseConstructor scans a "new Name(" prefix and emits a StartConstructor
// token, opening a constructor container whose arguments are read exactly
// like array elements until the matching ')'.
func (r *Reader) parseConstructor() (bool, error) {
	if err := r.matchWordWithSeparator("new"); err != nil {
		return false, err
	}
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}

	start := r.win.pos
	for {
		if r.win.atEnd() && !r.win.ensure(0, true) {
			if err := r.checkIOError(); err != nil {
				return false, err
			}
			break
		}
		c := r.win.cur()
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) {
			r.win.advance()
			continue
		}
		break
	}
	if r.win.pos == start {
		return false, r.fail(BadIdentifier, `expected a constructor name after "new"`)
	}
	name := string(r.win.chars[start:r.win.pos])

	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		return false, r.fail(UnexpectedEndOfInput, "unexpected end of input, expected '(' after %q", name)
	}
	if r.win.cur() != '(' {
		return false, r.fail(UnexpectedCharacter, "expected '(' after constructor name %q", name)
	}
	r.win.advance()
	r.setToken(Token{kind: StartConstructor, ctor: name})
	return true, nil
}
