// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// parseComment scans a block comment starting at the current '/'. Only
// the "/* ... */" form is recognized; a trailing "//" line comment is not
// part of this grammar.
func (r *Reader) parseComment() (bool, error) {
	r.win.advance() // past '/'
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		return false, r.fail(UnexpectedEndOfInput, "unexpected end of input starting a comment")
	}
	if r.win.cur() != '*' {
		return false, r.fail(UnexpectedCharacter, "expected '*' to open a comment")
	}
	r.win.advance()

	bodyStart := r.win.pos
	for {
		if r.win.atEnd() && !r.win.ensure(0, true) {
			if err := r.checkIOError(); err != nil {
				return false, err
			}
			return false, r.fail(UnexpectedEndOfInput, "unterminated comment")
		}
		c := r.win.cur()
		if c == '*' {
			if r.win.ensure(1, true) && r.win.at(1) == '/' {
				text := string(r.win.chars[bodyStart:r.win.pos])
				r.win.advance()
				r.win.advance()
				r.setToken(Token{kind: Comment, str: text})
				return true, nil
			}
			r.win.advance()
			continue
		}
		if isLineBreak(c) {
			r.win.consumeNewline(true)
			continue
		}
		r.win.advance()
	}
}
