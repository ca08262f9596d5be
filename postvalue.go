// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// parsePostValue is reached after any scalar or closing token, while a
// container remains open. It reports (emitted, done, err): done is false
// after consuming a comma, and at the end of input (after moving to
// Finished); the caller's dispatch loop then continues with the new state
// without returning to the caller of Read.
func (r *Reader) parsePostValue() (emitted bool, done bool, err error) {
	if err := r.skipWhitespace(); err != nil {
		return false, true, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, true, err
		}
		r.state = Finished
		return false, false, nil
	}

	switch c := r.win.cur(); c {
	case '}':
		if top, ok := r.top(); !ok || top != containerObject {
			return false, true, r.fail(UnexpectedCharacter, "unexpected '}'")
		}
		r.win.advance()
		r.setToken(Token{kind: EndObject})
		return true, true, nil

	case ']':
		if top, ok := r.top(); !ok || top != containerArray {
			return false, true, r.fail(UnexpectedCharacter, "unexpected ']'")
		}
		r.win.advance()
		r.setToken(Token{kind: EndArray})
		return true, true, nil

	case ')':
		if top, ok := r.top(); !ok || top != containerConstructor {
			return false, true, r.fail(UnexpectedCharacter, "unexpected ')'")
		}
		r.win.advance()
		r.setToken(Token{kind: EndConstructor})
		return true, true, nil

	case '/':
		emitted, err := r.parseComment()
		return emitted, true, err

	case ',':
		r.win.advance()
		r.setStateBasedOnCurrent()
		return false, false, nil

	default:
		return false, true, r.fail(UnexpectedCharacter, "unexpected character %q after value", c)
	}
}
