// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "math"

// parseValue scans a single value at the current position: a string,
// number, literal word, comment, constructor, or structural bracket.
// Grounded on the teacher's parseElement/Next dispatch, generalized for
// the extended grammar's literal words and constructor syntax.
func (r *Reader) parseValue() (bool, error) {
	if err := r.skipWhitespace(); err != nil {
		return false, err
	}
	if r.win.atEnd() && !r.win.ensure(0, true) {
		if err := r.checkIOError(); err != nil {
			return false, err
		}
		if r.state == Start {
			r.state = Finished
			return false, nil
		}
		return false, r.fail(UnexpectedEndOfInput, "unexpected end of input while expecting a value")
	}

	c := r.win.cur()
	switch {
	case c == '"' || c == '\'':
		return r.parseString(c)

	case c == 't':
		if err := r.matchWordWithSeparator("true"); err != nil {
			return false, err
		}
		r.setToken(Token{kind: Boolean, boo: true})
		return true, nil

	case c == 'f':
		if err := r.matchWordWithSeparator("false"); err != nil {
			return false, err
		}
		r.setToken(Token{kind: Boolean, boo: false})
		return true, nil

	case c == 'n':
		if !r.win.ensure(1, true) {
			if err := r.checkIOError(); err != nil {
				return false, err
			}
			return false, r.fail(UnexpectedEndOfInput, "unexpected end of input after 'n'")
		}
		switch r.win.at(1) {
		case 'u':
			if err := r.matchWordWithSeparator("null"); err != nil {
				return false, err
			}
			r.setToken(Token{kind: Null})
			return true, nil
		case 'e':
			return r.parseConstructor()
		default:
			return false, r.fail(BadIdentifier, "unexpected identifier starting with 'n'")
		}

	case c == 'u':
		if err := r.matchWordWithSeparator("undefined"); err != nil {
			return false, err
		}
		r.setToken(Token{kind: Undefined})
		return true, nil

	case c == 'N':
		if err := r.matchWordWithSeparator("NaN"); err != nil {
			return false, err
		}
		r.setToken(Token{kind: Float, f64: math.NaN()})
		return true, nil

	case c == 'I':
		if err := r.matchWordWithSeparator("Infinity"); err != nil {
			return false, err
		}
		r.setToken(Token{kind: Float, f64: math.Inf(1)})
		return true, nil

	case c == '-':
		if r.win.ensure(1, true) && r.win.at(1) == 'I' {
			if err := r.matchWordWithSeparator("-Infinity"); err != nil {
				return false, err
			}
			r.setToken(Token{kind: Float, f64: math.Inf(-1)})
			return true, nil
		}
		return r.parseNumber()

	case isDigit(c) || c == '.':
		return r.parseNumber()

	case c == '/':
		return r.parseComment()

	case c == '{':
		r.win.advance()
		r.setToken(Token{kind: StartObject})
		return true, nil

	case c == '[':
		r.win.advance()
		r.setToken(Token{kind: StartArray})
		return true, nil

	case c == ']':
		if top, ok := r.top(); !ok || top != containerArray {
			return false, r.fail(UnexpectedCharacter, "unexpected ']'")
		}
		r.win.advance()
		r.setToken(Token{kind: EndArray})
		return true, nil

	case c == ')':
		if top, ok := r.top(); !ok || top != containerConstructor {
			return false, r.fail(UnexpectedCharacter, "unexpected ')'")
		}
		r.win.advance()
		r.setToken(Token{kind: EndConstructor})
		return true, nil

	case c == ',':
		// An elided array or constructor-argument element: emit Undefined
		// without consuming the comma, so the next PostValue sees it and
		// advances the container.
		if top, ok := r.top(); !ok || (top != containerArray && top != containerConstructor) {
			return false, r.fail(UnexpectedCharacter, "unexpected ','")
		}
		r.setToken(Token{kind: Undefined})
		return true, nil

	default:
		return false, r.fail(UnexpectedCharacter, "unexpected character %q while expecting a value", c)
	}
}

// inConstructorArg reports whether the reader is currently scanning an
// argument of a constructor call, the one context where ')' is a legal
// separator for a literal word.
func (r *Reader) inConstructorArg() bool {
	return r.state == Constructor || r.state == ConstructorStart
}

// matchWordWithSeparator succeeds only if word matches literally at the
// current position and is immediately followed by a legal separator
// (whitespace, one of `} ] , )`, the start of a block comment, or EOF). On
// success it advances past word; on failure it leaves the window
// untouched (aside from whatever buffering ensure performed) and reports
// an error.
func (r *Reader) matchWordWithSeparator(word string) error {
	n := len(word)
	if !r.win.ensure(n-1, true) {
		if err := r.checkIOError(); err != nil {
			return err
		}
		return r.fail(UnexpectedEndOfInput, "unexpected end of input while scanning %q", word)
	}
	for i := 0; i < n; i++ {
		if r.win.at(i) != word[i] {
			return r.fail(BadIdentifier, "unrecognized literal near %q", word[:i])
		}
	}
	constructorArg := r.inConstructorArg()
	if r.win.ensure(n, true) {
		nc := r.win.at(n)
		if nc == '/' {
			if !r.win.ensure(n+1, true) || r.win.at(n+1) != '*' {
				return r.fail(BadIdentifier, "unexpected character after %q", word)
			}
		} else if !isSeparator(nc, constructorArg) {
			return r.fail(BadIdentifier, "unexpected character after %q", word)
		}
	} else if err := r.checkIOError(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		r.win.advance()
	}
	return nil
}
