// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "io"

// Colorizer writes ANSI SGR codes around a token's rendered text based on
// its Kind. A nil *Colorizer is valid and renders no color codes, so
// callers can select one conditionally (e.g. only when stdout is a
// terminal) without branching at every call site.
type Colorizer struct {
	KeyColor     []byte
	StringColor  []byte
	NumberColor  []byte
	BoolColor    []byte
	NullColor    []byte
	CommentColor []byte
	PunctColor   []byte
	ResetCode    []byte
}

// DefaultColorizer is a reasonable ANSI 16-color palette: cyan keys,
// green strings, yellow numbers, magenta booleans/null, dim comments,
// and plain structural punctuation.
var DefaultColorizer = &Colorizer{
	KeyColor:     []byte("\x1b[36m"),
	StringColor:  []byte("\x1b[32m"),
	NumberColor:  []byte("\x1b[33m"),
	BoolColor:    []byte("\x1b[35m"),
	NullColor:    []byte("\x1b[35m"),
	CommentColor: []byte("\x1b[2m"),
	PunctColor:   nil,
	ResetCode:    []byte("\x1b[0m"),
}

func (c *Colorizer) colorFor(k Kind) []byte {
	if c == nil {
		return nil
	}
	switch k {
	case PropertyName:
		return c.KeyColor
	case String, Date, Bytes:
		return c.StringColor
	case Integer, Float:
		return c.NumberColor
	case Boolean:
		return c.BoolColor
	case Null, Undefined:
		return c.NullColor
	case Comment:
		return c.CommentColor
	default:
		return c.PunctColor
	}
}

// WriteToken writes a plain-text rendering of tok to w, wrapped in the
// color code selected by its Kind.
func (c *Colorizer) WriteToken(w io.Writer, tok Token) error {
	code := c.colorFor(tok.Kind())
	if code != nil {
		if _, err := w.Write(code); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, tok.GoString()); err != nil {
		return err
	}
	if code != nil {
		if _, err := w.Write(c.ResetCode); err != nil {
			return err
		}
	}
	return nil
}
