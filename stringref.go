// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"unicode/utf8"

	"go4.org/mem"
)

// stringRef is a borrow into either the reader's charWindow or its
// stringBuffer: a (chars, start, length) triple with no allocation of its
// own. It is valid only until the next operation that may shift or grow
// the window, or reset the buffer — callers must materialize it into an
// owned string before pulling more input.
type stringRef struct {
	chars mem.RO
}

func (s stringRef) String() string { return s.chars.StringCopy() }

func (s stringRef) Len() int { return s.chars.Len() }

// stringBuffer is an owned, growable byte buffer used only when a scalar
// requires transformation (escape decoding). It grows geometrically and
// is reset, not reallocated, between tokens.
type stringBuffer struct {
	buf []byte
}

func (b *stringBuffer) reset() { b.buf = b.buf[:0] }

func (b *stringBuffer) appendByte(c byte) { b.buf = append(b.buf, c) }

func (b *stringBuffer) appendRune(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	b.buf = append(b.buf, tmp[:n]...)
}

func (b *stringBuffer) appendSlice(src []byte) { b.buf = append(b.buf, src...) }

func (b *stringBuffer) ref() stringRef { return stringRef{chars: mem.B(b.buf)} }
