// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
}

var hexDigit = []byte("0123456789abcdef")

const (
	lineSeparator      rune = 0x2028
	paragraphSeparator rune = 0x2029
)

// Quote renders s as a double-quoted string literal in this package's
// grammar, escaping control characters, backslashes, quotes, and the
// line/paragraph separators that JavaScript string literals (unlike Go's)
// treat as line terminators. It is exported for callers that build
// diagnostic messages or re-emit a scalar string token verbatim.
func Quote(s string) string {
	src := mem.S(s)
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if int(r) < len(controlEsc) && controlEsc[r] != 0 {
				buf = append(buf, '\\', controlEsc[r])
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == lineSeparator || r == paragraphSeparator:
			buf = append(buf, '\\', 'u', hexDigit[(r>>12)&15], hexDigit[(r>>8)&15], hexDigit[(r>>4)&15], hexDigit[r&15])
		default:
			var rbuf [utf8.UTFMax]byte
			m := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:m]...)
		}
		src = src.SliceFrom(n)
	}
	buf = append(buf, '"')
	return string(buf)
}
