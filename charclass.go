// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func isLineBreak(c byte) bool { return c == '\n' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// isNumberBodyByte reports whether c can appear in the unparsed body of a
// number literal (digits, sign, exponent marker, decimal point, or the
// hex-prefix letters). The scanner reads a maximal run of these bytes and
// only then classifies the lexeme.
func isNumberBodyByte(c byte) bool {
	switch {
	case isDigit(c):
		return true
	case c == '.' || c == '+' || c == '-':
		return true
	case c == 'x' || c == 'X':
		return true
	case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
		return true
	case c == 'e' || c == 'E':
		return true
	}
	return false
}

// isSeparator reports whether c legally terminates a literal word such as
// true/false/null/undefined/NaN/Infinity, or the "new" keyword that opens
// a constructor.
// constructorArg additionally allows ')' as a separator, which is only
// legal directly inside a constructor argument list.
func isSeparator(c byte, constructorArg bool) bool {
	switch c {
	case '}', ']', ',':
		return true
	case ')':
		return constructorArg
	case ' ', '\t', '\r', '\n':
		return true
	case 0:
		return true
	}
	return false
}
