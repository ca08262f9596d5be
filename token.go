// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// Kind is the type of a lexical token produced by a Reader.
type Kind byte

// Constants defining the valid Kind values.
const (
	None Kind = iota // no token read yet, or a marker with no payload

	StartObject      // "{"
	EndObject        // "}"
	StartArray       // "["
	EndArray         // "]"
	StartConstructor // "new Name("
	EndConstructor   // ")" closing a constructor
	PropertyName     // an object member key

	Comment // a block comment
	Raw     // undecoded source text, reserved for future use

	Integer   // an integer literal with no fraction or exponent
	Float     // a number with a fraction, exponent, NaN, or Infinity
	String    // a quoted string
	Boolean   // true or false
	Null      // null
	Undefined // undefined, or an elided array element between commas
	Date      // a "/Date(...)/ " literal
	Bytes     // a base64-decoded string value, from ReadAsBytes
)

var kindName = [...]string{
	None:             "none",
	StartObject:      `"{"`,
	EndObject:        `"}"`,
	StartArray:       `"["`,
	EndArray:         `"]"`,
	StartConstructor: "constructor start",
	EndConstructor:   `")"`,
	PropertyName:     "property name",
	Comment:          "comment",
	Raw:              "raw text",
	Integer:          "integer",
	Float:            "number",
	String:           "string",
	Boolean:          "boolean",
	Null:             "null",
	Undefined:        "undefined",
	Date:             "date",
	Bytes:            "bytes",
}

func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}
	return "invalid token"
}

// Token is a discriminated lexical value emitted by a Reader. The payload
// accessors (String, Int, Float, Bool, Bytes, Time) report whether the
// token actually carries that kind of value; a zero Token has Kind None.
type Token struct {
	kind      Kind
	quoteChar byte // '"', '\'', or 0 for unquoted/none

	str  string
	i64  int64
	f64  float64
	boo  bool
	bs   []byte
	tm   time.Time
	ctor string   // constructor name, for StartConstructor
	big  *big.Float // arbitrary-precision payload for a Float token, set when the
	// source lexeme was parsed by the ReadAsDecimal path; nil for NaN/Infinity
}

// Kind reports the type of tok.
func (tok Token) Kind() Kind { return tok.kind }

// QuoteChar reports the quotation mark used to delimit a String or
// PropertyName token: '"', '\'', or 0 if the token was unquoted (an
// identifier property name) or is not a string-shaped token at all.
func (tok Token) QuoteChar() byte { return tok.quoteChar }

// String reports the string payload of tok and whether tok carries one.
// Valid for String, PropertyName, and Comment tokens.
func (tok Token) String() (string, bool) {
	switch tok.kind {
	case String, PropertyName, Comment:
		return tok.str, true
	}
	return "", false
}

// ConstructorName reports the name of a StartConstructor token.
func (tok Token) ConstructorName() (string, bool) {
	if tok.kind == StartConstructor {
		return tok.ctor, true
	}
	return "", false
}

// Int reports the integer payload of tok and whether tok carries one.
func (tok Token) Int() (int64, bool) {
	if tok.kind == Integer {
		return tok.i64, true
	}
	return 0, false
}

// Float reports the floating-point payload of tok and whether tok carries
// one.
func (tok Token) Float() (float64, bool) {
	if tok.kind == Float {
		return tok.f64, true
	}
	return 0, false
}

// Decimal reports the arbitrary-precision payload of a Float token and
// whether tok carries one. For a finite value parsed without a Decimal
// payload it synthesizes one from the float64 payload; for NaN or
// Infinity it reports ok=true with a nil *big.Float, since big.Float has
// no such values.
func (tok Token) Decimal() (*big.Float, bool) {
	if tok.kind != Float {
		return nil, false
	}
	if tok.big != nil {
		return tok.big, true
	}
	if math.IsNaN(tok.f64) || math.IsInf(tok.f64, 0) {
		return nil, true
	}
	return big.NewFloat(tok.f64), true
}

// Bool reports the boolean payload of tok and whether tok carries one.
func (tok Token) Bool() (bool, bool) {
	if tok.kind == Boolean {
		return tok.boo, true
	}
	return false, false
}

// Bytes reports the binary payload of tok and whether tok carries one.
func (tok Token) Bytes() ([]byte, bool) {
	if tok.kind == Bytes {
		return tok.bs, true
	}
	return nil, false
}

// Time reports the instant payload of a Date token and whether tok carries
// one. When the literal carried an offset, the reported time.Time has that
// offset as its location if it was read by ReadAsDateTimeOffset, and the
// local zone otherwise; a literal without an offset is reported in UTC.
func (tok Token) Time() (time.Time, bool) {
	if tok.kind == Date {
		return tok.tm, true
	}
	return time.Time{}, false
}

func (tok Token) GoString() string {
	switch tok.kind {
	case PropertyName, String, Comment:
		return fmt.Sprintf("%v(%s)", tok.kind, Quote(tok.str))
	case Integer:
		return fmt.Sprintf("%v(%d)", tok.kind, tok.i64)
	case Float:
		return fmt.Sprintf("%v(%v)", tok.kind, tok.f64)
	case Boolean:
		return fmt.Sprintf("%v(%v)", tok.kind, tok.boo)
	case StartConstructor:
		return fmt.Sprintf("%v(%q)", tok.kind, tok.ctor)
	case Bytes:
		return fmt.Sprintf("%v(%d bytes)", tok.kind, len(tok.bs))
	case Date:
		return fmt.Sprintf("%v(%v)", tok.kind, tok.tm)
	default:
		return tok.kind.String()
	}
}
