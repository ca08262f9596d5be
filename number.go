// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// numShape is the result of classifying a scanned number lexeme, mirroring
// the three-way split the design calls out: a single ASCII digit, a
// leading-zero hex/octal lexeme, or everything else (base-10 integer or
// float).
type numShape struct {
	kind int // 0: single digit, 1: non-base-10, 2: plain
	base int // 8 or 16, when kind == 1
	body string
	// isFloat is set when kind == 2 and the lexeme contains '.', 'e', or 'E'.
	isFloat bool
}

func classifyNumber(text string) numShape {
	if len(text) == 1 && isDigit(text[0]) {
		return numShape{kind: 0}
	}
	if text[0] == '0' && len(text) > 1 {
		switch text[1] {
		case '.', 'e', 'E':
			// falls through to the plain case below
		case 'x', 'X':
			return numShape{kind: 1, base: 16, body: text[2:]}
		default:
			return numShape{kind: 1, base: 8, body: text[1:]}
		}
	}
	return numShape{kind: 2, isFloat: strings.ContainsAny(text, ".eE")}
}

// scanNumberBody advances over a maximal run of number-body bytes starting
// at the current position, returning the raw lexeme. Grounded on
// arnodel-jsonstream's token-boundary buffering: it only ever extends the
// window in append mode, so the starting offset it records stays valid for
// the duration of the scan.
func (r *Reader) scanNumberBody() (string, error) {
	r.win.shiftIfNeeded()
	start := r.win.pos
	for {
		if r.win.atEnd() && !r.win.ensure(0, true) {
			if err := r.checkIOError(); err != nil {
				return "", err
			}
			break
		}
		if !isNumberBodyByte(r.win.cur()) {
			break
		}
		r.win.advance()
	}
	return string(r.win.chars[start:r.win.pos]), nil
}

// parseNumber scans and classifies a number literal, emitting an Integer
// or Float token under the plain read mode, or coercing it per the active
// typed read mode.
func (r *Reader) parseNumber() (bool, error) {
	text, err := r.scanNumberBody()
	if err != nil {
		return false, err
	}
	if text == "" || text == "-" {
		return false, r.fail(UnexpectedCharacter, "malformed number literal %q", text)
	}
	shape := classifyNumber(text)
	switch r.mode {
	case modeReadAsInt32:
		return r.emitInt32Number(text, shape)
	case modeReadAsDecimal:
		return r.emitDecimalNumber(text, shape)
	default:
		return r.emitPlainNumber(text, shape)
	}
}

func (r *Reader) emitPlainNumber(text string, shape numShape) (bool, error) {
	switch shape.kind {
	case 0:
		r.setToken(Token{kind: Integer, i64: int64(text[0] - '0')})
		return true, nil
	case 1:
		v, err := strconv.ParseInt(shape.body, shape.base, 64)
		if err != nil {
			return false, r.failWrap(IntegerOverflow, err, "invalid base-%d integer %q", shape.base, text)
		}
		r.setToken(Token{kind: Integer, i64: v})
		return true, nil
	default:
		if shape.isFloat {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return false, r.failWrap(CoercionFailure, err, "invalid number %q", text)
			}
			r.setToken(Token{kind: Float, f64: v})
			return true, nil
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return false, r.failWrap(IntegerOverflow, err, "integer literal %q overflows 64 bits", text)
		}
		r.setToken(Token{kind: Integer, i64: v})
		return true, nil
	}
}

func (r *Reader) emitInt32Number(text string, shape numShape) (bool, error) {
	var v int64
	var err error
	switch shape.kind {
	case 0:
		v = int64(text[0] - '0')
	case 1:
		v, err = strconv.ParseInt(shape.body, shape.base, 64)
	default:
		if shape.isFloat {
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil {
				return false, r.failWrap(CoercionFailure, ferr, "cannot coerce %q to Int32", text)
			}
			if f != math.Trunc(f) {
				return false, r.fail(CoercionFailure, "cannot coerce non-integral number %q to Int32", text)
			}
			v = int64(f)
		} else {
			v, err = strconv.ParseInt(text, 10, 64)
		}
	}
	if err != nil {
		return false, r.failWrap(IntegerOverflow, err, "invalid integer %q", text)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return false, r.fail(IntegerOverflow, "integer %q overflows Int32", text)
	}
	r.setToken(Token{kind: Integer, i64: v})
	return true, nil
}

func (r *Reader) emitDecimalNumber(text string, shape numShape) (bool, error) {
	switch shape.kind {
	case 0:
		n := int64(text[0] - '0')
		bf := new(big.Float).SetInt64(n)
		r.setToken(Token{kind: Float, f64: float64(n), big: bf})
		return true, nil
	case 1:
		n, err := strconv.ParseInt(shape.body, shape.base, 64)
		if err != nil {
			return false, r.failWrap(IntegerOverflow, err, "invalid base-%d integer %q", shape.base, text)
		}
		bf := new(big.Float).SetInt64(n)
		r.setToken(Token{kind: Float, f64: float64(n), big: bf})
		return true, nil
	default:
		bf, _, err := big.ParseFloat(text, 10, 200, big.ToNearestEven)
		if err != nil {
			return false, r.failWrap(CoercionFailure, err, "invalid decimal %q", text)
		}
		f64, _ := bf.Float64()
		r.setToken(Token{kind: Float, f64: f64, big: bf})
		return true, nil
	}
}
