// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"math"
	"math/big"
	"time"
)

// advanceTyped reads the next non-comment token under the given read
// mode, the common prelude to every typed Read* adapter.
func (r *Reader) advanceTyped(mode readMode) (bool, error) {
	r.mode = mode
	for {
		ok, err := r.readInternal()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if r.cur.kind == Comment {
			continue
		}
		return true, nil
	}
}

// ReadAsInt32 reads the next non-comment token, coerced to a signed
// 32-bit integer. It returns (nil, nil) at the end of input, at the end
// of the enclosing array, or on an explicit null.
func (r *Reader) ReadAsInt32() (*int32, error) {
	ok, err := r.advanceTyped(modeReadAsInt32)
	if err != nil || !ok {
		return nil, err
	}
	switch r.cur.kind {
	case Integer:
		v, _ := r.cur.Int()
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, r.fail(IntegerOverflow, "integer %d overflows Int32", v)
		}
		n := int32(v)
		return &n, nil
	case Null, EndArray:
		return nil, nil
	case String:
		s, _ := r.cur.String()
		n, err := r.locale.ParseInt32(s)
		if err != nil {
			return nil, r.failWrap(CoercionFailure, err, "cannot coerce %s to Int32", Quote(s))
		}
		r.cur = Token{kind: Integer, i64: int64(n)}
		return &n, nil
	default:
		return nil, r.fail(UnexpectedToken, "unexpected %v while reading Int32", r.cur.kind)
	}
}

// ReadAsDecimal reads the next non-comment token, coerced to an
// arbitrary-precision decimal value.
func (r *Reader) ReadAsDecimal() (*big.Float, error) {
	ok, err := r.advanceTyped(modeReadAsDecimal)
	if err != nil || !ok {
		return nil, err
	}
	switch r.cur.kind {
	case Float:
		v, _ := r.cur.Decimal()
		return v, nil
	case Integer:
		v, _ := r.cur.Int()
		return new(big.Float).SetInt64(v), nil
	case Null, EndArray:
		return nil, nil
	case String:
		s, _ := r.cur.String()
		v, err := r.locale.ParseDecimal(s)
		if err != nil {
			return nil, r.failWrap(CoercionFailure, err, "cannot coerce %s to a decimal", Quote(s))
		}
		f64, _ := v.Float64()
		r.cur = Token{kind: Float, f64: f64, big: v}
		return v, nil
	default:
		return nil, r.fail(UnexpectedToken, "unexpected %v while reading a decimal", r.cur.kind)
	}
}

// ReadAsDateTimeOffset reads the next non-comment token, coerced to a
// time.Time. A "/Date(...)/ " literal keeps its literal offset as the
// returned instant's location.
func (r *Reader) ReadAsDateTimeOffset() (*time.Time, error) {
	ok, err := r.advanceTyped(modeReadAsDateTimeOffset)
	if err != nil || !ok {
		return nil, err
	}
	switch r.cur.kind {
	case Date:
		t, _ := r.cur.Time()
		return &t, nil
	case Null, EndArray:
		return nil, nil
	case String:
		s, _ := r.cur.String()
		t, err := r.locale.ParseTime(s)
		if err != nil {
			return nil, r.failWrap(CoercionFailure, err, "cannot coerce %s to a time", Quote(s))
		}
		r.cur = Token{kind: Date, tm: t}
		return &t, nil
	default:
		return nil, r.fail(UnexpectedToken, "unexpected %v while reading a DateTimeOffset", r.cur.kind)
	}
}
