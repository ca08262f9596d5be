// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "strings"

// ReadAsBytes reads the next non-comment token, coerced to a byte slice.
// A Bytes token (a base64 string scanned under this mode) is returned
// directly; a StartArray is consumed as an array of small integers; a
// StartObject is consumed as a "$type"/"$value" wrapper whose $value is a
// base64 string. It returns (nil, nil) at the end of input, at the end of
// the enclosing array, or on an explicit null.
func (r *Reader) ReadAsBytes() ([]byte, error) {
	ok, err := r.advanceTyped(modeReadAsBytes)
	if err != nil || !ok {
		return nil, err
	}
	switch r.cur.kind {
	case Bytes:
		b, _ := r.cur.Bytes()
		return b, nil
	case Null, EndArray:
		return nil, nil
	case StartArray:
		return r.readBytesArray()
	case StartObject:
		return r.readBytesWrapper()
	default:
		return nil, r.fail(UnexpectedToken, "unexpected %v while reading bytes", r.cur.kind)
	}
}

// readBytesArray consumes a JSON array of small integers as a byte slice.
// It drives readInternal directly rather than calling back into
// ReadAsInt32/ReadAsBytes, so a byte array never recurses through the
// typed-adapter entry points that opened it.
func (r *Reader) readBytesArray() ([]byte, error) {
	out := []byte{}
	for {
		r.mode = modeRead
		ok, err := r.readInternal()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, r.fail(UnexpectedEndOfInput, "unexpected end of input inside byte array")
		}
		switch r.cur.kind {
		case Comment:
			continue
		case EndArray:
			return out, nil
		}
		v, isInt := r.cur.Int()
		if !isInt || v < 0 || v > 255 {
			return nil, r.fail(CoercionFailure, "byte array element %v out of range [0, 255]", r.cur.GoString())
		}
		out = append(out, byte(v))
	}
}

// readBytesWrapper consumes a {"$type": "System.Byte[]...", "$value":
// "<base64>"} wrapper object, the shape a serializer emits for a byte
// array field it also needs to tag with a CLR type name.
func (r *Reader) readBytesWrapper() ([]byte, error) {
	if err := r.expectPropertyName("$type"); err != nil {
		return nil, err
	}
	typeVal, err := r.readPlainStringValue()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(typeVal, "System.Byte[]") {
		return nil, r.fail(UnexpectedToken, `expected $type "System.Byte[]...", got %q`, typeVal)
	}
	if err := r.expectPropertyName("$value"); err != nil {
		return nil, err
	}

	r.mode = modeReadAsBytes
	ok, err := r.readInternal()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, r.fail(UnexpectedEndOfInput, "unexpected end of input reading $value")
	}
	b, isBytes := r.cur.Bytes()
	if !isBytes {
		return nil, r.fail(UnexpectedToken, "expected a base64 $value, got %v", r.cur.Kind())
	}

	if err := r.expectTokenKind(EndObject); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) expectPropertyName(name string) error {
	r.mode = modeRead
	ok, err := r.readInternal()
	if err != nil {
		return err
	}
	if !ok {
		return r.fail(UnexpectedEndOfInput, "unexpected end of input, expected property %q", name)
	}
	if r.cur.kind != PropertyName {
		return r.fail(UnexpectedToken, "expected property %q, got %v", name, r.cur.Kind())
	}
	if s, _ := r.cur.String(); s != name {
		return r.fail(UnexpectedToken, "expected property %q, got %q", name, s)
	}
	return nil
}

func (r *Reader) readPlainStringValue() (string, error) {
	r.mode = modeRead
	ok, err := r.readInternal()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", r.fail(UnexpectedEndOfInput, "unexpected end of input, expected a string value")
	}
	s, isStr := r.cur.String()
	if !isStr {
		return "", r.fail(UnexpectedToken, "expected a string, got %v", r.cur.Kind())
	}
	return s, nil
}

func (r *Reader) expectTokenKind(kind Kind) error {
	r.mode = modeRead
	ok, err := r.readInternal()
	if err != nil {
		return err
	}
	if !ok {
		return r.fail(UnexpectedEndOfInput, "unexpected end of input, expected %v", kind)
	}
	if r.cur.kind != kind {
		return r.fail(UnexpectedToken, "expected %v, got %v", kind, r.cur.Kind())
	}
	return nil
}
