// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/laxjson/laxjson"
)

func TestReadAsBytes_base64String(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`"aGVsbG8="`))
	b, err := r.ReadAsBytes()
	if err != nil {
		t.Fatalf("ReadAsBytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte("hello")) {
		t.Errorf("ReadAsBytes = %q, want %q", b, "hello")
	}
}

func TestReadAsBytes_integerArray(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`[104, 101, 108, 108, 111]`))
	b, err := r.ReadAsBytes()
	if err != nil {
		t.Fatalf("ReadAsBytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte("hello")) {
		t.Errorf("ReadAsBytes = %q, want %q", b, "hello")
	}
}

func TestReadAsBytes_integerArrayOutOfRange(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`[104, 999, 108]`))
	if _, err := r.ReadAsBytes(); err == nil {
		t.Error("ReadAsBytes with an out-of-range element: want error, got nil")
	}
}

func TestReadAsBytes_wrapper(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(
		`{"$type": "System.Byte[], mscorlib", "$value": "aGVsbG8="}`))
	b, err := r.ReadAsBytes()
	if err != nil {
		t.Fatalf("ReadAsBytes failed: %v", err)
	}
	if !bytes.Equal(b, []byte("hello")) {
		t.Errorf("ReadAsBytes = %q, want %q", b, "hello")
	}
}

func TestReadAsBytes_wrapperWrongType(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(
		`{"$type": "System.String", "$value": "aGVsbG8="}`))
	if _, err := r.ReadAsBytes(); err == nil {
		t.Error("ReadAsBytes with a mismatched $type: want error, got nil")
	}
}

func TestReadAsBytes_null(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`null`))
	b, err := r.ReadAsBytes()
	if err != nil || b != nil {
		t.Errorf("ReadAsBytes on null = %v, err=%v, want nil, nil", b, err)
	}
}

func TestReadAsBytes_endOfArray(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`[]`))
	if ok, err := r.Read(); !ok || err != nil {
		t.Fatalf("Read (StartArray) failed: ok=%v err=%v", ok, err)
	}
	b, err := r.ReadAsBytes()
	if err != nil || b != nil {
		t.Errorf("ReadAsBytes at end of array = %v, err=%v, want nil, nil", b, err)
	}
}
