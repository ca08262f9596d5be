// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"strings"
	"testing"

	"github.com/laxjson/laxjson"
)

func TestReadAsInt32(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`[1, "42", 0x2A, null]`))
	if ok, err := r.Read(); !ok || err != nil {
		t.Fatalf("Read (StartArray) failed: ok=%v err=%v", ok, err)
	}

	want := []int32{1, 42, 42}
	for i, w := range want {
		v, err := r.ReadAsInt32()
		if err != nil {
			t.Fatalf("element %d: ReadAsInt32 failed: %v", i, err)
		}
		if v == nil || *v != w {
			t.Errorf("element %d: ReadAsInt32 = %v, want %d", i, v, w)
		}
	}
	v, err := r.ReadAsInt32()
	if err != nil || v != nil {
		t.Errorf("element 3 (null): ReadAsInt32 = %v, err=%v, want nil, nil", v, err)
	}
	v, err = r.ReadAsInt32()
	if err != nil || v != nil {
		t.Errorf("end of array: ReadAsInt32 = %v, err=%v, want nil, nil", v, err)
	}
}

func TestReadAsInt32_overflow(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`99999999999`))
	if _, err := r.ReadAsInt32(); err == nil {
		t.Error("ReadAsInt32 on an out-of-range integer: want error, got nil")
	}
}

func TestReadAsDecimal(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`[1, 1.5, "2.25"]`))
	if ok, err := r.Read(); !ok || err != nil {
		t.Fatalf("Read (StartArray) failed: ok=%v err=%v", ok, err)
	}
	want := []float64{1, 1.5, 2.25}
	for i, w := range want {
		v, err := r.ReadAsDecimal()
		if err != nil {
			t.Fatalf("element %d: ReadAsDecimal failed: %v", i, err)
		}
		if v == nil {
			t.Fatalf("element %d: ReadAsDecimal = nil, want %v", i, w)
		}
		if got, _ := v.Float64(); got != w {
			t.Errorf("element %d: ReadAsDecimal = %v, want %v", i, got, w)
		}
	}
}

func TestReadAsDateTimeOffset(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`"/Date(1577836800000+0500)/"`))
	tm, err := r.ReadAsDateTimeOffset()
	if err != nil {
		t.Fatalf("ReadAsDateTimeOffset failed: %v", err)
	}
	if tm == nil {
		t.Fatal("ReadAsDateTimeOffset = nil, want a time")
	}
	_, offset := tm.Zone()
	if offset != 5*3600 {
		t.Errorf("zone offset = %d, want %d", offset, 5*3600)
	}
	if got := tm.UTC().Format("2006-01-02"); got != "2020-01-01" {
		t.Errorf("UTC date = %s, want 2020-01-01", got)
	}
}
