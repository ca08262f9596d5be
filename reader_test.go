// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/laxjson/laxjson"
)

// tokenize drains r, rendering each token with GoString so the test table
// can compare against a plain string slice without reaching into Token's
// unexported fields.
func tokenize(t *testing.T, r *laxjson.Reader) ([]string, error) {
	t.Helper()
	var got []string
	for {
		ok, err := r.Read()
		if err != nil {
			return got, err
		}
		if !ok {
			return got, nil
		}
		got = append(got, r.Token().GoString())
	}
}

func TestReader_basics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"blank", "   \n\t\n  ", nil},
		{"literals", "true false null undefined",
			[]string{`boolean(true)`, `boolean(false)`, `null`, `undefined`}},
		{"single digit fast path", "7", []string{`integer(7)`}},
		{"negative integer", "-42", []string{`integer(-42)`}},
		{"hex", "0x1A", []string{`integer(26)`}},
		{"octal", "011", []string{`integer(9)`}},
		{"float", "3.25e1", []string{`number(32.5)`}},
		{"NaN", "NaN", []string{`number(NaN)`}},
		{"Infinity", "Infinity", []string{`number(+Inf)`}},
		{"neg Infinity", "-Infinity", []string{`number(-Inf)`}},
		{"double-quoted string", `"hello"`, []string{`string("hello")`}},
		{"single-quoted string", `'hello'`, []string{`string("hello")`}},
		{"escaped string", `"a\tb\nc"`, []string{"string(\"a\\tb\\nc\")"}},
		// \x5c is a backslash: these two inputs hold backslash-u escapes.
		{"unicode escape", "\"\x5cu0041\"", []string{`string("A")`}},
		{"surrogate pair escape", "\"\x5cuD83D\x5cuDE00\"", []string{"string(\"\U0001F600\")"}},
		{"empty object", "{}", []string{`"{"`, `"}"`}},
		{"empty array", "[]", []string{`"["`, `"]"`}},
		{"object with quoted and bare keys", `{"a": 1, b: 2}`, []string{
			`"{"`, `property name("a")`, `integer(1)`,
			`property name("b")`, `integer(2)`, `"}"`,
		}},
		{"array with trailing comma", "[1, 2, 3,]", []string{
			`"["`, `integer(1)`, `integer(2)`, `integer(3)`, `"]"`,
		}},
		{"array with elided element", "[1,,2]", []string{
			`"["`, `integer(1)`, `undefined`, `integer(2)`, `"]"`,
		}},
		{"comment inside array", "[/*c*/ 1 ,, 2]", []string{
			`"["`, `comment("c")`, `integer(1)`, `undefined`, `integer(2)`, `"]"`,
		}},
		{"constructor", `new Date(2021, 1, 1)`, []string{
			`constructor start("Date")`, `integer(2021)`, `integer(1)`, `integer(1)`, `")"`,
		}},
		{"trailing comment", "1 /* trailing */", []string{
			`integer(1)`, `comment(" trailing ")`,
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := laxjson.NewReader(strings.NewReader(test.input))
			got, err := tokenize(t, r)
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Input %q: tokens (-want, +got):\n%s", test.input, diff)
			}
		})
	}
}

func TestReader_dateLiteral(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader(`"/Date(1577836800000)/"`))
	ok, err := r.Read()
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	tok := r.Token()
	if tok.Kind() != laxjson.Date {
		t.Fatalf("Kind = %v, want Date", tok.Kind())
	}
	tm, ok := tok.Time()
	if !ok || tm.UTC().Format("2006-01-02") != "2020-01-01" {
		t.Errorf("Time = %v, ok=%v, want 2020-01-01", tm, ok)
	}
}

func TestReader_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `"abc`},
		{"trailing garbage", `1 2`},
		{"unbalanced close", `]`},
		{"bad literal", `tru`},
		{"unexpected comma at top level", `,`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := laxjson.NewReader(strings.NewReader(test.input))
			var lastErr error
			for {
				ok, err := r.Read()
				if err != nil {
					lastErr = err
					break
				}
				if !ok {
					break
				}
			}
			if lastErr == nil {
				t.Fatalf("Input %q: expected an error, got none", test.input)
			}
			if r.CurrentState() != laxjson.Error {
				t.Errorf("CurrentState = %v, want Error", r.CurrentState())
			}
			// Once in the Error state, further reads are inert.
			if ok, err := r.Read(); ok || err != nil {
				t.Errorf("Read after error: ok=%v err=%v, want false, nil", ok, err)
			}
		})
	}
}

func TestReader_close(t *testing.T) {
	r := laxjson.NewReader(strings.NewReader("1 2 3"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if ok, err := r.Read(); ok || err != nil {
		t.Errorf("Read after Close: ok=%v err=%v, want false, nil", ok, err)
	}
	// Close is idempotent.
	if err := r.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReader_ioError(t *testing.T) {
	wantErr := errors.New("disk on fire")
	r := laxjson.NewReader(failingReader{wantErr})
	ok, err := r.Read()
	if ok {
		t.Fatal("Read on a failing source: ok = true, want false")
	}
	if err == nil {
		t.Fatal("Read on a failing source: err = nil, want non-nil")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Read on a failing source: err = %v, want it to unwrap to %v", err, wantErr)
	}
	var rerr *laxjson.ReaderError
	if !errors.As(err, &rerr) || rerr.Kind != laxjson.IOError {
		t.Errorf("Read on a failing source: err kind = %v, want IOError", err)
	}
	if r.CurrentState() != laxjson.Error {
		t.Errorf("CurrentState = %v, want Error", r.CurrentState())
	}
}

// sequencedReader serves chunks one at a time, then fails every
// subsequent call with err, letting a test put a read failure partway
// through a token instead of only at the very start of input.
type sequencedReader struct {
	chunks [][]byte
	err    error
}

func (s *sequencedReader) Read(p []byte) (int, error) {
	if len(s.chunks) == 0 {
		return 0, s.err
	}
	n := copy(p, s.chunks[0])
	s.chunks[0] = s.chunks[0][n:]
	if len(s.chunks[0]) == 0 {
		s.chunks = s.chunks[1:]
	}
	return n, nil
}

func TestReader_ioError_midToken(t *testing.T) {
	wantErr := errors.New("disk on fire")
	r := laxjson.NewReader(&sequencedReader{
		chunks: [][]byte{[]byte(`"ab`)},
		err:    wantErr,
	})
	ok, err := r.Read()
	if ok {
		t.Fatal("Read on a source that fails mid-string: ok = true, want false")
	}
	if err == nil {
		t.Fatal("Read on a source that fails mid-string: err = nil, want non-nil")
	}
	var midErr *laxjson.ReaderError
	if !errors.As(err, &midErr) || midErr.Kind != laxjson.IOError {
		t.Errorf("Read on a source that fails mid-string: err kind = %v, want IOError", err)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Read on a source that fails mid-string: err = %v, want it to unwrap to %v", err, wantErr)
	}
}
