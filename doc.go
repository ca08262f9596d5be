// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package laxjson implements a streaming, forward-only lexical reader for a
// permissive superset of JSON.
//
// # Reading
//
// The Reader type scans a byte stream into a sequence of typed tokens
// without ever buffering the whole input or building a tree. Construct a
// Reader from an io.Reader and call Read to advance:
//
//	r := laxjson.NewReader(input)
//	for {
//	    ok, err := r.Read()
//	    if err != nil {
//	        log.Fatalf("Read failed: %v", err)
//	    } else if !ok {
//	        break
//	    }
//	    log.Printf("token: %v", r.Token())
//	}
//
// # Typed reads
//
// ReadAsInt32, ReadAsDecimal, ReadAsBytes and ReadAsDateTimeOffset each
// advance the reader to the next value-bearing token (skipping any
// comments along the way; ReadAsBytes also consumes the rest of a byte
// array or "$type"/"$value" wrapper object that the token opens) and
// coerce the result to the requested Go type,
// fusing coercion with parsing the way a JSON.NET-style JsonReader does for
// its typed Read* family.
//
// # Grammar
//
// Beyond standard JSON, the reader accepts single-quoted strings, unquoted
// identifier property names, hexadecimal and octal integers, the literals
// NaN/Infinity/-Infinity/undefined, block comments, "new Ctor(...)"
// constructor syntax, and "/Date(ms±hhmm)/" string literals upgraded to a
// Date token.
//
// # Diagnostics
//
// Quote renders a string the way this grammar would, for building error
// messages or re-emitting a scalar token verbatim. Colorizer wraps
// Token.GoString output in ANSI color codes keyed by Kind; see cmd/jlex
// for a small command that streams a file through a Reader and prints one
// colorized line per token.
package laxjson
