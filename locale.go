// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"math/big"
	"strconv"
	"time"
)

// Locale parses the quoted-string fallback forms accepted by the typed
// Read* adapters (e.g. ReadAsInt32 reading the token `"42"`). It stands in
// for the original design's culture parameter: rather than a global
// ambient setting, callers inject the strategy they want through an
// Option, matching this corpus's preference for small interfaces over
// package-level state.
type Locale interface {
	ParseInt32(s string) (int32, error)
	ParseDecimal(s string) (*big.Float, error)
	ParseTime(s string) (time.Time, error)
}

// invariantLocale implements Locale using plain, culture-invariant stdlib
// parsing: base-10 strconv and RFC 3339 time layouts. It is the default
// Locale for a new Reader.
type invariantLocale struct{}

func (invariantLocale) ParseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func (invariantLocale) ParseDecimal(s string) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, 64, big.ToNearestEven)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (invariantLocale) ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}
