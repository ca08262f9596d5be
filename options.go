// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Option configures a Reader at construction time, generalizing the
// teacher's AllowComments/AllowTrailingCommas boolean-method idiom into
// the functional-options form idiomatic for a type with more than one or
// two knobs.
type Option func(*Reader)

// CloseInput controls whether Reader.Close propagates to the upstream
// io.Reader when it implements io.Closer. Default: false.
func CloseInput(close bool) Option {
	return func(r *Reader) { r.closeInput = close }
}

// WithLocale overrides the Locale used by the typed Read* adapters when
// coercing a quoted string to a numeric or time value. Default: an
// invariant, culture-independent locale.
func WithLocale(loc Locale) Option {
	return func(r *Reader) {
		if loc != nil {
			r.locale = loc
		}
	}
}
