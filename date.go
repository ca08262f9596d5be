// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLiteralPrefix = "/Date("
	dateLiteralSuffix = ")/"
)

// parseDateLiteralBody recognizes the "/Date(ms)/" and "/Date(ms+hhmm)/"
// forms inside a fully materialized string body. It reports ok=false for
// any string that isn't shaped like a date literal at all, and a non-nil
// err for one that is shaped like one but has a malformed payload.
func parseDateLiteralBody(s string) (ms int64, offset time.Duration, hasOffset, ok bool, err error) {
	if !strings.HasPrefix(s, dateLiteralPrefix) || !strings.HasSuffix(s, dateLiteralSuffix) {
		return 0, 0, false, false, nil
	}
	body := s[len(dateLiteralPrefix) : len(s)-len(dateLiteralSuffix)]
	if body == "" {
		return 0, 0, false, false, nil
	}

	signIdx := -1
	for i := 1; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			signIdx = i
			break
		}
	}
	msStr, offStr := body, ""
	if signIdx >= 0 {
		msStr, offStr = body[:signIdx], body[signIdx:]
	}

	ms, perr := strconv.ParseInt(msStr, 10, 64)
	if perr != nil {
		return 0, 0, true, false, fmt.Errorf("malformed date literal millisecond count %q: %w", msStr, perr)
	}
	if offStr == "" {
		return ms, 0, false, true, nil
	}

	sign := time.Duration(1)
	digits := offStr
	switch offStr[0] {
	case '-':
		sign = -1
		digits = offStr[1:]
	case '+':
		digits = offStr[1:]
	}
	if len(digits) < 2 {
		return 0, 0, true, false, fmt.Errorf("malformed date literal offset %q", offStr)
	}
	hh, herr := strconv.ParseInt(digits[:2], 10, 64)
	if herr != nil {
		return 0, 0, true, false, fmt.Errorf("malformed date literal offset %q: %w", offStr, herr)
	}
	mm := int64(0)
	if len(digits) >= 4 {
		mm, herr = strconv.ParseInt(digits[2:4], 10, 64)
		if herr != nil {
			return 0, 0, true, false, fmt.Errorf("malformed date literal offset %q: %w", offStr, herr)
		}
	}
	offset = sign * (time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
	return ms, offset, true, true, nil
}

// offsetZoneName formats a fixed UTC offset the way a "+hh:mm" zone
// abbreviation would read.
func offsetZoneName(offset time.Duration) string {
	sign := "+"
	d := offset
	if d < 0 {
		sign, d = "-", -d
	}
	return fmt.Sprintf("%s%02d:%02d", sign, int(d/time.Hour), int((d%time.Hour)/time.Minute))
}

// emitDateToken converts a decoded "/Date(...)/ " payload into a Date
// token. When the literal carried an explicit offset and the active read
// mode is ReadAsDateTimeOffset, the instant keeps that offset as its
// location; otherwise an offset-bearing literal is reported in the local
// zone (see the DESIGN.md note on the unspecified-kind open question), and
// an offset-less literal is reported in UTC.
func (r *Reader) emitDateToken(ms int64, offset time.Duration, hasOffset bool) (bool, error) {
	instant := time.UnixMilli(ms).UTC()
	switch {
	case hasOffset && r.mode == modeReadAsDateTimeOffset:
		loc := time.FixedZone(offsetZoneName(offset), int(offset/time.Second))
		instant = instant.In(loc)
	case hasOffset:
		instant = instant.In(time.Local)
	}
	r.setToken(Token{kind: Date, tm: instant})
	return true, nil
}
