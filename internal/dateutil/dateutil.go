// Package dateutil turns the page dateline setting into text.
//
// A dateline is either literal text, used as is, or "auto" optionally
// followed by ":FORMAT" where FORMAT is a preset name or a token pattern.
// Tokens are YYYY, YY, MMMM, MMM, MM, M, DD and D; text in brackets is
// kept literally, so "[Rendered] D MMM YYYY" gives "Rendered 2 Jan 2026".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat reports an unusable dateline pattern.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds a dateline pattern.
const MaxFormatLength = 50

const (
	autoKeyword   = "auto"
	defaultFormat = "YYYY-MM-DD"
)

// Presets are named patterns accepted after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens is ordered so that longer tokens match first.
var tokens = [...]struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token pattern into a time.Format layout.
func Layout(pattern string) (string, error) {
	switch {
	case pattern == "":
		return "", fmt.Errorf("%w: empty pattern", ErrInvalidDateFormat)
	case len(pattern) > MaxFormatLength:
		return "", fmt.Errorf("%w: pattern longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := pattern
scan:
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(pattern)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				b.WriteString(t.layout)
				rest = rest[len(t.token):]
				continue scan
			}
		}
		b.WriteByte(rest[0])
		rest = rest[1:]
	}
	return b.String(), nil
}

// Resolve returns the dateline text for value at time t. Values other than
// "auto" and "auto:..." are returned unchanged.
func Resolve(value string, t time.Time) (string, error) {
	keyword, pattern, hasPattern := strings.Cut(value, ":")
	if !strings.EqualFold(keyword, autoKeyword) {
		return value, nil
	}

	switch {
	case !hasPattern:
		pattern = defaultFormat
	case pattern == "":
		return "", fmt.Errorf("%w: nothing after \"auto:\"", ErrInvalidDateFormat)
	default:
		if preset, ok := Presets[strings.ToLower(pattern)]; ok {
			pattern = preset
		}
	}

	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
