package markup

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/htmlutil"
)

// Inline renders bold, italic and link spans in one line of text.
func Inline(line string) string {
	return Links(Italic(Bold(line)))
}

// Bold replaces each **text** span with <strong>text</strong>.
func Bold(s string) string {
	return replaceDelimited(s, "**", atom.Strong)
}

// Italic replaces each *text* span with <em>text</em>.
func Italic(s string) string {
	return replaceDelimited(s, "*", atom.Em)
}

// replaceDelimited scans s left to right for delim, content, delim where the
// content is at least one byte, contains no newline and ends at the first
// closing delimiter. A marker with no valid closer is copied through and the
// scan resumes one byte later.
func replaceDelimited(s, delim string, tag atom.Atom) string {
	if !strings.Contains(s, delim) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], delim) {
			b.WriteByte(s[i])
			i++
			continue
		}
		start := i + len(delim)
		end := closer(s, start, delim)
		if end < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(htmlutil.Wrap(tag, s[start:end]))
		i = end + len(delim)
	}
	return b.String()
}

// closer returns the index of the first delim at or after start+1 that is
// not preceded by a newline in s[start:], or -1.
func closer(s string, start int, delim string) int {
	if start >= len(s) || s[start] == '\n' {
		return -1
	}
	for j := start + 1; j+len(delim) <= len(s); j++ {
		if strings.HasPrefix(s[j:], delim) {
			return j
		}
		if s[j] == '\n' {
			return -1
		}
	}
	return -1
}

// Links replaces each [label](target) with an anchor. The label runs to the
// first ']' and the target to the first ')'; both must be non-empty.
func Links(s string) string {
	if !strings.Contains(s, "](") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '[' {
			b.WriteByte(s[i])
			i++
			continue
		}
		label, target, n, ok := link(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(htmlutil.OpenAttrs(atom.A, "href", target))
		b.WriteString(label)
		b.WriteString(htmlutil.Close(atom.A))
		i += n
	}
	return b.String()
}

// link parses a link at the start of s and reports the bytes consumed.
func link(s string) (label, target string, n int, ok bool) {
	rb := strings.IndexByte(s[1:], ']')
	if rb < 1 {
		return "", "", 0, false
	}
	rb++
	if rb+1 >= len(s) || s[rb+1] != '(' {
		return "", "", 0, false
	}
	tStart := rb + 2
	rp := strings.IndexByte(s[tStart:], ')')
	if rp < 1 {
		return "", "", 0, false
	}
	return s[1:rb], s[tStart : tStart+rp], tStart + rp + 1, true
}
