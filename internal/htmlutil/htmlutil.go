// Package htmlutil holds the HTML writing helpers shared by the markup and
// pipeline packages: text escaping, tag construction and script hardening.
package htmlutil

import (
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// specialChars lists the bytes Escape rewrites.
const specialChars = `&<>"'`

// escaper maps the five HTML-special characters to their entities.
// Quotes are escaped too so the same function is safe inside attribute values.
var escaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape returns s with &, <, >, " and ' replaced by entities.
func Escape(s string) string {
	if !strings.ContainsAny(s, specialChars) {
		return s
	}
	return string(escaper.Replace([]byte(s)))
}

// ScriptSafe escapes "</" sequences so a JSON or JavaScript payload cannot
// close the surrounding <script> element. "<\/" is an equivalent escape in
// both JSON strings and JavaScript source.
func ScriptSafe(js string) string {
	return strings.ReplaceAll(js, "</", `<\/`)
}

// headings indexes heading atoms by level.
var headings = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Heading returns the heading atom for level, clamped to 1..6.
func Heading(level int) atom.Atom {
	if level < 1 {
		level = 1
	}
	if level > len(headings) {
		level = len(headings)
	}
	return headings[level-1]
}

// Open returns the start tag for name.
func Open(name atom.Atom) string {
	return "<" + name.String() + ">"
}

// OpenAttrs returns a start tag with attributes given as key, value pairs.
// Values are escaped; a trailing key without a value is ignored.
func OpenAttrs(name atom.Atom, attrs ...string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name.String())
	for i := 0; i+1 < len(attrs); i += 2 {
		b.WriteByte(' ')
		b.WriteString(attrs[i])
		b.WriteString(`="`)
		b.WriteString(Escape(attrs[i+1]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// Close returns the end tag for name.
func Close(name atom.Atom) string {
	return "</" + name.String() + ">"
}

// Void returns a tag for an element without content, such as <hr>.
func Void(name atom.Atom) string {
	return Open(name)
}

// Wrap surrounds content with start and end tags. Content is not escaped.
func Wrap(name atom.Atom, content string) string {
	return Open(name) + content + Close(name)
}

// WrapClass is Wrap with a class attribute on the start tag.
func WrapClass(name atom.Atom, class, content string) string {
	return OpenAttrs(name, "class", class) + content + Close(name)
}
