package markup

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/alnah/go-nb2html/internal/htmlutil"
)

const fence = "```"

// blockState is the line scanner state for one markdown block.
type blockState struct {
	out    []string
	inCode bool
	inList bool
	code   []string
}

// Block renders a markdown block to HTML block elements joined by newlines.
func Block(src string) string {
	st := &blockState{}
	for _, line := range strings.Split(normalizeLineEndings(src), "\n") {
		st.line(line)
	}
	st.closeList()
	return strings.Join(st.out, "\n")
}

func (st *blockState) line(line string) {
	if strings.HasPrefix(line, fence) {
		st.toggleFence()
		return
	}
	if st.inCode {
		st.code = append(st.code, line)
		return
	}

	trimmed := strings.TrimSpace(line)
	if isRule(trimmed) {
		st.emit(htmlutil.Void(atom.Hr))
		return
	}
	if strings.HasPrefix(line, "#") {
		st.emit(heading(line))
		return
	}

	line = Inline(line)
	trimmed = strings.TrimSpace(line)
	if item, ok := listItem(trimmed); ok {
		if !st.inList {
			st.emit(htmlutil.Open(atom.Ul))
			st.inList = true
		}
		st.emit(htmlutil.Wrap(atom.Li, item))
		return
	}
	if trimmed == "" {
		return
	}
	st.closeList()
	st.emit(htmlutil.Wrap(atom.P, line))
}

func (st *blockState) toggleFence() {
	if !st.inCode {
		st.inCode = true
		return
	}
	code := htmlutil.Escape(strings.Join(st.code, "\n"))
	st.emit(htmlutil.Wrap(atom.Pre, htmlutil.Wrap(atom.Code, code)))
	st.code = nil
	st.inCode = false
}

func (st *blockState) closeList() {
	if st.inList {
		st.emit(htmlutil.Close(atom.Ul))
		st.inList = false
	}
}

func (st *blockState) emit(s string) {
	st.out = append(st.out, s)
}

func isRule(trimmed string) bool {
	return trimmed == "---" || trimmed == "___" || trimmed == "***"
}

// heading renders an ATX heading. Only bold spans are recognized in the text.
func heading(line string) string {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	text := Bold(strings.TrimSpace(line[level:]))
	return htmlutil.Wrap(htmlutil.Heading(level), text)
}

func listItem(trimmed string) (string, bool) {
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return trimmed[2:], true
	}
	return "", false
}

// normalizeLineEndings converts CRLF and lone CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// FirstHeading returns the text of the first level-1 heading outside code
// fences, with markup removed, or "" when there is none.
func FirstHeading(src string) string {
	inCode := false
	for _, line := range strings.Split(normalizeLineEndings(src), "\n") {
		if strings.HasPrefix(line, fence) {
			inCode = !inCode
			continue
		}
		if inCode || !strings.HasPrefix(line, "#") || strings.HasPrefix(line, "##") {
			continue
		}
		if text := strings.TrimSpace(line[1:]); text != "" {
			return strings.ReplaceAll(text, "**", "")
		}
	}
	return ""
}
