package pipeline

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes terminal escape sequences from s: SGR colors, other
// CSI sequences, OSC strings and lone escapes.
func StripANSI(s string) string {
	if strings.IndexByte(s, '\x1b') < 0 {
		return s
	}
	return ansi.Strip(s)
}
