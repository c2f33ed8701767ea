package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status colours.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#A6E3A1"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F9E2AF"}
	colorError   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F38BA8"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#6C7086"}
)

// palette styles status words for one writer. The renderer detects the
// writer's colour support, so output to files and pipes stays plain.
type palette struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning).Bold(true),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
