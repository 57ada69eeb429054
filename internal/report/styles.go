// Package report renders run output: execution notifications, the time
// advisory, run summaries and the task catalogue.
package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#5FAFAF")
	secondaryColor = lipgloss.Color("#666666")
	successColor   = lipgloss.Color("#87AF87")
	warningColor   = lipgloss.Color("#D7AF5F")
)

// styles holds the lipgloss styles for one output.
// They are built from a renderer tied to the writer, so colour is only
// emitted when the writer is a terminal.
type styles struct {
	title   lipgloss.Style
	subtle  lipgloss.Style
	agent   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(primaryColor),
		subtle:  r.NewStyle().Foreground(secondaryColor),
		agent:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(successColor),
		warning: r.NewStyle().Foreground(warningColor),
	}
}
