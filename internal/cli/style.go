package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// markers renders pass/fail lines. Styling follows the writer: a terminal
// gets color, anything else gets plain text.
type markers struct {
	header lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
}

func newMarkers(w io.Writer) markers {
	r := lipgloss.NewRenderer(w)
	return markers{
		header: r.NewStyle().Bold(true),
		pass:   r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (m markers) Header(name string) string {
	return m.header.Render("== " + name + " ==")
}

func (m markers) Pass(name string) string {
	return m.pass.Render("✓ " + name)
}

func (m markers) Fail(name, reason string) string {
	return m.fail.Render("✗ "+name) + ": " + reason
}
