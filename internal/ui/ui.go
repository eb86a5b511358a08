// Package ui holds the lipgloss primitives shared by the terminal
// surfaces (watch dashboard, init output).
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MaxWidth is the maximum width for styled output.
const MaxWidth = 80

// Colors.
var (
	Green  = lipgloss.Color("2")
	Red    = lipgloss.Color("1")
	Yellow = lipgloss.Color("3")
	Subtle = lipgloss.Color("8")
)

// DotState represents the state of a status dot.
type DotState int

const (
	DotConnected    DotState = iota // green
	DotDisconnected                 // red
	DotPaused                       // yellow
)

var sectionStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(0, 1).
	MarginBottom(1)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Dot returns a colored ● for the given state.
func Dot(state DotState) string {
	switch state {
	case DotConnected:
		return lipgloss.NewStyle().Foreground(Green).Render("●")
	case DotDisconnected:
		return lipgloss.NewStyle().Foreground(Red).Render("●")
	case DotPaused:
		return lipgloss.NewStyle().Foreground(Yellow).Render("●")
	default:
		return "●"
	}
}

// Section renders content inside a bordered box with a bold title.
func Section(title, content string, width int) string {
	if width > MaxWidth {
		width = MaxWidth
	}
	contentWidth := max(width-4, 40)
	return sectionStyle.Width(contentWidth).Render(
		titleStyle.Render(title) + "\n" + content,
	)
}

// StepOK returns a green checkmark step line.
func StepOK(msg string) string {
	return lipgloss.NewStyle().Foreground(Green).Render("✔") + " " + msg
}

// Warn returns a yellow warning message (caller writes to stderr).
func Warn(msg string) string {
	return lipgloss.NewStyle().Foreground(Yellow).Render("⚠") + " " + msg
}

// Keys renders a key-binding legend line in subtle color.
func Keys(pairs ...string) string {
	return lipgloss.NewStyle().Foreground(Subtle).Render(strings.Join(pairs, "  "))
}

// Row renders a two-column key-value row, with optional second pair.
func Row(k1, v1, k2, v2 string, width int) string {
	left := fmt.Sprintf("%-10s %s", k1+":", v1)
	if k2 == "" {
		return left
	}
	right := fmt.Sprintf("%s %s", k2+":", v2)
	gap := width/2 - len(left)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}
