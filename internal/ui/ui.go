// Package ui provides styled terminal output for pidash's CLI commands.
//
// Colors are defined as ANSI codes for broad terminal compatibility. Use
// DisableColors() to switch to monochrome output (for --no-color flag).
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolUp      = "●"
	SymbolDown    = "○"
)

var colorsEnabled = true

// DisableColors switches all styled output to monochrome.
func DisableColors() {
	colorsEnabled = false
}

func styled(c lipgloss.Color, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !colorsEnabled {
		return s
	}
	if bold {
		s = s.Bold(true)
	}
	return s.Foreground(c)
}

// Success prints a green checkmark line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styled(ColorSuccess, false).Render(SymbolSuccess+" "+fmt.Sprintf(format, args...)))
}

// Fail prints a red cross line.
func Fail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styled(ColorError, false).Render(SymbolFail+" "+fmt.Sprintf(format, args...)))
}

// Info prints a cyan informational line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styled(ColorInfo, false).Render(fmt.Sprintf(format, args...)))
}

// Muted prints a gray secondary line.
func Muted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styled(ColorMuted, false).Render(fmt.Sprintf(format, args...)))
}

// Title renders bold primary text inline.
func Title(s string) string {
	return styled(ColorPrimary, true).Render(s)
}

// StatusDot renders an up/down indicator with its label.
func StatusDot(up bool, label string) string {
	if up {
		return styled(ColorSuccess, false).Render(SymbolUp+" "+label+" online")
	}
	return styled(ColorError, false).Render(SymbolDown + " " + label + " offline")
}

// Swatch renders a small filled block in the given truecolor hex value,
// used by 'pidash themes' to preview palettes.
func Swatch(hex string) string {
	if !colorsEnabled {
		return "██"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
