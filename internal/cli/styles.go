// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/model"
)

// Palette groups the styles for one resolved theme.
type Palette struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Bold     lipgloss.Style
	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
}

// Dark is the palette for dark backgrounds.
var Dark = Palette{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")).MarginBottom(1),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3")),
	Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
	Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")),
	Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#737373")),
	Bold:     lipgloss.NewStyle().Bold(true),
	BarFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
	BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("#404040")),
}

// Light is the palette for light backgrounds.
var Light = Palette{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed")).MarginBottom(1),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#525252")),
	Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
	Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")),
	Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a")),
	Bold:     lipgloss.NewStyle().Bold(true),
	BarFull:  lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
	BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d4")),
}

// ForTheme returns the palette for a resolved (light or dark) theme.
func ForTheme(theme model.Theme) Palette {
	if theme == model.ThemeDark {
		return Dark
	}
	return Light
}

// RenderProgress draws a fixed-width progress bar. The visual indicator is
// clamped at 100% regardless of the raw percentage.
func (p Palette) RenderProgress(percent decimal.Decimal, width int) string {
	if width <= 0 {
		return ""
	}

	ratio := percent.InexactFloat64() / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	full := int(ratio * float64(width))
	return p.BarFull.Render(strings.Repeat("█", full)) +
		p.BarEmpty.Render(strings.Repeat("░", width-full))
}
