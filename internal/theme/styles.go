// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// LIPGLOSS STYLE SET
// =============================================================================

// Styles holds the lip gloss styles derived from one theme palette. The TUI
// rebuilds it whenever the active theme changes.
type Styles struct {
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout
	App       lipgloss.Style
	Container lipgloss.Style

	// Banner and prompt line
	Banner     lipgloss.Style
	Prompt     lipgloss.Style
	PromptHost lipgloss.Style
	InputText  lipgloss.Style

	// Output lines
	Output     lipgloss.Style
	Command    lipgloss.Style
	ErrorText  lipgloss.Style
	Success    lipgloss.Style
	Accent     lipgloss.Style
	Muted      lipgloss.Style
	Suggestion lipgloss.Style

	// Status bar
	StatusBar lipgloss.Style
}

// NewStyles builds the style set for a theme, detecting the terminal's color
// capability through termenv.
func NewStyles(t Theme) *Styles {
	profile := termenv.ColorProfile()

	s := &Styles{
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	s.init(t.Colors)
	return s
}

func (s *Styles) init(c Colors) {
	bg := lipgloss.Color(c.Background)
	text := lipgloss.Color(c.Text)
	accent := lipgloss.Color(c.Accent)
	errColor := lipgloss.Color(c.Error)
	success := lipgloss.Color(c.Success)

	s.App = lipgloss.NewStyle().Background(bg)
	s.Container = lipgloss.NewStyle().Padding(0, 1)

	s.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	s.Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(success)

	s.PromptHost = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	s.InputText = lipgloss.NewStyle().
		Foreground(text)

	s.Output = lipgloss.NewStyle().
		Foreground(text)

	s.Command = lipgloss.NewStyle().
		Bold(true).
		Foreground(text)

	s.ErrorText = lipgloss.NewStyle().
		Foreground(errColor)

	s.Success = lipgloss.NewStyle().
		Foreground(success)

	s.Accent = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	s.Muted = lipgloss.NewStyle().
		Foreground(text).
		Faint(true)

	s.Suggestion = lipgloss.NewStyle().
		Foreground(accent).
		Italic(true)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(text).
		Background(bg).
		Faint(true).
		Padding(0, 1)
}
