// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package ui implements the full-screen terminal interface built on Bubble
// Tea. It renders the command interpreter as a scrolling output log with a
// prompt line, history navigation, and tab completion.
package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/config"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/terminal"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// =============================================================================
// OUTPUT LOG
// =============================================================================

// lineKind discriminates how a log line is styled.
type lineKind int

const (
	lineInput lineKind = iota
	lineOutput
	lineError
	lineSuggestion
)

// line is one rendered entry of the output log.
type line struct {
	id   string
	kind lineKind
	text string
}

func newLine(kind lineKind, text string) line {
	return line{id: uuid.NewString(), kind: kind, text: text}
}

// =============================================================================
// CONTACT FORM STATE
// =============================================================================

// formState tracks an in-progress contact form. The prompt is swapped for
// the form inputs until the visitor submits or cancels.
type formState struct {
	spec   *terminal.FormSpec
	index  int
	values map[string]string

	input textinput.Model
	area  textarea.Model
}

func (f *formState) field() terminal.FormField {
	return f.spec.Fields[f.index]
}

func (f *formState) multiline() bool {
	return f.field().Multiline
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the portfolio terminal.
type Model struct {
	cfg      *config.Config
	registry *terminal.Registry
	ectx     *terminal.Context

	styles *theme.Styles
	keyMap KeyMap

	viewport viewport.Model
	input    textinput.Model

	lines []line
	form  *formState

	width  int
	height int
	ready  bool
}

// NewModel builds the model around the shared interpreter context.
func NewModel(cfg *config.Config, ectx *terminal.Context) Model {
	styles := theme.NewStyles(ectx.Theme.Active())

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type a command, try 'help'"
	ti.CharLimit = 512
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		cfg:      cfg,
		registry: terminal.NewRegistry(),
		ectx:     ectx,
		styles:   styles,
		keyMap:   DefaultKeyMap(),
		viewport: vp,
		input:    ti,
	}
	m.pushWelcome()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) pushWelcome() {
	m.lines = append(m.lines,
		newLine(lineOutput, banner),
		newLine(lineSuggestion, "Welcome! Type 'help' to see available commands."),
		newLine(lineOutput, ""),
	)
}

// Run starts the TUI program and blocks until it exits.
func Run(cfg *config.Config, store *portfolio.Store) error {
	data, err := store.Snapshot(context.Background())
	if err != nil && !errors.Is(err, portfolio.ErrNotSeeded) {
		return err
	}

	themeState := theme.NewState()
	if cfg.UI.Theme != "" {
		themeState.Set(cfg.UI.Theme)
	}

	ectx := &terminal.Context{
		Data:    data,
		Theme:   themeState,
		History: history.New(),
		Submit:  contact.NewWebhookSubmitter(cfg.Contact.WebhookURL, nil),
	}

	p := tea.NewProgram(NewModel(cfg, ectx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
