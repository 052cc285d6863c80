// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP
// =============================================================================

// KeyMap defines the keyboard bindings for the terminal view.
type KeyMap struct {
	Submit     key.Binding
	Complete   key.Binding
	HistUp     key.Binding
	HistDown   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	ClearLine  key.Binding
	Clear      key.Binding
	CancelForm key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "run command"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "autocomplete"),
		),
		HistUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("Up", "previous command"),
		),
		HistDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("Down", "next command"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		ClearLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "clear input"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear screen"),
		),
		CancelForm: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel form"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

var _ help.KeyMap = KeyMap{}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.HistUp, k.Quit}
}

// FullHelp groups all bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.ClearLine, k.Clear},
		{k.HistUp, k.HistDown, k.PageUp, k.PageDown},
		{k.CancelForm, k.Quit},
	}
}
