// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package theme holds the terminal color themes and the active-theme state.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// THEME DEFINITIONS
// =============================================================================

// Colors is the five-slot palette every theme provides.
type Colors struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Error      string `json:"error"`
	Success    string `json:"success"`
}

// Theme is a named palette.
type Theme struct {
	Name   string `json:"name"`
	Colors Colors `json:"colors"`
}

// DefaultName is the theme active at startup.
const DefaultName = "default"

var themes = map[string]Theme{
	"default": {
		Name: "default",
		Colors: Colors{
			Background: "#0a0e27",
			Text:       "#e0e0e0",
			Accent:     "#00ff9f",
			Error:      "#ff6b6b",
			Success:    "#51cf66",
		},
	},
	"cyberpunk": {
		Name: "cyberpunk",
		Colors: Colors{
			Background: "#0d0221",
			Text:       "#f72585",
			Accent:     "#7209b7",
			Error:      "#ff006e",
			Success:    "#4cc9f0",
		},
	},
	"matrix": {
		Name: "matrix",
		Colors: Colors{
			Background: "#000000",
			Text:       "#00ff00",
			Accent:     "#00ff00",
			Error:      "#ff0000",
			Success:    "#00ff00",
		},
	},
	"dracula": {
		Name: "dracula",
		Colors: Colors{
			Background: "#282a36",
			Text:       "#f8f8f2",
			Accent:     "#bd93f9",
			Error:      "#ff5555",
			Success:    "#50fa7b",
		},
	},
}

// Lookup returns the theme with the given name (case-insensitive).
func Lookup(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(name)]
	return t, ok
}

// Names lists the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// ACTIVE THEME STATE
// =============================================================================

// State is the mutable active-theme cell. It is owned by whoever embeds the
// interpreter (the TUI model, the REPL loop, a server session) rather than
// living in package state, so each embedding gets its own.
type State struct {
	mu     sync.RWMutex
	active Theme
}

// NewState returns a State holding the default theme.
func NewState() *State {
	t, _ := Lookup(DefaultName)
	return &State{active: t}
}

// Active returns the current theme.
func (s *State) Active() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Set switches to the named theme. It reports false and leaves the state
// unchanged when the name is unknown.
func (s *State) Set(name string) bool {
	t, ok := Lookup(name)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.active = t
	s.mu.Unlock()
	return true
}
