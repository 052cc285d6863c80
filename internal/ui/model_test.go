// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/config"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/terminal"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

func testModel(t *testing.T) Model {
	t.Helper()

	ectx := &terminal.Context{
		Theme:   theme.NewState(),
		History: history.New(),
		Submit: func(ctx context.Context, data contact.FormData) contact.Result {
			return contact.Result{Success: true, Message: "Message sent successfully!"}
		},
	}
	m := NewModel(config.Default(), ectx)

	// Simulate the initial window size message.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestSubmitAppendsOutput(t *testing.T) {
	m := testModel(t)
	before := len(m.lines)

	m.submit("help")

	require.Greater(t, len(m.lines), before)
	assert.Contains(t, m.lines[before].text, "help")

	var found bool
	for _, ln := range m.lines[before:] {
		if ln.kind == lineOutput && ln.text != "" {
			found = true
		}
	}
	assert.True(t, found, "help should produce output lines")
}

func TestSubmitUnknownCommandIsError(t *testing.T) {
	m := testModel(t)

	m.submit("frobnicate")

	last := m.lines[len(m.lines)-2]
	assert.Equal(t, lineError, last.kind)
	assert.Contains(t, last.text, "Command not found")
}

func TestClearCommandEmptiesLog(t *testing.T) {
	m := testModel(t)
	m.submit("help")
	require.NotEmpty(t, m.lines)

	m.submit("clear")

	assert.Empty(t, m.lines)
}

func TestCompleteUniquePrefix(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("ce")

	m.complete()

	assert.Equal(t, "certifications ", m.input.Value())
}

func TestCompleteAmbiguousPrefixListsMatches(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("c")
	before := len(m.lines)

	m.complete()

	// Input unchanged, suggestions appended instead.
	assert.Equal(t, "c", m.input.Value())
	require.Greater(t, len(m.lines), before)
	assert.Equal(t, lineSuggestion, m.lines[len(m.lines)-1].kind)
	assert.Contains(t, m.lines[len(m.lines)-1].text, "contact")
}

func TestHistoryNavigationFillsInput(t *testing.T) {
	m := testModel(t)
	m.submit("help")
	m.submit("skills")

	updated, _ := m.updatePrompt(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, "skills", m.input.Value())

	updated, _ = m.updatePrompt(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, "help", m.input.Value())
}

func TestStatusBarListsShortHelpBindings(t *testing.T) {
	m := testModel(t)

	bar := m.statusBar()

	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		assert.Contains(t, bar, h.Key+" "+h.Desc)
	}
}

func TestContactCommandStartsForm(t *testing.T) {
	m := testModel(t)

	m.submit("contact")

	require.NotNil(t, m.form)
	assert.Equal(t, "name", m.form.field().Name)
}

func TestFormEscapeCancels(t *testing.T) {
	m := testModel(t)
	m.submit("contact")
	require.NotNil(t, m.form)

	updated, _ := m.updateForm(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Nil(t, m.form)
}
