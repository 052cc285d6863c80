// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const banner = `
 _   _                             _  __                   _
| | | | __ _ ___ ___  __ _ _ __   | |/ /__ _ _____ __ ___ (_)
| |_| |/ _` + "`" + ` / __/ __|/ _` + "`" + ` | '_ \  | ' // _` + "`" + ` |_  / '_ ` + "`" + ` _ \| |
|  _  | (_| \__ \__ \ (_| | | | | | . \ (_| |/ /| | | | | | |
|_| |_|\__,_|___/___/\__,_|_| |_| |_|\_\__,_/___|_| |_| |_|_|
`

const promptText = "visitor@portfolio:~$"

// chromeHeight is the rows taken by the prompt line and status bar.
const chromeHeight = 2

func promptWidth() int {
	return runewidth.StringWidth(promptText) + 2
}

// refreshViewport re-renders the output log into the viewport and scrolls
// to the bottom.
func (m *Model) refreshViewport() {
	var b strings.Builder
	for _, ln := range m.lines {
		switch ln.kind {
		case lineInput:
			b.WriteString(m.styles.Prompt.Render(promptText) + " " + m.styles.Command.Render(strings.TrimPrefix(ln.text, promptText+" ")))
		case lineError:
			b.WriteString(m.styles.ErrorText.Render(ln.text))
		case lineSuggestion:
			b.WriteString(m.styles.Suggestion.Render(ln.text))
		default:
			b.WriteString(m.styles.Output.Render(ln.text))
		}
		b.WriteByte('\n')
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(m.promptLine())
	b.WriteByte('\n')
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) promptLine() string {
	if m.form != nil {
		return m.formLine()
	}
	return m.styles.Prompt.Render(promptText) + " " + m.input.View()
}

func (m Model) formLine() string {
	f := m.form
	field := f.field()

	label := m.styles.Accent.Render(field.Label + ":")
	if field.Multiline {
		hint := m.styles.Muted.Render(" (ctrl+s to send, esc to cancel)")
		return label + hint + "\n" + f.area.View()
	}
	return label + " " + f.input.View()
}

// statusBar renders the bottom bar, padded to the full terminal width. The
// right side lists the short-help key bindings.
func (m Model) statusBar() string {
	left := fmt.Sprintf(" %s | %d commands", m.ectx.Theme.Active().Name, m.ectx.History.Len())

	var hints []string
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	right := strings.Join(hints, " | ") + " "

	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	return m.styles.StatusBar.Render(left + strings.Repeat(" ", pad) + right)
}
