// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/resume"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/terminal"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - chromeHeight
		m.input.Width = msg.Width - promptWidth()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// =============================================================================
// PROMPT MODE
// =============================================================================

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		m.submit(m.input.Value())
		m.input.SetValue("")
		return m, nil

	case key.Matches(msg, m.keyMap.Complete):
		m.complete()
		return m, nil

	case key.Matches(msg, m.keyMap.HistUp):
		if cmd, ok := m.ectx.History.Navigate(history.Up); ok {
			m.input.SetValue(cmd)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.HistDown):
		if cmd, ok := m.ectx.History.Navigate(history.Down); ok {
			m.input.SetValue(cmd)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.ClearLine):
		m.input.SetValue("")
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.lines = nil
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one command and appends its result to the output log.
func (m *Model) submit(raw string) {
	input := strings.TrimSpace(raw)

	m.lines = append(m.lines, newLine(lineInput, promptText+" "+input))
	if input == "" {
		m.refreshViewport()
		return
	}

	m.ectx.History.Add(input)
	out := m.registry.Execute(terminal.Parse(input), m.ectx)

	if out.Action == terminal.ActionClear {
		m.lines = nil
		m.refreshViewport()
		return
	}

	if out.Content.Text != "" {
		kind := lineOutput
		if !out.Success {
			kind = lineError
		}
		m.lines = append(m.lines, newLine(kind, out.Content.Text))
	}

	switch out.Content.Kind {
	case terminal.KindForm:
		m.startForm(out.Content.Form)
	case terminal.KindDownload:
		m.handleDownload(out.Content.Download)
	}

	// The theme command may have swapped the palette.
	m.styles = theme.NewStyles(m.ectx.Theme.Active())
	m.lines = append(m.lines, newLine(lineOutput, ""))
	m.refreshViewport()
}

// complete applies tab completion to the current input.
func (m *Model) complete() {
	partial := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if partial == "" || strings.Contains(partial, " ") {
		return
	}

	if full, ok := m.registry.UniqueAutocomplete(partial); ok {
		m.input.SetValue(full + " ")
		m.input.CursorEnd()
		return
	}

	if matches := m.registry.Autocomplete(partial); len(matches) > 0 {
		m.lines = append(m.lines, newLine(lineSuggestion, strings.Join(matches, "  ")))
		m.refreshViewport()
	}
}

// handleDownload writes the generated resume to disk and shows a rendered
// preview in the log.
func (m *Model) handleDownload(dl *terminal.DownloadSpec) {
	if dl == nil {
		return
	}

	md := resume.Markdown(m.ectx.Data, resume.Options{})
	name := strings.TrimSuffix(dl.Filename, filepath.Ext(dl.Filename)) + ".md"

	if err := os.WriteFile(name, []byte(md), 0644); err != nil {
		m.lines = append(m.lines, newLine(lineError, "Could not write "+name+": "+err.Error()))
		return
	}

	if rendered, err := glamour.Render(md, "dark"); err == nil {
		m.lines = append(m.lines, newLine(lineOutput, rendered))
	}
	m.lines = append(m.lines, newLine(lineSuggestion, "Saved "+name))
}

// =============================================================================
// FORM MODE
// =============================================================================

func (m *Model) startForm(spec *terminal.FormSpec) {
	if spec == nil || len(spec.Fields) == 0 || m.ectx.Submit == nil {
		return
	}

	f := &formState{
		spec:   spec,
		values: make(map[string]string, len(spec.Fields)),
	}

	f.input = textinput.New()
	f.input.Prompt = ""
	f.input.CharLimit = 254

	f.area = textarea.New()
	f.area.SetHeight(4)
	f.area.CharLimit = 5000

	m.form = f
	m.focusFormField()
}

func (m *Model) focusFormField() {
	f := m.form
	field := f.field()

	if field.Multiline {
		f.area.Placeholder = field.Placeholder
		f.area.SetValue("")
		f.area.Focus()
		return
	}
	f.input.Placeholder = field.Placeholder
	f.input.SetValue("")
	f.input.Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	if key.Matches(msg, m.keyMap.CancelForm) {
		m.form = nil
		m.lines = append(m.lines, newLine(lineSuggestion, "Form cancelled."), newLine(lineOutput, ""))
		m.refreshViewport()
		return m, nil
	}

	// Enter advances single-line fields. Multiline fields take enter as a
	// newline and finish on ctrl+s.
	finish := false
	if f.multiline() {
		finish = msg.String() == "ctrl+s"
	} else {
		finish = key.Matches(msg, m.keyMap.Submit)
	}

	if finish {
		field := f.field()
		if field.Multiline {
			f.values[field.Name] = f.area.Value()
		} else {
			f.values[field.Name] = f.input.Value()
		}

		if f.index+1 < len(f.spec.Fields) {
			f.index++
			m.focusFormField()
			return m, nil
		}
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	if f.multiline() {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) submitForm() {
	f := m.form
	m.form = nil

	res := m.ectx.Submit(context.Background(), contact.FormData{
		Name:    f.values["name"],
		Email:   f.values["email"],
		Message: f.values["message"],
	})

	kind := lineOutput
	if !res.Success {
		kind = lineError
	}
	m.lines = append(m.lines, newLine(kind, res.Message), newLine(lineOutput, ""))
	m.refreshViewport()
}
