// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/config"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/resume"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/terminal"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// lineEditor wraps liner with persistent on-disk input history.
type lineEditor struct {
	line        *liner.State
	historyFile string
}

func newLineEditor(registry *terminal.Registry) *lineEditor {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	// Complete command names at the start of the line only.
	line.SetCompleter(func(text string) []string {
		if strings.Contains(text, " ") {
			return nil
		}
		return registry.Autocomplete(strings.ToLower(text))
	})

	dir, err := config.Dir()
	if err != nil {
		dir = os.TempDir()
	}

	ed := &lineEditor{
		line:        line,
		historyFile: filepath.Join(dir, "repl_history"),
	}
	ed.loadHistory()
	return ed
}

func (ed *lineEditor) loadHistory() {
	if f, err := os.Open(ed.historyFile); err == nil {
		ed.line.ReadHistory(f)
		f.Close()
	}
}

func (ed *lineEditor) readInput(prompt string) (string, error) {
	input, err := ed.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		ed.line.AppendHistory(input)
	}
	return input, nil
}

func (ed *lineEditor) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(ed.historyFile), 0755); err != nil {
		return
	}
	f, err := os.OpenFile(ed.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	ed.line.WriteHistory(f)
}

func (ed *lineEditor) close() {
	ed.saveHistory()
	ed.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// RunREPL runs the plain line-based interpreter loop. It shares the command
// registry with the TUI and the server but renders everything as flat text.
func RunREPL(cfg *config.Config, store *portfolio.Store) error {
	registry := terminal.NewRegistry()

	data, err := store.Snapshot(context.Background())
	if err != nil && !errors.Is(err, portfolio.ErrNotSeeded) {
		return fmt.Errorf("load portfolio: %w", err)
	}
	if data == nil {
		fmt.Println("No portfolio data found. Run `portfolio-terminal seed` first.")
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

	ed := newLineEditor(registry)
	defer ed.close()

	styles := theme.NewStyles(themeState.Active())
	fmt.Println(styles.Banner.Render("Welcome to the portfolio terminal."))
	fmt.Println(styles.Muted.Render("Type 'help' for commands, 'exit' to leave."))
	fmt.Println()

	for {
		input, err := ed.readInput(styles.Prompt.Render("visitor@portfolio") + styles.Muted.Render(":~$ "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			// EOF exits quietly.
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			fmt.Println(styles.Muted.Render("Goodbye!"))
			return nil
		}

		ectx.History.Add(input)
		out := registry.Execute(terminal.Parse(input), ectx)
		styles = renderOutput(ed, ectx, out, styles)
	}
}

// renderOutput prints one command result and returns the style set, rebuilt
// when the active theme changed.
func renderOutput(ed *lineEditor, ectx *terminal.Context, out terminal.Output, styles *theme.Styles) *theme.Styles {
	if out.Action == terminal.ActionClear {
		// ANSI clear screen plus cursor home.
		fmt.Print("\033[2J\033[H")
		return styles
	}

	if !out.Success {
		if out.Content.Text != "" {
			fmt.Println(styles.ErrorText.Render(out.Content.Text))
		}
		fmt.Println()
		return styles
	}

	if out.Content.Text != "" {
		fmt.Println(out.Content.Text)
	}

	switch out.Content.Kind {
	case terminal.KindForm:
		runForm(ed, ectx, out.Content.Form, styles)
	case terminal.KindDownload:
		saveResume(ectx, out.Content.Download, styles)
	}

	fmt.Println()
	return theme.NewStyles(ectx.Theme.Active())
}

// runForm collects the form fields line by line and submits the message.
func runForm(ed *lineEditor, ectx *terminal.Context, form *terminal.FormSpec, styles *theme.Styles) {
	if form == nil || ectx.Submit == nil {
		return
	}

	values := make(map[string]string, len(form.Fields))
	for _, field := range form.Fields {
		input, err := ed.readInput(styles.Accent.Render(field.Label + ": "))
		if err != nil {
			fmt.Println(styles.Muted.Render("[Form cancelled]"))
			return
		}
		values[field.Name] = input
	}

	res := ectx.Submit(context.Background(), contact.FormData{
		Name:    values["name"],
		Email:   values["email"],
		Message: values["message"],
	})
	if res.Success {
		fmt.Println(styles.Success.Render(res.Message))
	} else {
		fmt.Println(styles.ErrorText.Render(res.Message))
	}
}

// saveResume writes the generated Markdown resume next to the working
// directory, since the plain REPL has no browser to hand the download to.
func saveResume(ectx *terminal.Context, dl *terminal.DownloadSpec, styles *theme.Styles) {
	if dl == nil {
		return
	}

	name := strings.TrimSuffix(dl.Filename, filepath.Ext(dl.Filename)) + ".md"
	md := resume.Markdown(ectx.Data, resume.Options{})

	if err := os.WriteFile(name, []byte(md), 0644); err != nil {
		log.Printf("RESUME_WRITE_FAILED | file=%s error=%v", name, err)
		fmt.Println(styles.ErrorText.Render("Could not write " + name))
		return
	}
	fmt.Println(styles.Success.Render("Saved " + name))
}
