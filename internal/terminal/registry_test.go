// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

func testContext() *Context {
	return &Context{
		Theme:   theme.NewState(),
		History: history.New(),
		Now:     func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) },
	}
}

func TestExecuteEmptyCommand(t *testing.T) {
	r := NewRegistry()
	out := r.Execute(Parse("   "), testContext())

	if out.Success {
		t.Error("empty command should not succeed")
	}
	if out.Err != "No command entered" {
		t.Errorf("Err = %q, want %q", out.Err, "No command entered")
	}
	if out.Content.Text != "" {
		t.Errorf("Content.Text = %q, want empty", out.Content.Text)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	r := NewRegistry()
	out := r.Execute(Parse("skil"), testContext())

	if out.Success {
		t.Error("unknown command should not succeed")
	}
	if out.Err != "Command not found: skil" {
		t.Errorf("Err = %q", out.Err)
	}
	if !strings.Contains(out.Content.Text, "Did you mean") {
		t.Errorf("missing suggestion text: %q", out.Content.Text)
	}
	if !strings.Contains(out.Content.Text, "skills") {
		t.Errorf("suggestions should include skills: %q", out.Content.Text)
	}
}

func TestExecuteAliasResolution(t *testing.T) {
	r := NewRegistry()
	ctx := testContext()

	canonical := r.Execute(Parse("certifications"), ctx)
	aliased := r.Execute(Parse("certs"), ctx)

	if !reflect.DeepEqual(canonical, aliased) {
		t.Errorf("alias output differs from canonical:\n%+v\n%+v", aliased, canonical)
	}
}

func TestExecuteHandlerErrorNormalized(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{
		Name: "boom",
		Handler: func(ctx *Context, args []string, flags Flags) (Output, error) {
			return Output{}, errors.New("backing store unavailable")
		},
	})

	out := r.Execute(Parse("boom"), testContext())
	if out.Success {
		t.Error("failing handler should not succeed")
	}
	if out.Err != "backing store unavailable" {
		t.Errorf("Err = %q", out.Err)
	}
	if out.Content.Text != "Error executing command: backing store unavailable" {
		t.Errorf("Content.Text = %q", out.Content.Text)
	}
}

func TestExecuteHandlerPanicRecovered(t *testing.T) {
	r := NewRegistry()
	r.Register(&Command{
		Name: "panic-error",
		Handler: func(ctx *Context, args []string, flags Flags) (Output, error) {
			panic(errors.New("index out of range"))
		},
	})
	r.Register(&Command{
		Name: "panic-value",
		Handler: func(ctx *Context, args []string, flags Flags) (Output, error) {
			panic(42)
		},
	})

	out := r.Execute(Parse("panic-error"), testContext())
	if out.Success || out.Err != "index out of range" {
		t.Errorf("panic(error) = %+v", out)
	}

	out = r.Execute(Parse("panic-value"), testContext())
	if out.Success || out.Err != "Unknown error occurred" {
		t.Errorf("panic(non-error) = %+v", out)
	}
}

func TestRegisterCollisionPanics(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
	}{
		{"duplicate name", &Command{Name: "help"}},
		{"name collides with alias", &Command{Name: "certs"}},
		{"alias collides with name", &Command{Name: "fresh", Aliases: []string{"skills"}}},
		{"alias collides with alias", &Command{Name: "fresh", Aliases: []string{"cv"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			defer func() {
				if recover() == nil {
					t.Error("Register should panic on collision")
				}
			}()
			r.Register(tt.cmd)
		})
	}
}

func TestIsEasterEgg(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"tatakae", "gear5", "bankai", "maki-zenin"} {
		if !r.IsEasterEgg(name) {
			t.Errorf("IsEasterEgg(%q) = false, want true", name)
		}
		out := r.Execute(Parse(name), testContext())
		if !out.Success {
			t.Errorf("easter egg %q failed to execute: %+v", name, out)
		}
	}

	if r.IsEasterEgg("help") {
		t.Error("help is not an easter egg")
	}
	if r.IsEasterEgg("nope") {
		t.Error("unknown command is not an easter egg")
	}
}

func TestEasterEggsHiddenFromHelpAndCompletion(t *testing.T) {
	r := NewRegistry()

	out := r.Execute(Parse("help"), testContext())
	if strings.Contains(out.Content.Text, "tatakae") {
		t.Error("help should not list easter eggs")
	}

	if matches := r.Autocomplete("tatak"); matches != nil {
		t.Errorf("Autocomplete should skip hidden commands, got %v", matches)
	}
}

func TestAutocomplete(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		partial string
		want    []string
	}{
		{"sk", []string{"skills"}},
		{"c", []string{"certifications", "contact", "clear"}},
		{"", nil},
		{"   ", nil},
		{"zzz", nil},
	}

	for _, tt := range tests {
		if got := r.Autocomplete(tt.partial); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Autocomplete(%q) = %v, want %v", tt.partial, got, tt.want)
		}
	}
}

func TestUniqueAutocomplete(t *testing.T) {
	r := NewRegistry()

	if got, ok := r.UniqueAutocomplete("sk"); !ok || got != "skills" {
		t.Errorf("UniqueAutocomplete(sk) = (%q, %v)", got, ok)
	}
	if _, ok := r.UniqueAutocomplete("c"); ok {
		t.Error("ambiguous partial should not complete")
	}
	if _, ok := r.UniqueAutocomplete(""); ok {
		t.Error("empty partial should not complete")
	}
}

func TestSimilarCommands(t *testing.T) {
	r := NewRegistry()

	// Close misspelling.
	got := r.SimilarCommands("skil")
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("SimilarCommands(skil) = %v", got)
	}
	found := false
	for _, s := range got {
		if s == "skills" {
			found = true
		}
	}
	if !found {
		t.Errorf("SimilarCommands(skil) = %v, want skills included", got)
	}

	// Truncated to three, in registration order.
	got = r.SimilarCommands("h")
	if len(got) > 3 {
		t.Errorf("SimilarCommands returned %d suggestions, max is 3", len(got))
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"abc", "abcd", 1},
		{"kitten", "sitting", 3},
		{"", "abc", 3},
	}

	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
