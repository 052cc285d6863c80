// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"fmt"
	"strings"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Command describes one executable capability.
type Command struct {
	// Name is the canonical command name (e.g., "skills")
	Name string

	// Aliases are alternative names (e.g., "certs", "certificates")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g., "skills [--frontend|--backend|--tools]")
	Usage string

	// Handler executes the command. A returned error or a panic is
	// normalized by Execute; it never reaches the caller.
	Handler func(ctx *Context, args []string, flags Flags) (Output, error)

	// Hidden commands don't appear in help or autocomplete
	Hidden bool
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds all registered commands. It is built once at startup and
// never mutated afterwards, so reads need no locking.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string

	// order preserves registration order for help, autocomplete, and
	// suggestions.
	order []string
}

// NewRegistry creates a registry with all built-in commands registered.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command. Name and alias collisions are programmer errors
// caught at startup, so it panics rather than returning an error.
func (r *Registry) Register(cmd *Command) {
	name := strings.ToLower(cmd.Name)
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("terminal: duplicate command %q", name))
	}
	if _, exists := r.aliases[name]; exists {
		panic(fmt.Sprintf("terminal: command %q collides with an alias", name))
	}

	r.commands[name] = cmd
	r.order = append(r.order, name)

	for _, alias := range cmd.Aliases {
		alias = strings.ToLower(alias)
		if _, exists := r.commands[alias]; exists {
			panic(fmt.Sprintf("terminal: alias %q collides with command", alias))
		}
		if _, exists := r.aliases[alias]; exists {
			panic(fmt.Sprintf("terminal: duplicate alias %q", alias))
		}
		r.aliases[alias] = name
	}
}

// Get retrieves a command by name or alias, or nil.
func (r *Registry) Get(name string) *Command {
	name = strings.ToLower(name)
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	return r.commands[name]
}

// Names returns all canonical command names in registration order,
// optionally including hidden commands.
func (r *Registry) Names(includeHidden bool) []string {
	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if !includeHidden && r.commands[name].Hidden {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Visible returns the non-hidden commands in registration order.
func (r *Registry) Visible() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		if cmd := r.commands[name]; !cmd.Hidden {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// IsEasterEgg reports whether the name belongs to a hidden command.
func (r *Registry) IsEasterEgg(name string) bool {
	cmd := r.Get(name)
	return cmd != nil && cmd.Hidden
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Execute resolves and runs a parsed command. It is a total function: empty
// input, unknown commands, handler errors, and handler panics all come back
// as a normalized Output, never as a Go error or re-panic.
func (r *Registry) Execute(parsed ParsedCommand, ctx *Context) (out Output) {
	defer func() {
		if rec := recover(); rec != nil {
			msg := "Unknown error occurred"
			if err, ok := rec.(error); ok {
				msg = err.Error()
			}
			out = Fail("Error executing command: "+msg, msg)
		}
	}()

	if parsed.Command == "" {
		return Fail("", "No command entered")
	}

	cmd := r.Get(parsed.Command)
	if cmd == nil {
		notFound := "Command not found: " + parsed.Command
		text := notFound
		if suggestions := r.SimilarCommands(parsed.Command); len(suggestions) > 0 {
			text += "\n\nDid you mean: " + strings.Join(suggestions, ", ") + "?"
		}
		return Fail(text, notFound)
	}

	result, err := cmd.Handler(ctx, parsed.Args, parsed.Flags)
	if err != nil {
		return Fail("Error executing command: "+err.Error(), err.Error())
	}
	return result
}
