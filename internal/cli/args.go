// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package cli parses the process arguments and runs the plain REPL mode.
package cli

import "strings"

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits raw process arguments into a subcommand, positional
// arguments, and -flag/--flag values.
type ArgParser struct {
	subcommand  string
	positionals []string
	flags       map[string]string
	boolFlags   map[string]bool
}

// booleanFlags never take a value, so the token after them stays positional.
var booleanFlags = map[string]bool{
	"plain": true,
}

// NewArgParser parses raw arguments (without the program name).
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			name := strings.TrimLeft(arg, "-")

			// -flag=value form
			if eq := strings.Index(name, "="); eq >= 0 {
				p.flags[name[:eq]] = name[eq+1:]
				continue
			}

			if booleanFlags[name] {
				p.boolFlags[name] = true
				continue
			}

			// -flag value form, unless the next token is another flag
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				p.flags[name] = raw[i+1]
				i++
			} else {
				p.boolFlags[name] = true
			}
			continue
		}

		if p.subcommand == "" && len(p.positionals) == 0 {
			p.subcommand = arg
		} else {
			p.positionals = append(p.positionals, arg)
		}
	}

	return p
}

// Subcommand returns the first non-flag argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a -flag value pair, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// FlagOrDefault returns the flag value or the default when unset.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if v, ok := p.flags[name]; ok {
		return v
	}
	return defaultValue
}

// BoolFlag reports whether a bare -flag was given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// HasFlag reports whether the flag was given in either form.
func (p *ArgParser) HasFlag(name string) bool {
	if _, ok := p.flags[name]; ok {
		return true
	}
	return p.boolFlags[name]
}

// Positional returns the nth positional argument after the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positionals) {
		return ""
	}
	return p.positionals[index]
}
