// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package terminal implements the command interpreter: tokenizing input
// lines, resolving names through aliases, dispatching to handlers, and
// normalizing every failure into a renderable output.
package terminal

import "strings"

// =============================================================================
// PARSED COMMAND
// =============================================================================

// FlagValue is the value bound to one --flag. A flag followed by a non-flag
// token captures that token as Value; otherwise it is a bare boolean flag.
type FlagValue struct {
	Value string
	Bool  bool
}

// Flags maps flag names (without the -- prefix) to their values.
type Flags map[string]FlagValue

// Has reports whether the flag was given at all.
func (f Flags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Value returns the string value of a flag, or "" for boolean/absent flags.
func (f Flags) Value(name string) string {
	return f[name].Value
}

// ParsedCommand is the result of parsing one input line. Command is empty
// exactly when the trimmed input was empty. Args and Flags partition the
// non-command tokens.
type ParsedCommand struct {
	Command string
	Args    []string
	Flags   Flags
}

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits an input line into tokens, respecting single and double
// quotes. Spaces inside quotes are literal; runs of spaces outside quotes
// produce no empty tokens. A closing quote flushes the accumulated token, so
// adjacent quoted spans become separate tokens. An unterminated quote
// swallows the rest of the line into one token.
func Tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	var quoteChar rune

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, char := range input {
		switch {
		case (char == '"' || char == '\'') && !inQuotes:
			inQuotes = true
			quoteChar = char

		case char == quoteChar && inQuotes:
			inQuotes = false
			quoteChar = 0
			flush()

		case char == ' ' && !inQuotes:
			flush()

		default:
			current.WriteRune(char)
		}
	}

	flush()
	return tokens
}

// =============================================================================
// PARSER
// =============================================================================

// Parse turns a raw input line into a ParsedCommand. The first token,
// lowercased, is the command name. A token starting with "--" is a flag; it
// greedily consumes the following token as its value unless that token is
// itself a flag, in which case it is a boolean flag. Everything else is a
// positional argument. This grammar cannot express an explicit empty-string
// or false flag value; none of the registered commands need one.
func Parse(input string) ParsedCommand {
	parsed := ParsedCommand{
		Args:  []string{},
		Flags: Flags{},
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return parsed
	}

	tokens := Tokenize(trimmed)
	if len(tokens) == 0 {
		return parsed
	}

	parsed.Command = strings.ToLower(tokens[0])

	for i := 1; i < len(tokens); i++ {
		token := tokens[i]

		if strings.HasPrefix(token, "--") {
			name := token[2:]
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
				parsed.Flags[name] = FlagValue{Value: tokens[i+1]}
				i++
			} else {
				parsed.Flags[name] = FlagValue{Bool: true}
			}
			continue
		}

		parsed.Args = append(parsed.Args, token)
	}

	return parsed
}
