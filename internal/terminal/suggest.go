// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import "strings"

// =============================================================================
// AUTOCOMPLETE
// =============================================================================

// Autocomplete returns the visible command names with the given prefix. An
// empty or all-whitespace partial yields no matches.
func (r *Registry) Autocomplete(partial string) []string {
	trimmed := strings.ToLower(strings.TrimSpace(partial))
	if trimmed == "" {
		return nil
	}

	var matches []string
	for _, name := range r.Names(false) {
		if strings.HasPrefix(name, trimmed) {
			matches = append(matches, name)
		}
	}
	return matches
}

// UniqueAutocomplete returns a completion only when exactly one visible
// command matches the partial; ambiguous or zero matches report false so the
// caller leaves the input unchanged.
func (r *Registry) UniqueAutocomplete(partial string) (string, bool) {
	matches := r.Autocomplete(partial)
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

const maxSuggestions = 3

// SimilarCommands proposes near-miss alternatives for an unrecognized
// command name. A visible command qualifies when it shares the first
// character, contains the input or is contained by it, or sits within edit
// distance 2. Matches come back in registration order, truncated to three;
// they are deliberately not ranked by distance, mirroring how users scan the
// fixed help listing.
func (r *Registry) SimilarCommands(command string) []string {
	input := strings.ToLower(command)
	if input == "" {
		return nil
	}

	var suggestions []string
	for _, name := range r.Names(false) {
		match := name[0] == input[0] ||
			strings.Contains(name, input) ||
			strings.Contains(input, name) ||
			editDistance(input, name) <= 2

		if match {
			suggestions = append(suggestions, name)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}

// editDistance computes the Levenshtein distance with unit costs for
// insertion, deletion, and substitution.
func editDistance(a, b string) int {
	la, lb := len(a), len(b)

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
