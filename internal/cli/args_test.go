// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgParserSubcommandAndFlags(t *testing.T) {
	p := NewArgParser([]string{"serve", "-config", "/tmp/c.toml", "-plain", "extra"})

	assert.Equal(t, "serve", p.Subcommand())
	assert.Equal(t, "/tmp/c.toml", p.Flag("config"))
	assert.True(t, p.HasFlag("plain"))
	assert.False(t, p.HasFlag("verbose"))
	assert.Equal(t, "extra", p.Positional(0))
	assert.Equal(t, "", p.Positional(1))
}

func TestArgParserEqualsForm(t *testing.T) {
	p := NewArgParser([]string{"--config=/etc/p.toml", "tui"})

	assert.Equal(t, "/etc/p.toml", p.Flag("config"))
	assert.Equal(t, "tui", p.Subcommand())
}

func TestArgParserFlagBeforeFlag(t *testing.T) {
	// A flag followed by another flag is boolean, not valued.
	p := NewArgParser([]string{"-plain", "-config", "x"})

	assert.True(t, p.BoolFlag("plain"))
	assert.Equal(t, "x", p.Flag("config"))
	assert.Equal(t, "", p.Subcommand())
}

func TestArgParserBooleanFlagKeepsNextToken(t *testing.T) {
	// -plain takes no value, so the following token is not consumed.
	p := NewArgParser([]string{"-plain", "tui"})

	assert.True(t, p.BoolFlag("plain"))
	assert.Equal(t, "tui", p.Subcommand())

	p = NewArgParser([]string{"seed", "-plain", "after"})
	assert.True(t, p.BoolFlag("plain"))
	assert.Equal(t, "seed", p.Subcommand())
	assert.Equal(t, "after", p.Positional(0))
}

func TestArgParserDefaults(t *testing.T) {
	p := NewArgParser(nil)

	assert.Equal(t, "", p.Subcommand())
	assert.Equal(t, "fallback", p.FlagOrDefault("missing", "fallback"))
}
