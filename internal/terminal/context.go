// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import (
	"time"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/contact"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/history"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/theme"
)

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context is the state bundle passed to every handler invocation. It is
// owned by the embedding layer (TUI model, REPL loop, or server session);
// handlers read Data and History, and mutate only Theme. Data may be nil
// when no portfolio snapshot could be loaded; handlers must render something
// useful anyway.
type Context struct {
	Data    *portfolio.Data
	Theme   *theme.State
	History *history.Log

	// Submit delivers contact-form submissions. Nil disables the form.
	Submit contact.SubmitFunc

	// Now supplies the current time for duration arithmetic. Nil falls
	// back to time.Now.
	Now func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
