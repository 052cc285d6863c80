// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package terminal

import "fmt"

// =============================================================================
// OUTPUT
// =============================================================================

// Action tells the caller what to do with a command result.
type Action int

const (
	// ActionRender displays the content in the output log.
	ActionRender Action = iota

	// ActionClear erases all prior output. Content is empty.
	ActionClear
)

// Kind discriminates the content payload.
type Kind int

const (
	// KindText is plain renderable text.
	KindText Kind = iota

	// KindForm asks the caller to run an interactive form and submit the
	// result through the context's submit channel.
	KindForm

	// KindDownload asks the caller to trigger a file download.
	KindDownload
)

// FormField describes one input field of an interactive form.
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Multiline   bool   `json:"multiline,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// FormSpec describes an interactive form the caller should present.
type FormSpec struct {
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

// DownloadSpec describes a file the caller should fetch.
type DownloadSpec struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Content is the tagged payload of a command result. Exactly the fields
// matching Kind are populated; Text may accompany a form or download as the
// message shown above it.
type Content struct {
	Kind     Kind          `json:"kind"`
	Text     string        `json:"text,omitempty"`
	Form     *FormSpec     `json:"form,omitempty"`
	Download *DownloadSpec `json:"download,omitempty"`
}

// Output is the uniform result of executing one command. Content is always
// present, even on failure; Err carries the internal detail, which may
// differ from the user-facing text.
type Output struct {
	Success bool    `json:"success"`
	Action  Action  `json:"action"`
	Content Content `json:"content"`
	Err     string  `json:"error,omitempty"`
}

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// Text returns a successful plain-text output.
func Text(s string) Output {
	return Output{Success: true, Content: Content{Kind: KindText, Text: s}}
}

// Textf returns a successful formatted plain-text output.
func Textf(format string, args ...interface{}) Output {
	return Text(fmt.Sprintf(format, args...))
}

// Fail returns a failed output where the user-facing text and the internal
// error detail differ.
func Fail(text, errDetail string) Output {
	return Output{
		Success: false,
		Content: Content{Kind: KindText, Text: text},
		Err:     errDetail,
	}
}

// Clear returns the output that instructs the caller to erase the log.
func Clear() Output {
	return Output{Success: true, Action: ActionClear}
}
