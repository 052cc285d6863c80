// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package history tracks executed commands and the Up/Down recall cursor.
package history

import "sync"

// Direction selects which way the recall cursor moves.
type Direction int

const (
	Up Direction = iota
	Down
)

// Log is an append-only command history with a navigation cursor. The cursor
// starts detached (no entry selected); Up walks toward older entries, Down
// toward newer ones. Walking Down past the newest entry detaches the cursor
// again and yields an empty string so the input line clears.
type Log struct {
	mu      sync.Mutex
	entries []string
	cursor  int // index into entries, -1 when detached
}

// New returns an empty history log.
func New() *Log {
	return &Log{cursor: -1}
}

// Add appends a command and detaches the cursor.
func (l *Log) Add(command string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, command)
	l.cursor = -1
}

// Entries returns a copy of all recorded commands, oldest first.
func (l *Log) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded commands.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Navigate moves the cursor and returns the recalled command. The second
// return value is false when there is nothing to recall (empty history, or
// Down with a detached cursor). Down past the newest entry returns ("", true)
// and detaches.
func (l *Log) Navigate(dir Direction) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return "", false
	}

	switch dir {
	case Up:
		if l.cursor == -1 {
			l.cursor = len(l.entries) - 1
		} else if l.cursor > 0 {
			l.cursor--
		}
	case Down:
		if l.cursor == -1 {
			return "", false
		}
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		} else {
			l.cursor = -1
			return "", true
		}
	}

	return l.entries[l.cursor], true
}

// Reset detaches the cursor without touching the entries.
func (l *Log) Reset() {
	l.mu.Lock()
	l.cursor = -1
	l.mu.Unlock()
}
