// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

// Package contact validates and delivers contact-form submissions.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// =============================================================================
// FORM DATA
// =============================================================================

const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5000
)

// FormData is one contact-form submission.
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Result reports the outcome of a submission attempt.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitFunc delivers a validated submission. Implementations must not
// panic; the interpreter treats the Result as the full outcome.
type SubmitFunc func(ctx context.Context, data FormData) Result

// =============================================================================
// VALIDATION
// =============================================================================

// Normalize trims the fields and applies NFC so visually identical input
// compares and stores consistently.
func Normalize(data FormData) FormData {
	return FormData{
		Name:    norm.NFC.String(strings.TrimSpace(data.Name)),
		Email:   norm.NFC.String(strings.TrimSpace(data.Email)),
		Message: norm.NFC.String(strings.TrimSpace(data.Message)),
	}
}

// Validate checks a normalized submission. It returns a user-facing message
// for the first problem found, or "" when the data is acceptable.
func Validate(data FormData) string {
	switch {
	case data.Name == "":
		return "Name is required"
	case len(data.Name) > maxNameLen:
		return fmt.Sprintf("Name must be at most %d characters", maxNameLen)
	case data.Email == "":
		return "Email is required"
	case len(data.Email) > maxEmailLen:
		return fmt.Sprintf("Email must be at most %d characters", maxEmailLen)
	case !validEmail(data.Email):
		return "Email address is not valid"
	case data.Message == "":
		return "Message is required"
	case len(data.Message) > maxMessageLen:
		return fmt.Sprintf("Message must be at most %d characters", maxMessageLen)
	}
	return ""
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// =============================================================================
// WEBHOOK SUBMITTER
// =============================================================================

// NewWebhookSubmitter returns a SubmitFunc that POSTs submissions as JSON to
// the given webhook URL. An empty URL yields a submitter that reports the
// channel as unconfigured.
func NewWebhookSubmitter(url string, client *http.Client) SubmitFunc {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return func(ctx context.Context, data FormData) Result {
		data = Normalize(data)
		if msg := Validate(data); msg != "" {
			return Result{Success: false, Message: msg}
		}

		if url == "" {
			return Result{Success: false, Message: "Contact channel is not configured"}
		}

		body, err := json.Marshal(data)
		if err != nil {
			return Result{Success: false, Message: "Failed to encode message"}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return Result{Success: false, Message: "Failed to build request"}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return Result{Success: false, Message: "Network error. Please try again later."}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return Result{Success: false, Message: "Failed to send message"}
		}

		return Result{Success: true, Message: "Message sent successfully!"}
	}
}
