// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	// "e" + combining acute accent normalizes to the precomposed form.
	decomposed := "Jose\u0301"
	got := Normalize(FormData{
		Name:    "  " + decomposed + "  ",
		Email:   " jose@example.com ",
		Message: "hello\n",
	})

	assert.Equal(t, "Jos\u00e9", got.Name)
	assert.Equal(t, "jose@example.com", got.Email)
	assert.Equal(t, "hello", got.Message)
}

func TestValidate(t *testing.T) {
	valid := FormData{Name: "Ada", Email: "ada@example.com", Message: "hi"}

	tests := []struct {
		name    string
		mutate  func(*FormData)
		wantMsg string
	}{
		{"valid", func(d *FormData) {}, ""},
		{"missing name", func(d *FormData) { d.Name = "" }, "Name is required"},
		{"missing email", func(d *FormData) { d.Email = "" }, "Email is required"},
		{"missing message", func(d *FormData) { d.Message = "" }, "Message is required"},
		{"bad email", func(d *FormData) { d.Email = "not-an-email" }, "Email address is not valid"},
		{"email with display name", func(d *FormData) { d.Email = "Ada <ada@example.com>" }, "Email address is not valid"},
		{"name too long", func(d *FormData) { d.Name = strings.Repeat("a", 101) }, "Name must be at most 100 characters"},
		{"message too long", func(d *FormData) { d.Message = strings.Repeat("a", 5001) }, "Message must be at most 5000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)
			assert.Equal(t, tt.wantMsg, Validate(data))
		})
	}
}

func TestWebhookSubmitter(t *testing.T) {
	var received FormData
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	submit := NewWebhookSubmitter(srv.URL, srv.Client())
	res := submit(context.Background(), FormData{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hello there",
	})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, "Ada", received.Name)
	assert.Equal(t, "Message sent successfully!", res.Message)
}

func TestWebhookSubmitterRejectsInvalid(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	submit := NewWebhookSubmitter(srv.URL, srv.Client())
	res := submit(context.Background(), FormData{Name: "Ada"})

	assert.False(t, res.Success)
	assert.Equal(t, "Email is required", res.Message)
	assert.False(t, called, "invalid submissions must not reach the webhook")
}

func TestWebhookSubmitterServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	submit := NewWebhookSubmitter(srv.URL, srv.Client())
	res := submit(context.Background(), FormData{
		Name: "Ada", Email: "ada@example.com", Message: "hi",
	})

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to send message", res.Message)
}

func TestWebhookSubmitterUnconfigured(t *testing.T) {
	submit := NewWebhookSubmitter("", nil)
	res := submit(context.Background(), FormData{
		Name: "Ada", Email: "ada@example.com", Message: "hi",
	})

	assert.False(t, res.Success)
	assert.Equal(t, "Contact channel is not configured", res.Message)
}
