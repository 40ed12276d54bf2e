// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ---------- Helpers ----------

// newTestServer creates an httptest.Server that responds with the given
// status code and body bytes.
func newTestServer(t *testing.T, statusCode int, body []byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(body)
	}))
}

func openAISuccessBody(text string) []byte {
	resp := openAIResponse{
		Choices: []openAIChoice{
			{Message: openAIMessage{Role: "assistant", Content: text}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

func geminiSuccessBody(text string) []byte {
	resp := geminiResponse{
		Candidates: []geminiCandidate{
			{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

// ---------- Registry ----------

func TestRegistryEmpty(t *testing.T) {
	reg := NewRegistry()

	if reg.Enabled() {
		t.Error("Enabled: empty registry should report false")
	}
	if _, err := reg.Active(); !errors.Is(err, ErrNoProvider) {
		t.Errorf("Active: got %v, want ErrNoProvider", err)
	}
	if err := reg.SetActive("openai"); !errors.Is(err, ErrNoProvider) {
		t.Errorf("SetActive: got %v, want ErrNoProvider", err)
	}
}

func TestRegistryFirstRegisteredIsActive(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newOpenAI(ProviderConfig{APIKey: "k"}))
	reg.Register(newGemini(ProviderConfig{APIKey: "k"}))

	p, err := reg.Active()
	if err != nil {
		t.Fatalf("Active: unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Active: got %q, want %q", p.Name(), "openai")
	}

	if err := reg.SetActive("gemini"); err != nil {
		t.Fatalf("SetActive: unexpected error: %v", err)
	}
	p, _ = reg.Active()
	if p.Name() != "gemini" {
		t.Errorf("Active after SetActive: got %q, want %q", p.Name(), "gemini")
	}

	if got := len(reg.Available()); got != 2 {
		t.Errorf("Available: got %d providers, want 2", got)
	}
}

func TestNewRegistryFromConfig(t *testing.T) {
	cases := []struct {
		name     string
		provider string
		apiKey   string
		enabled  bool
	}{
		{"openai configured", "openai", "sk-test", true},
		{"gemini configured", "gemini", "g-test", true},
		{"unknown provider", "claude", "k", false},
		{"missing key", "openai", "", false},
		{"nothing configured", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistryFromConfig(tc.provider, ProviderConfig{APIKey: tc.apiKey})
			if reg.Enabled() != tc.enabled {
				t.Errorf("Enabled: got %v, want %v", reg.Enabled(), tc.enabled)
			}
		})
	}
}

// ---------- OpenAI provider ----------

func TestOpenAIGenerateSuccess(t *testing.T) {
	want := "Un sitio web que convierte visitas en clientes"
	srv := newTestServer(t, http.StatusOK, openAISuccessBody(want))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "test-key", Model: "gpt-4o", BaseURL: srv.URL})

	got, err := p.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestOpenAIGenerateSendsAuthAndModel(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(openAISuccessBody("ok"))
	}))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "sk-test-12345", Model: "gpt-4o", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "system prompt", "user prompt"); err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if got := capturedHeaders.Get("Authorization"); got != "Bearer sk-test-12345" {
		t.Errorf("Authorization header: got %q", got)
	}

	var req openAIRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if req.Model != "gpt-4o" {
		t.Errorf("request model: got %q, want %q", req.Model, "gpt-4o")
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("request messages: got %+v", req.Messages)
	}
}

func TestOpenAIGenerateAPIError(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, []byte(`{"error":{"message":"bad key"}}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "bad", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("Generate: expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("Generate: error should mention status code, got %v", err)
	}
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"choices":[]}`))
	defer srv.Close()

	p := newOpenAI(ProviderConfig{APIKey: "k", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("Generate: expected error for empty choices")
	}
}

// ---------- Gemini provider ----------

func TestGeminiGenerateSuccess(t *testing.T) {
	want := "Transformamos tu idea en una web moderna"
	srv := newTestServer(t, http.StatusOK, geminiSuccessBody(want))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g-key", Model: "gemini-2.0-flash", BaseURL: srv.URL})

	got, err := p.Generate(context.Background(), "system", "user")
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("Generate: got %q, want %q", got, want)
	}
}

func TestGeminiGenerateSendsKeyHeaderAndSystemInstruction(t *testing.T) {
	var capturedHeaders http.Header
	var capturedBody []byte
	var capturedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		capturedBody, _ = io.ReadAll(r.Body)
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write(geminiSuccessBody("ok"))
	}))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g-test", Model: "gemini-2.0-flash", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "eres un redactor", "escribe un titular"); err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}

	if got := capturedHeaders.Get("x-goog-api-key"); got != "g-test" {
		t.Errorf("x-goog-api-key header: got %q", got)
	}
	if want := "/v1beta/models/gemini-2.0-flash:generateContent"; capturedPath != want {
		t.Errorf("request path: got %q, want %q", capturedPath, want)
	}

	var req geminiRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) == 0 ||
		req.SystemInstruction.Parts[0].Text != "eres un redactor" {
		t.Errorf("system_instruction: got %+v", req.SystemInstruction)
	}
}

func TestGeminiGenerateAPIError(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, []byte(`{"error":{"message":"quota"}}`))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g", BaseURL: srv.URL})

	_, err := p.Generate(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("Generate: expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Errorf("Generate: error should mention status code, got %v", err)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, []byte(`{"candidates":[]}`))
	defer srv.Close()

	p := newGemini(ProviderConfig{APIKey: "g", BaseURL: srv.URL})

	if _, err := p.Generate(context.Background(), "s", "u"); err == nil {
		t.Fatal("Generate: expected error for empty candidates")
	}
}

// ---------- Suggest ----------

func TestSuggestTrimsAndForwardsField(t *testing.T) {
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write(openAISuccessBody("  Un titular con gancho \n"))
	}))
	defer srv.Close()

	reg := NewRegistry()
	reg.Register(newOpenAI(ProviderConfig{APIKey: "k", Model: "gpt-4o", BaseURL: srv.URL}))

	got, err := Suggest(context.Background(), reg, "hero.title", "Titular viejo", "Acme Corp")
	if err != nil {
		t.Fatalf("Suggest: unexpected error: %v", err)
	}
	if got != "Un titular con gancho" {
		t.Errorf("Suggest: got %q, want trimmed suggestion", got)
	}

	var req openAIRequest
	if err := json.Unmarshal(capturedBody, &req); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	userPrompt := req.Messages[1].Content
	for _, want := range []string{"hero.title", "Titular viejo", "Acme Corp"} {
		if !strings.Contains(userPrompt, want) {
			t.Errorf("user prompt missing %q:\n%s", want, userPrompt)
		}
	}
}

func TestSuggestNoProvider(t *testing.T) {
	reg := NewRegistry()
	if _, err := Suggest(context.Background(), reg, "hero.title", "", ""); !errors.Is(err, ErrNoProvider) {
		t.Errorf("Suggest: got %v, want ErrNoProvider", err)
	}
}
