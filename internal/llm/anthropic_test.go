package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete(t *testing.T) {
	var gotKey, gotVersion string
	var gotReq anthropicRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"content":[{"type":"text","text":"Meeting summary:\n"},{"type":"text","text":"- all good."}]}`)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	out, err := c.Complete(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "Meeting summary:\n- all good." {
		t.Errorf("completion = %q", out)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotVersion != "2023-06-01" {
		t.Errorf("version header = %q", gotVersion)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v, want one user message", gotReq.Messages)
	}
	if gotReq.Messages[0].Content != "summarize this" {
		t.Errorf("prompt = %q", gotReq.Messages[0].Content)
	}
}

func TestCompleteEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"content":[]}`)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error for empty completion")
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key")
	c.BaseURL = srv.URL

	if _, err := c.Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error for HTTP 503")
	}
}

func TestCompleteMissingKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Complete(context.Background(), "x"); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
