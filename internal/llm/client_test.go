package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/junwei/citegrab/internal/citation"
)

func TestClient_Extract(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		gotPrompt = req.Prompt
		json.NewEncoder(w).Encode(generateResponse{
			Response: `{"title": "Extracted Title", "issue": "N/A"}`,
		})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithModel("test-model"))

	fields, err := client.Extract(context.Background(), "--page 1--\n\nsome text", citation.Journal)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if fields["title"] != "Extracted Title" {
		t.Errorf("title = %q, want Extracted Title", fields["title"])
	}
	// Sentinel values pass through the parser; filtering them is the
	// accumulator's responsibility.
	if fields["issue"] != "N/A" {
		t.Errorf("issue = %q, want N/A passed through", fields["issue"])
	}

	if !strings.Contains(gotPrompt, "container_title") {
		t.Error("journal prompt missing container_title field hint")
	}
	if !strings.Contains(gotPrompt, "--page 1--") {
		t.Error("prompt missing accumulated document text")
	}
}

func TestClient_ExtractServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	if _, err := client.Extract(context.Background(), "text", citation.Book); err == nil {
		t.Error("Extract() error = nil, want error on 500")
	}
}

func TestBuildPrompt_TypeSpecificFields(t *testing.T) {
	thesis := buildPrompt("body", citation.Thesis)
	if !strings.Contains(thesis, "genre") {
		t.Error("thesis prompt missing genre field")
	}

	chapter := buildPrompt("body", citation.BookChapter)
	if !strings.Contains(chapter, "editor") {
		t.Error("chapter prompt missing editor field")
	}
}
