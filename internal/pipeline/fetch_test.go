package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestIsRemote(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.org/paper.pdf", true},
		{"http://example.org/paper.pdf", true},
		{"/home/user/paper.pdf", false},
		{"paper.pdf", false},
	}

	for _, tt := range tests {
		if got := isRemote(tt.input); got != tt.want {
			t.Errorf("isRemote(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFetchRemote(t *testing.T) {
	payload := []byte("%PDF-1.4 fake content")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	path, cleanup, err := fetchRemote(context.Background(), srv.URL+"/paper.pdf")
	if err != nil {
		t.Fatalf("fetchRemote() error = %v", err)
	}
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("downloaded content = %q, want %q", data, payload)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup did not remove the downloaded file")
	}
}

func TestFetchRemote_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, _, err := fetchRemote(context.Background(), srv.URL+"/missing.pdf"); err == nil {
		t.Fatal("fetchRemote() error = nil, want error for 404")
	}
}
