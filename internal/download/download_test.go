package download_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/p-n-ai/content-chef/internal/download"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"http://x/videos/a.mp4", "a.mp4"},
		{"http://x/videos/a.mp4?dl=1", "a.mp4"},
		{"http://x/a.mp4?token=abc&dl=1", "a.mp4"},
	}
	for _, tt := range tests {
		if got := download.Filename(tt.url); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	got := download.NormalizeURL("https://dropbox.com/s/abc/a.mp4?dl=0")
	want := "https://dropbox.com/s/abc/a.mp4?dl=1"
	if got != want {
		t.Errorf("NormalizeURL = %q, want %q", got, want)
	}
}

func TestFetch_WritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("video-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, err := download.New().Fetch(context.Background(), srv.URL+"/a.mp4", dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "video-bytes" {
		t.Errorf("file contents = %q, want video-bytes", data)
	}
}

func TestFetch_SkipsExistingFile(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.mp4"), []byte("cached"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	path, err := download.New().Fetch(context.Background(), srv.URL+"/a.mp4", dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if calls != 0 {
		t.Errorf("server calls = %d, want 0 for cached file", calls)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "cached" {
		t.Errorf("file contents = %q, want cached copy untouched", data)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := download.New().Fetch(context.Background(), srv.URL+"/a.mp4", t.TempDir()); err == nil {
		t.Error("Fetch() error = nil, want error for 404")
	}
}
