// Package download fetches referenced content files (videos, icons) into
// the local archive ahead of publishing. The ingestion passes never call
// this; the pipeline runs it over the completed tree.
package download

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client downloads remote files into an archive directory.
type Client struct {
	http *resty.Client
}

// New creates a download client with retries enabled.
func New() *Client {
	return &Client{
		http: resty.New().
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second).
			SetTimeout(2 * time.Minute),
	}
}

// Filename derives the local filename for a URL: the last path segment
// with any query string stripped.
func Filename(url string) string {
	parts := strings.Split(url, "/")
	last := parts[len(parts)-1]
	if i := strings.Index(last, "?"); i >= 0 {
		last = last[:i]
	}
	return last
}

// NormalizeURL rewrites Dropbox share links to their direct-download form.
func NormalizeURL(url string) string {
	return strings.ReplaceAll(url, "?dl=0", "?dl=1")
}

// Fetch downloads url into destDir and returns the local path. A file
// already present at the destination is reused without a network call, so
// interrupted runs resume where they left off.
func (c *Client) Fetch(ctx context.Context, url, destDir string) (string, error) {
	url = NormalizeURL(url)
	name := Filename(url)
	if name == "" {
		return "", fmt.Errorf("no filename in url %q", url)
	}

	dest := filepath.Join(destDir, name)
	if _, err := os.Stat(dest); err == nil {
		return dest, nil
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", url, res.StatusCode())
	}

	if err := os.WriteFile(dest, res.Body(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}
