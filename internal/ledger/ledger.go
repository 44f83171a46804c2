// Package ledger accumulates references to image files that could not be
// found on disk during ingestion. Entries are collected in memory and
// flushed once at the end of the run as a JSON snapshot keyed by grade and
// chapter.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Ledger records missing image files per grade and chapter. Entries are
// appended in order and never deduplicated.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]map[string][]string
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[string]map[string][]string)}
}

// Load reads a previously flushed ledger from path. A missing or corrupt
// file yields a fresh empty ledger, never an error.
func Load(path string) *Ledger {
	l := New()
	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	if err := json.Unmarshal(data, &l.entries); err != nil || l.entries == nil {
		l.entries = make(map[string]map[string][]string)
	}
	return l
}

// Record appends a missing image filename under grade and chapter.
func (l *Ledger) Record(grade, chapter, filename string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.entries[grade] == nil {
		l.entries[grade] = make(map[string][]string)
	}
	l.entries[grade][chapter] = append(l.entries[grade][chapter], filename)
}

// Missing returns the recorded filenames for a grade and chapter in
// insertion order.
func (l *Ledger) Missing(grade, chapter string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries[grade][chapter]...)
}

// Len returns the total number of recorded entries.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, chapters := range l.entries {
		for _, files := range chapters {
			n += len(files)
		}
	}
	return n
}

// Flush writes the ledger to path as indented JSON, creating parent
// directories as needed. An empty ledger still writes an empty object so
// stale snapshots from earlier runs do not survive.
func (l *Ledger) Flush(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}
	data, err := json.MarshalIndent(l.entries, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}
