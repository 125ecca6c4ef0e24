package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// RecordStore keeps session summaries as JSON files so past games can be
// listed with `ventriglisse play --history`.
type RecordStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewRecordStore creates a record store.
// If baseDir is empty, defaults to ~/.config/ventriglisse/sessions/
func NewRecordStore(baseDir string) (*RecordStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "ventriglisse", "sessions")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &RecordStore{baseDir: baseDir}, nil
}

func (s *RecordStore) recordPath(sessionID string) string {
	return filepath.Join(s.baseDir, sessionID+".json")
}

// Get returns the summary of a session, or nil if none was recorded.
func (s *RecordStore) Get(ctx context.Context, sessionID string) (*Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session record: %w", err)
	}

	var sum Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		return nil, fmt.Errorf("parse session record: %w", err)
	}
	return &sum, nil
}

// Save writes sum, replacing any earlier record of the same session.
func (s *RecordStore) Save(ctx context.Context, sum *Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(sum.SessionID), data, 0600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	return nil
}

// List returns every readable record, most recent first. Unreadable files
// are skipped.
func (s *RecordStore) List(ctx context.Context) ([]*Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}

	var out []*Summary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var sum Summary
		if err := json.Unmarshal(data, &sum); err != nil {
			continue
		}
		out = append(out, &sum)
	}
	slices.SortFunc(out, func(a, b *Summary) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(a.SessionID, b.SessionID)
	})
	return out, nil
}

// Delete removes a record. Missing records are not an error.
func (s *RecordStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

// Path returns the base directory for record files.
func (s *RecordStore) Path() string {
	return s.baseDir
}
