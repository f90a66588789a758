package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const sessionFile = "session.json"

// FileStore keeps a single session as a JSON file readable only by its
// owner.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based session store.
// If baseDir is empty, defaults to ~/.config/aoc/sessions/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// DefaultDir returns ~/.config/aoc/sessions.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "aoc", "sessions"), nil
}

// Path returns the session file path.
func (s *FileStore) Path() string {
	return filepath.Join(s.baseDir, sessionFile)
}

func (s *FileStore) Get(ctx context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if sess.IsExpired() {
		os.Remove(s.Path())
		return nil, nil
	}
	return &sess, nil
}

func (s *FileStore) Set(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)

// Token resolves the session cookie: the AOC_SESSION environment variable
// wins over the stored session. An empty result means none is configured.
func Token(ctx context.Context, store Store) (string, error) {
	if env := os.Getenv("AOC_SESSION"); env != "" {
		return env, nil
	}
	if store == nil {
		return "", nil
	}
	sess, err := store.Get(ctx)
	if err != nil || sess == nil {
		return "", err
	}
	return sess.Token, nil
}
