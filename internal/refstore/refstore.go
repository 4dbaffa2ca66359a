// Package refstore persists the canonical reference face image for
// each enrolled identity. The store is the single source of truth for
// "is this identity enrolled".
package refstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when no reference record exists for a
// key. It is a normal outcome, not a fault.
var ErrNotFound = errors.New("reference not found")

// ErrInvalidKey is returned when an identity key is empty or would
// escape the store directory.
var ErrInvalidKey = errors.New("invalid identity key")

// Store is the per-identity reference record store. Put overwrites any
// prior record for the key (last write wins, no versioning).
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	Put(ctx context.Context, key string, jpeg []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// FileStore keeps one <key>.jpg per identity under a fixed directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a partial record. Concurrent operations on the same key are
// serialized by a per-key mutex; distinct keys do not contend.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates the storage directory if needed and returns a
// store rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string { return s.dir }

// Exists reports whether a committed reference record exists for key.
func (s *FileStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat reference: %w", err)
	}
	return true, nil
}

// Put durably persists the canonical record for key, replacing any
// prior record. It returns the stored path.
func (s *FileStore) Put(ctx context.Context, key string, jpeg []byte) (string, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", err
	}

	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(jpeg); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write reference: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("sync reference: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close reference: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("commit reference: %w", err)
	}
	return path, nil
}

// Get retrieves the canonical record for key, or ErrNotFound.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read reference: %w", err)
	}
	return data, nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".jpg"), nil
}

func (s *FileStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
