// Package store persists player progress as flat string keys
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/neon-runner/parameter"
)

// ErrReadOnly is returned by Set on a store opened read-only
var ErrReadOnly = errors.New("store is read-only")

// progressFile is the on-disk layout
type progressFile struct {
	Values map[string]string `toml:"values"`
}

// FileStore is a key-value store saved to a TOML file on every Set
type FileStore struct {
	mu       sync.RWMutex
	path     string
	values   map[string]string
	readOnly bool
}

// DefaultPath returns the progress file under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, parameter.AppDirName, parameter.ProgressFileName), nil
}

// Open loads path into a FileStore
// A missing file starts empty; an unreadable or corrupt file is logged and also starts empty
func Open(path string) *FileStore {
	fs := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	var pf progressFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("store: ignoring unreadable %s: %v", path, err)
		}
		return fs
	}
	for k, v := range pf.Values {
		fs.values[k] = v
	}
	return fs
}

// OpenReadOnly loads path and rejects writes
func OpenReadOnly(path string) *FileStore {
	fs := Open(path)
	fs.readOnly = true
	return fs
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	v, ok := fs.values[key]
	return v, ok
}

// Set stores value and rewrites the file; on write failure the in-memory value is kept
func (fs *FileStore) Set(key, value string) error {
	if fs.readOnly {
		return fmt.Errorf("set %s: %w", key, ErrReadOnly)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	return fs.flushLocked()
}

// Keys returns stored keys in sorted order
func (fs *FileStore) Keys() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	keys := make([]string, 0, len(fs.values))
	for k := range fs.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flushLocked writes a temp file next to the target and renames it into place
func (fs *FileStore) flushLocked() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(progressFile{Values: fs.values}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encoding progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", fs.path, err)
	}
	return nil
}

// MemoryStore is a process-local store for headless runs and tests
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	v, ok := ms.values[key]
	return v, ok
}

func (ms *MemoryStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.values[key] = value
	return nil
}
