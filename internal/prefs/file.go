package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStoreVersion is the current schema version for the preference file.
const FileStoreVersion = 1

type fileData struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore keeps preferences in a JSON document. Every operation takes a
// cross-process lockfile and reads the file, so concurrent carbonhub processes
// see each other's writes. Mutations are written through atomically.
type FileStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileStore returns a store backed by filePath. The file is created on the
// first write.
func NewFileStore(filePath string) *FileStore {
	return &FileStore{filePath: filePath}
}

// FilePath returns the backing file.
func (s *FileStore) FilePath() string {
	return s.filePath
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.withLock(ctx, func() error {
		values, err := s.read()
		if err != nil {
			return err
		}
		value, found = values[key]
		return nil
	})
	return value, found, err
}

// Set implements Store.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.update(ctx, func(values map[string]string) bool {
		if prev, ok := values[key]; ok && prev == value {
			return false
		}
		values[key] = value
		return true
	})
}

// Remove implements Store. Removing a missing key is not an error.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.update(ctx, func(values map[string]string) bool {
		if _, ok := values[key]; !ok {
			return false
		}
		delete(values, key)
		return true
	})
}

// Keys implements Store. Keys are returned sorted.
func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.withLock(ctx, func() error {
		values, err := s.read()
		if err != nil {
			return err
		}
		keys = sortedKeys(values)
		return nil
	})
	return keys, err
}

// Clear implements Store.
func (s *FileStore) Clear(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		return s.write(map[string]string{})
	})
}

func (s *FileStore) update(ctx context.Context, mutate func(map[string]string) bool) error {
	return s.withLock(ctx, func() error {
		values, err := s.read()
		if err != nil {
			return err
		}
		if !mutate(values) {
			return nil
		}
		return s.write(values)
	})
}

func (s *FileStore) withLock(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := acquireFileLock(ctx, s.filePath+".lock")
	if err != nil {
		return fmt.Errorf("acquiring file lock: %w", err)
	}
	defer unlock()

	return fn()
}

// read loads the document. A missing file is an empty store.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading preference file: %w", err)
	}

	var doc fileData
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreCorrupted, err)
	}
	if doc.Version != FileStoreVersion {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrStoreCorrupted, doc.Version, FileStoreVersion)
	}
	if doc.Values == nil {
		doc.Values = map[string]string{}
	}
	return doc.Values, nil
}

func (s *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(fileData{Version: FileStoreVersion, Values: values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.filePath), 0o750); err != nil {
		return fmt.Errorf("creating preference directory: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err = os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing preference temp file: %w", err)
	}
	if err = os.Rename(tmpPath, s.filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming preference temp file: %w", err)
	}
	return nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
