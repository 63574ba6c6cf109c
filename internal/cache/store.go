package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const entryExtension = ".json"

// Cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// Options configures a FileStore.
type Options struct {
	Directory string
	Enabled   bool
	TTL       time.Duration
}

// Stats summarizes the entries on disk.
type Stats struct {
	Entries int
	Expired int
	Bytes   int64
}

// FileStore is a directory of JSON entry files. It is safe for concurrent use
// within one process.
type FileStore struct {
	directory string
	enabled   bool
	ttl       time.Duration
	now       func() time.Time

	mu sync.RWMutex
}

// NewFileStore creates the cache directory and returns a store. A disabled
// store is returned as-is and answers every call with ErrCacheDisabled.
func NewFileStore(opts Options) (*FileStore, error) {
	if !opts.Enabled {
		return &FileStore{now: time.Now}, nil
	}

	if opts.Directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTLSeconds * time.Second
	}

	if err := os.MkdirAll(opts.Directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{
		directory: opts.Directory,
		enabled:   true,
		ttl:       opts.TTL,
		now:       time.Now,
	}, nil
}

// Get returns the live entry for key, ErrCacheNotFound, or ErrCacheExpired.
// Expired entries are removed.
func (s *FileStore) Get(key string) (*Entry, error) {
	if !s.enabled {
		return nil, ErrCacheDisabled
	}
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	entry, err := readEntry(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCacheNotFound
		}
		return nil, err
	}

	if entry.ExpiredAt(s.now()) {
		_ = os.Remove(path)
		return nil, ErrCacheExpired
	}
	return entry, nil
}

// Set stores data under key with the store's TTL, replacing any previous entry.
func (s *FileStore) Set(key, source string, data json.RawMessage) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.MarshalIndent(newEntry(key, source, data, s.ttl, s.now()), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	if !s.enabled {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every entry and returns how many were removed.
func (s *FileStore) Clear() (int, error) {
	if !s.enabled {
		return 0, ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	err := s.eachEntryFile(func(path string, _ os.DirEntry) error {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove cache file %s: %w", filepath.Base(path), err)
		}
		removed++
		return nil
	})
	return removed, err
}

// CleanupExpired removes expired and unreadable entries and returns how many
// were removed.
func (s *FileStore) CleanupExpired() (int, error) {
	if !s.enabled {
		return 0, ErrCacheDisabled
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	err := s.eachEntryFile(func(path string, _ os.DirEntry) error {
		entry, readErr := readEntry(path)
		if readErr == nil && !entry.ExpiredAt(now) {
			return nil
		}
		if rmErr := os.Remove(path); rmErr == nil {
			removed++
		}
		return nil
	})
	return removed, err
}

// Stats counts entries and their total size.
func (s *FileStore) Stats() (Stats, error) {
	if !s.enabled {
		return Stats{}, ErrCacheDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	var st Stats
	err := s.eachEntryFile(func(path string, de os.DirEntry) error {
		st.Entries++
		if info, infoErr := de.Info(); infoErr == nil {
			st.Bytes += info.Size()
		}
		if entry, readErr := readEntry(path); readErr != nil || entry.ExpiredAt(now) {
			st.Expired++
		}
		return nil
	})
	return st, err
}

// Size returns the total size of all entry files in bytes.
func (s *FileStore) Size() (int64, error) {
	st, err := s.Stats()
	return st.Bytes, err
}

// Count returns the number of entry files, expired ones included.
func (s *FileStore) Count() (int, error) {
	st, err := s.Stats()
	return st.Entries, err
}

// IsEnabled reports whether the store caches anything.
func (s *FileStore) IsEnabled() bool {
	return s.enabled
}

// Directory returns the cache directory.
func (s *FileStore) Directory() string {
	return s.directory
}

// TTL returns the lifetime given to new entries.
func (s *FileStore) TTL() time.Duration {
	return s.ttl
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.directory, filepath.Base(key)+entryExtension)
}

func (s *FileStore) eachEntryFile(fn func(path string, de os.DirEntry) error) error {
	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}
	for _, de := range entries {
		if de.IsDir() || filepath.Ext(de.Name()) != entryExtension {
			continue
		}
		if err = fn(filepath.Join(s.directory, de.Name()), de); err != nil {
			return err
		}
	}
	return nil
}

func readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, os.ErrNotExist
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	var entry Entry
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	return &entry, nil
}
