package cachestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"mediashelf/internal/logging"
)

// Entry is a cached value with optional expiry. A nil ExpiresAt never expires.
type Entry struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CachedAt  time.Time       `json:"cached_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

func (e Entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && now.After(*e.ExpiresAt)
}

// Store provides thread-safe access to the cache. If path is empty the store
// is non-functional: every Get misses and Set is a no-op.
type Store struct {
	path    string
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates a cache store instance. The cache file is created lazily on
// first Set call; a corrupt or missing file starts the cache empty.
func New(path string, logger *slog.Logger) *Store {
	logger = logging.NewComponentLogger(logger, "cachestore")

	s := &Store{
		path:    path,
		logger:  logger,
		entries: make(map[string]Entry),
	}

	if path == "" {
		return s
	}

	if err := s.load(); err != nil {
		logger.Warn("failed to load cache file",
			logging.Error(err),
			logging.String(logging.FieldEventType, "cachestore_load_failed"),
			logging.String(logging.FieldErrorHint, "cache will start empty"),
			logging.String(logging.FieldImpact, "first aggregate calls will recompute"))
	}

	return s
}

// Get returns the raw cached value for key, or false on a miss. Expired
// entries are misses.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	key = strings.TrimSpace(key)
	if key == "" || s.path == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, found := s.entries[key]
	if !found || entry.expired(time.Now()) {
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value under key with the given TTL and persists to disk.
// A zero or negative TTL stores the entry without expiry.
func (s *Store) Set(key string, value any, ttl time.Duration) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("cache key cannot be empty")
	}
	if s.path == "" {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	now := time.Now()
	entry := Entry{Key: key, Value: payload, CachedAt: now}
	if ttl > 0 {
		expires := now.Add(ttl)
		entry.ExpiresAt = &expires
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry

	if err := s.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	s.logger.Debug("cached entry",
		logging.String(logging.FieldCacheKey, key),
		logging.Duration("ttl", ttl),
		logging.Int("value_bytes", len(payload)))

	return nil
}

// Remove deletes an entry by key and persists the change. Removing an absent
// key is a no-op.
func (s *Store) Remove(key string) error {
	key = strings.TrimSpace(key)
	if key == "" || s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		return nil
	}
	delete(s.entries, key)

	if err := s.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}
	return nil
}

// Clear removes all entries and persists the empty cache.
func (s *Store) Clear() error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)

	if err := s.save(); err != nil {
		return fmt.Errorf("persist cache: %w", err)
	}

	s.logger.Debug("cleared cache")
	return nil
}

// Count returns the number of live (unexpired) entries.
func (s *Store) Count() int {
	if s.path == "" {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	count := 0
	for _, entry := range s.entries {
		if !entry.expired(now) {
			count++
		}
	}
	return count
}

// Value decodes a cached entry into T. The bool reports whether the key was
// present and live; a decode failure is an error, not a miss.
func Value[T any](s *Store, key string) (T, bool, error) {
	var out T
	raw, ok := s.Get(key)
	if !ok {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode cache entry %q: %w", key, err)
	}
	return out, true, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse cache file: %w", err)
	}

	s.entries = make(map[string]Entry, len(entries))
	now := time.Now()
	for _, entry := range entries {
		if strings.TrimSpace(entry.Key) == "" || entry.expired(now) {
			continue
		}
		s.entries[entry.Key] = entry
	}

	s.logger.Debug("loaded cache",
		logging.Int("entry_count", len(s.entries)),
		logging.String("path", s.path))

	return nil
}

// save writes the cache to disk atomically, dropping expired entries.
func (s *Store) save() error {
	now := time.Now()
	entries := make([]Entry, 0, len(s.entries))
	for key, entry := range s.entries {
		if entry.expired(now) {
			delete(s.entries, key)
			continue
		}
		entries = append(entries, entry)
	}

	// Sort for deterministic output
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
