package cache

import (
	"log/slog"
	"sync"
	"time"
)

// TranslationStore is a translation memo backed by SQLite with an in-process
// front map. It satisfies textnorm.Memo and is safe for concurrent use.
type TranslationStore struct {
	db  *CacheDB
	ttl time.Duration

	mu    sync.RWMutex
	front map[string]string
}

// OpenTranslationStore opens (or creates) the memo database at path.
// A non-positive ttl uses DefaultTTL.
func OpenTranslationStore(path string, ttl time.Duration) (*TranslationStore, error) {
	db, err := NewCacheDB(path)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TranslationStore{db: db, ttl: ttl, front: make(map[string]string)}, nil
}

// Get returns the memoized translation for key.
func (s *TranslationStore) Get(key string) (string, bool) {
	s.mu.RLock()
	v, ok := s.front[key]
	s.mu.RUnlock()
	if ok {
		return v, true
	}

	data, found, err := s.db.Get(TranslationTable, key, s.ttl)
	if err != nil {
		slog.Warn("Failed to read translation cache", "key", key, "error", err)
		return "", false
	}
	if !found {
		return "", false
	}

	s.mu.Lock()
	s.front[key] = data
	s.mu.Unlock()
	slog.Debug("Cache hit", "table", TranslationTable, "key", key)
	return data, true
}

// Set stores a translation. Persistence failures are logged, never returned:
// a lost cache write only costs a repeated remote call.
func (s *TranslationStore) Set(key, value string) {
	s.mu.Lock()
	s.front[key] = value
	s.mu.Unlock()

	if err := s.db.Set(TranslationTable, key, value); err != nil {
		slog.Warn("Failed to cache translation", "key", key, "error", err)
	}
}

// Clear removes every persisted translation.
func (s *TranslationStore) Clear() (int64, error) {
	s.mu.Lock()
	s.front = make(map[string]string)
	s.mu.Unlock()
	return s.db.ClearAll(TranslationTable)
}

// Close releases the database.
func (s *TranslationStore) Close() error {
	return s.db.Close()
}
