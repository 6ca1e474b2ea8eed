package textnorm

import (
	"strings"
	"sync"
)

// Memo stores translations keyed by normalized source text. Implementations
// must be safe for concurrent use.
type Memo interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoKey returns the memo key for a source text.
func MemoKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MemoryMemo is an in-process Memo guarded by a mutex.
type MemoryMemo struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryMemo creates an empty MemoryMemo.
func NewMemoryMemo() *MemoryMemo {
	return &MemoryMemo{entries: make(map[string]string)}
}

// Get returns the memoized translation for key.
func (m *MemoryMemo) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores a translation.
func (m *MemoryMemo) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Len returns the number of memoized entries.
func (m *MemoryMemo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
