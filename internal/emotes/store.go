package emotes

import (
	"sync"
)

// FallbackName is the well-known emote that is always resolvable, even when the
// remote service was never reached.
const FallbackName = "HUH"

// FallbackID is the CDN identifier backing FallbackName.
const FallbackID = "01F6MZGCNR000255K4X1K7NTHR"

// Mapping is an insertion-ordered name -> identifier table. Names are
// case-sensitive word-character strings; identifiers are opaque CDN tokens.
type Mapping struct {
	names []string
	ids   map[string]string
}

// NewMapping returns a mapping pre-seeded with the fallback entry.
func NewMapping() *Mapping {
	m := &Mapping{ids: map[string]string{}}
	m.Put(FallbackName, FallbackID)
	return m
}

// Put inserts or updates an entry. A duplicate name keeps its original position
// and takes the new identifier (last write wins on the value).
func (m *Mapping) Put(name, id string) {
	if name == "" || id == "" {
		return
	}
	if _, ok := m.ids[name]; !ok {
		m.names = append(m.names, name)
	}
	m.ids[name] = id
}

// Get returns the identifier for name, if present.
func (m *Mapping) Get(name string) (string, bool) {
	id, ok := m.ids[name]
	return id, ok
}

// Names returns the entries in insertion order. The returned slice is shared;
// callers must not mutate it.
func (m *Mapping) Names() []string {
	return m.names
}

// Len reports the number of entries.
func (m *Mapping) Len() int {
	return len(m.names)
}

// Store owns the current mapping. Refreshes replace the mapping wholesale via
// Swap; readers always see either the old table or the new one, never a mix.
type Store struct {
	mu sync.RWMutex
	m  *Mapping
}

// NewStore returns a store holding the fallback-only mapping.
func NewStore() *Store {
	return &Store{m: NewMapping()}
}

// Current returns the active mapping. The mapping itself is never mutated
// after a swap, so it is safe to keep using across a concurrent refresh.
func (s *Store) Current() *Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m
}

// Swap installs a replacement mapping. Empty or nil replacements are ignored
// so a failed refresh never evicts the previous table.
func (s *Store) Swap(m *Mapping) {
	if m == nil || m.Len() == 0 {
		return
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
}
