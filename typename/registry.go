package typename

import (
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// Entry holds the three name forms computed for one type. Entries are
// immutable once stored.
type Entry struct {
	Raw  FixedString
	Name FixedString
	Base FixedString
}

// Registry memoizes per-type entries. Names never change during a process
// lifetime, so every entry is computed once and shared; steady-state
// lookups take the read lock only.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]Entry

	// Lookup counters for diagnostics.
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Global registry instance, shared by Raw, Name and Base.
var globalRegistry = &Registry{
	entries: make(map[reflect.Type]Entry),
}

// lookup returns the memoized entry for t.
func (r *Registry) lookup(t reflect.Type) (Entry, bool) {
	r.mu.RLock()
	e, ok := r.entries[t]
	r.mu.RUnlock()
	if ok {
		r.hits.Add(1)
	} else {
		r.misses.Add(1)
	}
	return e, ok
}

// store memoizes e for t and returns the stored entry. When two goroutines
// race on the same cold type the first write wins; both computed the same
// value from the same signature anyway.
func (r *Registry) store(t reflect.Type, e Entry) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.entries[t]; ok {
		return prev
	}
	r.entries[t] = e
	return e
}

// Registered is one registry row: a runtime type and its memoized entry.
type Registered struct {
	Type  reflect.Type
	Entry Entry
}

// Entries returns a snapshot of the registry sorted by raw name. The rows
// are copies; the registry cannot be mutated through the result.
func Entries() []Registered {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rows := make([]Registered, 0, len(globalRegistry.entries))
	for t, e := range globalRegistry.entries {
		rows = append(rows, Registered{Type: t, Entry: e})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Entry.Raw.String() < rows[j].Entry.Raw.String()
	})
	return rows
}

// Count returns the number of memoized types.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.entries)
}

// Stats returns how many lookups hit and missed the memo table since the
// process started or the registry was last reset.
func Stats() (hits, misses uint64) {
	return globalRegistry.hits.Load(), globalRegistry.misses.Load()
}

// Reset clears the registry and its counters (used for testing).
func Reset() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.entries = make(map[reflect.Type]Entry)
	globalRegistry.hits.Store(0)
	globalRegistry.misses.Store(0)
}
