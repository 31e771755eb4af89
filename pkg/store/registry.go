package store

import (
	"log"
	"sort"
	"sync"
)

// Entry is a single identifier/value pair from a registry snapshot.
type Entry struct {
	ID    string
	Value string
}

// Registry is a concurrent string-to-string mapping backed by a line
// file. Every method is atomic with respect to the others; compound
// moves across two registries are the caller's concern.
type Registry struct {
	name string
	path string

	mu      sync.RWMutex
	entries map[string]string
}

// Open loads the registry at path. A missing file means an empty
// registry; an unreadable one is logged and also starts empty, since
// the in-memory map is the source of truth from here on.
func Open(name, path string) *Registry {
	entries, err := LoadMap(path)
	if err != nil {
		log.Printf("registry %s: could not read %s, starting empty: %v", name, path, err)
	}

	return &Registry{
		name:    name,
		path:    path,
		entries: entries,
	}
}

// Name returns the registry's label, used in logs.
func (r *Registry) Name() string {
	return r.name
}

// Get returns the value for id and whether it exists.
func (r *Registry) Get(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[id]
	return value, ok
}

// Put inserts or replaces the value for id.
func (r *Registry) Put(id, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = value
}

// Remove deletes id and returns the previous value, if any.
func (r *Registry) Remove(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	return value, ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns all entries sorted by identifier.
func (r *Registry) Snapshot() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for id, value := range r.entries {
		entries = append(entries, Entry{ID: id, Value: value})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Save writes the current contents to the registry's file.
func (r *Registry) Save() error {
	r.mu.RLock()
	entries := make(map[string]string, len(r.entries))
	for id, value := range r.entries {
		entries[id] = value
	}
	r.mu.RUnlock()

	return SaveMap(r.path, entries)
}
