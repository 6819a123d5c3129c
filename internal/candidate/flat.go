package candidate

import "sort"

// Merger folds repeated keys into one description.
//
// The first text seen for a key is kept as is. Every later text t wraps the
// accumulated one: t + " (" + acc + ")", or just t while acc is empty.
type Merger struct {
	acc map[string]string
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{acc: make(map[string]string)}
}

// Add records one occurrence of key.
func (m *Merger) Add(key, text string) {
	prev, seen := m.acc[key]
	if !seen || prev == "" {
		m.acc[key] = text
		return
	}
	m.acc[key] = text + " (" + prev + ")"
}

// Len returns the number of distinct keys.
func (m *Merger) Len() int {
	return len(m.acc)
}

// Entries returns one entry per key, ordered by key.
func (m *Merger) Entries() []Entry {
	keys := make([]string, 0, len(m.acc))
	for k := range m.acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Value: k, Description: m.acc[k]})
	}
	return out
}

// FlatStore is the whole candidate universe with unique, sorted keys.
type FlatStore struct {
	entries []Entry
}

// NewFlat merges pairs in order and returns the resulting store.
func NewFlat(pairs []Pair) *FlatStore {
	m := NewMerger()
	for _, p := range pairs {
		m.Add(p.Key, p.Text)
	}
	return &FlatStore{entries: m.Entries()}
}

// FromMerged wraps a table that has already gone through a Merger, such as
// generated source. The caller keeps the key order guarantee.
func FromMerged(entries []Entry) *FlatStore {
	return &FlatStore{entries: entries}
}

// Entries returns the table. The slice must not be modified.
func (s *FlatStore) Entries() []Entry {
	if s == nil {
		return nil
	}
	return s.entries
}

// Len returns the number of entries.
func (s *FlatStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}
