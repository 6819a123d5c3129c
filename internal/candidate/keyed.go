package candidate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 64 * 1024

// LoadStats summarises one dictionary load.
type LoadStats struct {
	Lines    int
	Comments int
	Skipped  int // wrong field count
	Unused   int // empty description
	Entries  int
	Keys     int
}

// KeyedStore maps a lookup key to its entries in source order.
type KeyedStore struct {
	entries map[string][]Entry
	all     []Entry
}

// Lookup returns the entries for key. The slice must not be modified.
func (s *KeyedStore) Lookup(key string) ([]Entry, bool) {
	if s == nil {
		return nil, false
	}
	e, ok := s.entries[key]
	return e, ok
}

// All returns every entry in file order.
func (s *KeyedStore) All() []Entry {
	if s == nil {
		return nil
	}
	return s.all
}

// Len returns the number of distinct keys.
func (s *KeyedStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// ParseLine splits a `key:value:description` line.
// ok is false for comments, lines without exactly three fields and lines with
// an empty description.
func ParseLine(line string) (key string, e Entry, ok bool) {
	key, e, kind := classify(line)
	return key, e, kind == lineEntry
}

type lineKind int

const (
	lineEntry lineKind = iota
	lineComment
	lineMalformed
	lineUnused
)

func classify(line string) (string, Entry, lineKind) {
	line = strings.TrimSuffix(line, "\r")
	if strings.HasPrefix(line, "#") {
		return "", Entry{}, lineComment
	}

	fields := strings.Split(line, ":")
	if len(fields) != 3 {
		return "", Entry{}, lineMalformed
	}
	if fields[2] == "" {
		return "", Entry{}, lineUnused
	}
	return fields[0], Entry{Value: fields[1], Description: fields[2]}, lineEntry
}

// LoadKeyed builds a KeyedStore from a line-oriented dictionary.
// Bad lines are skipped one by one; only read errors are returned.
func LoadKeyed(r io.Reader) (*KeyedStore, LoadStats, error) {
	store := &KeyedStore{entries: make(map[string][]Entry)}
	var stats LoadStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for sc.Scan() {
		stats.Lines++
		key, e, kind := classify(sc.Text())
		switch kind {
		case lineComment:
			stats.Comments++
			continue
		case lineMalformed:
			stats.Skipped++
			continue
		case lineUnused:
			stats.Unused++
			continue
		}

		store.entries[key] = append(store.entries[key], e)
		store.all = append(store.all, e)
		stats.Entries++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read dictionary: %w", err)
	}

	stats.Keys = len(store.entries)
	return store, stats, nil
}
