// Package candidate holds the immutable candidate tables served by the daemon.
//
// Two shapes exist. A KeyedStore maps a lookup key (a Hangul syllable) to the
// Hanja entries listed for it, in dictionary order. A FlatStore is the whole
// emoji universe, one merged entry per codepoint string, sorted by key.
// Both are built once at startup and shared read-only afterwards.
package candidate

// Entry is one selectable candidate.
type Entry struct {
	// Value is returned to the caller when the entry is selected.
	Value string
	// Description is shown next to the value.
	Description string
}

// Label is the text a picker shows and filters on.
func (e Entry) Label() string {
	return e.Value + ": " + e.Description
}

// Pair is one (key, text) occurrence fed into a Merger.
type Pair struct {
	Key  string
	Text string
}
