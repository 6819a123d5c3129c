package emoji

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsSortedAndUnique(t *testing.T) {
	entries := Store().Entries()
	require.NotEmpty(t, entries)

	keys := make([]string, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		keys[i] = e.Value
		assert.False(t, seen[e.Value], "duplicate key %q", e.Value)
		seen[e.Value] = true
		assert.NotEmpty(t, e.Description)
	}
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestStoreCoversUnicodeEmoji(t *testing.T) {
	store := Store()
	assert.Greater(t, store.Len(), 1800)

	byValue := make(map[string]string, store.Len())
	for _, e := range store.Entries() {
		byValue[e.Value] = e.Description
	}

	tests := []struct {
		value, want string
	}{
		{"\U0001f44d", "thumbs up (hand | fingers | closed)"},
		{"\U0001f600", "grinning face (face | smiling)"},
		{"\u2764", "red heart (heart)"},
		{"\U0001f1f0\U0001f1f7", "flag: South Korea (country | flag)"},
		{"#\u20e3", "keycap: # (keycap)"},
		{"\U0001f9d1\u200d\U0001f4bb", "technologist (person | role)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, byValue[tt.value], "description of %q", tt.value)
	}

	for value := range byValue {
		assert.NotContains(t, value, "\ufe0f", "variation selector kept in %q", value)
	}
}
