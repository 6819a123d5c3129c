package candidate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyedKeepsFileOrder(t *testing.T) {
	dict := strings.Join([]string{
		"# comment line",
		"가:假:false",
		"나:那:that",
		"가:家:house",
		"가:價:price",
	}, "\n")

	store, stats, err := LoadKeyed(strings.NewReader(dict))
	require.NoError(t, err)

	entries, ok := store.Lookup("가")
	require.True(t, ok)
	assert.Equal(t, []Entry{
		{Value: "假", Description: "false"},
		{Value: "家", Description: "house"},
		{Value: "價", Description: "price"},
	}, entries)

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 4, stats.Entries)
	assert.Equal(t, 2, stats.Keys)
	assert.Equal(t, 1, stats.Comments)
	assert.Len(t, store.All(), 4)
	assert.Equal(t, "那", store.All()[1].Value)
}

func TestLoadKeyedSkipsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"comment", "#가:假:false"},
		{"empty description", "가:假:"},
		{"two fields", "가:假"},
		{"four fields", "가:假:false:extra"},
		{"no colon", "가假false"},
		{"blank", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, stats, err := LoadKeyed(strings.NewReader(tt.line + "\n"))
			require.NoError(t, err)
			assert.Equal(t, 0, store.Len())
			assert.Equal(t, 0, stats.Entries)
			assert.Empty(t, store.All())
		})
	}
}

func TestLoadKeyedBadLineDoesNotAbort(t *testing.T) {
	dict := "가:假:false\nbroken\n가:家:\n가:家:house\n"

	store, stats, err := LoadKeyed(strings.NewReader(dict))
	require.NoError(t, err)

	entries, _ := store.Lookup("가")
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Unused)
}

func TestLoadKeyedStripsCR(t *testing.T) {
	store, _, err := LoadKeyed(strings.NewReader("가:假:false\r\n"))
	require.NoError(t, err)

	entries, ok := store.Lookup("가")
	require.True(t, ok)
	assert.Equal(t, "false", entries[0].Description)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestLoadKeyedReadError(t *testing.T) {
	_, _, err := LoadKeyed(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestLookupMiss(t *testing.T) {
	store, _, err := LoadKeyed(strings.NewReader("가:假:false\n"))
	require.NoError(t, err)

	_, ok := store.Lookup("zzz")
	assert.False(t, ok)

	var nilStore *KeyedStore
	_, ok = nilStore.Lookup("가")
	assert.False(t, ok)
}

func TestParseLine(t *testing.T) {
	key, e, ok := ParseLine("가:假:거짓 가")
	require.True(t, ok)
	assert.Equal(t, "가", key)
	assert.Equal(t, Entry{Value: "假", Description: "거짓 가"}, e)

	_, _, ok = ParseLine("# 가:假:거짓 가")
	assert.False(t, ok)
}

func TestMergerWrapsLaterText(t *testing.T) {
	m := NewMerger()
	m.Add("A", "d1")
	m.Add("A", "d2")
	assert.Equal(t, []Entry{{Value: "A", Description: "d2 (d1)"}}, m.Entries())

	m.Add("A", "d3")
	assert.Equal(t, []Entry{{Value: "A", Description: "d3 (d2 (d1))"}}, m.Entries())
}

func TestMergerEmptyAccumulator(t *testing.T) {
	m := NewMerger()
	m.Add("A", "")
	m.Add("A", "d2")
	assert.Equal(t, "d2", m.Entries()[0].Description)
}

func TestNewFlatSortsAndDedupes(t *testing.T) {
	store := NewFlat([]Pair{
		{Key: "😀", Text: "face | grin"},
		{Key: "👍", Text: "hand | thumb | up"},
		{Key: "😀", Text: "grinning face"},
		{Key: "👍", Text: "thumbs up"},
	})

	require.Equal(t, 2, store.Len())
	assert.Equal(t, []Entry{
		{Value: "👍", Description: "thumbs up (hand | thumb | up)"},
		{Value: "😀", Description: "grinning face (face | grin)"},
	}, store.Entries())
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, "家: house", Entry{Value: "家", Description: "house"}.Label())
}
