package hanja

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/config"
)

func TestLoadEmbedded(t *testing.T) {
	store, stats, src, err := Load(config.HanjaConfig{})
	require.NoError(t, err)

	assert.Equal(t, "embedded", src.Name)
	assert.Len(t, src.Digest, 64)
	assert.Greater(t, stats.Entries, 50)
	assert.Equal(t, 1, stats.Unused)

	entries, ok := store.Lookup("가")
	require.True(t, ok)
	assert.Equal(t, candidate.Entry{Value: "家", Description: "집 가"}, entries[0])
	for _, e := range entries {
		assert.NotEqual(t, "嘉", e.Value, "unused entry must be skipped")
	}
}

func TestLoadExternalWithDigest(t *testing.T) {
	data := []byte("가:假:false\n가:家:house\n")
	path := filepath.Join(t.TempDir(), "hanja.txt")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store, _, src, err := Load(config.HanjaConfig{
		DictionaryPath:   path,
		DictionaryBlake3: config.Blake3Hex(data),
	})
	require.NoError(t, err)
	assert.Equal(t, path, src.Name)

	entries, _ := store.Lookup("가")
	assert.Equal(t, []candidate.Entry{
		{Value: "假", Description: "false"},
		{Value: "家", Description: "house"},
	}, entries)
}

func TestLoadDigestMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanja.txt")
	require.NoError(t, os.WriteFile(path, []byte("가:假:false\n"), 0o600))

	_, _, _, err := Load(config.HanjaConfig{
		DictionaryPath:   path,
		DictionaryBlake3: config.Blake3Hex([]byte("something else")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash mismatch")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, _, err := Load(config.HanjaConfig{DictionaryPath: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
}
