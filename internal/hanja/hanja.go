// Package hanja loads the Hangul to Hanja dictionary.
//
// The embedded data/hanja.txt is a small sample of common syllables, enough
// to try the picker out of the box. Installs point hanja.dictionary_path at
// the full kime hanja.txt (optionally pinned with hanja.dictionary_blake3).
package hanja

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/config"
)

//go:embed data/hanja.txt
var embedded []byte

// Source describes where the dictionary came from.
type Source struct {
	Name   string // "embedded" or a file path
	Digest string // hex BLAKE3 of the raw bytes
}

// Read returns the raw dictionary bytes selected by cfg.
func Read(cfg config.HanjaConfig) ([]byte, Source, error) {
	if cfg.DictionaryPath == "" {
		return embedded, Source{Name: "embedded", Digest: config.Blake3Hex(embedded)}, nil
	}

	data, err := os.ReadFile(cfg.DictionaryPath)
	if err != nil {
		return nil, Source{}, fmt.Errorf("read dictionary %s: %w", cfg.DictionaryPath, err)
	}
	return data, Source{Name: cfg.DictionaryPath, Digest: config.Blake3Hex(data)}, nil
}

// Load reads, verifies and parses the dictionary.
func Load(cfg config.HanjaConfig) (*candidate.KeyedStore, candidate.LoadStats, Source, error) {
	data, src, err := Read(cfg)
	if err != nil {
		return nil, candidate.LoadStats{}, src, err
	}
	if err := config.VerifyHash(src.Name, data, cfg.DictionaryBlake3); err != nil {
		return nil, candidate.LoadStats{}, src, err
	}

	store, stats, err := candidate.LoadKeyed(bytes.NewReader(data))
	if err != nil {
		return nil, stats, src, err
	}
	return store, stats, src, nil
}
