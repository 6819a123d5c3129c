// Package emoji exposes the build-time generated emoji table.
//
// The table is generated from a pinned copy of Unicode's emoji-test.txt
// (Emoji 15.1) under data/: every fully-qualified emoji without skin tone
// variants, named by its CLDR short name with its subgroup as keywords. To
// build from a CLDR release instead, run emojigen with
// -annotations .../common/annotations/en.xml (or set KIME_WINDOW_ANNOTATION).
package emoji

import "github.com/mattjoyce/hanpick/internal/candidate"

//go:generate go run ../../cmd/emojigen -annotations data/emoji-test.txt -format emoji-test -out table_gen.go

// Store returns the emoji table as a flat candidate store.
func Store() *candidate.FlatStore {
	return candidate.FromMerged(table)
}
