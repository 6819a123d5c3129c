// Package emojigen turns emoji name data into the emoji table source.
//
// Two inputs are understood: a CLDR annotation file and Unicode's
// emoji-test.txt. Either way the pairs are fed into a candidate.Merger in
// document order, so a codepoint annotated twice ends up as
// "second (first)". The table is emitted sorted by codepoint string.
package emojigen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"github.com/mattjoyce/hanpick/internal/candidate"
)

// DefaultAnnotationPath is where distributions install the English CLDR annotations.
const DefaultAnnotationPath = "/usr/share/unicode/cldr/common/annotations/en.xml"

type annotation struct {
	CP   string `xml:"cp,attr"`
	Text string `xml:",chardata"`
}

// Parser reads name data into ordered pairs.
type Parser func(io.Reader) ([]candidate.Pair, error)

// Input formats accepted by ParserFor.
const (
	FormatCLDR      = "cldr"
	FormatEmojiTest = "emoji-test"
)

// ParserFor returns the parser for format. An empty format is guessed from
// path: ".txt" files are emoji-test data, anything else CLDR XML.
func ParserFor(format, path string) (Parser, error) {
	if format == "" {
		format = FormatCLDR
		if strings.HasSuffix(path, ".txt") {
			format = FormatEmojiTest
		}
	}
	switch format {
	case FormatCLDR:
		return Parse, nil
	case FormatEmojiTest:
		return ParseEmojiTest, nil
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// Parse reads CLDR annotation elements from r in order.
func Parse(r io.Reader) ([]candidate.Pair, error) {
	dec := xml.NewDecoder(r)

	var pairs []candidate.Pair
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return pairs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read annotations: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "annotation" {
			continue
		}

		var a annotation
		if err := dec.DecodeElement(&a, &start); err != nil {
			return nil, fmt.Errorf("decode annotation: %w", err)
		}
		if a.CP == "" {
			line, _ := dec.InputPos()
			return nil, fmt.Errorf("annotation without cp attribute near line %d", line)
		}
		pairs = append(pairs, candidate.Pair{Key: a.CP, Text: a.Text})
	}
}

// Merge applies the table merge rule to pairs.
func Merge(pairs []candidate.Pair) []candidate.Entry {
	m := candidate.NewMerger()
	for _, p := range pairs {
		m.Add(p.Key, p.Text)
	}
	return m.Entries()
}

// Render emits gofmt-ed Go source declaring the table in package pkg.
func Render(pkg, source string, entries []candidate.Entry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by emojigen from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("import \"github.com/mattjoyce/hanpick/internal/candidate\"\n\n")
	buf.WriteString("var table = []candidate.Entry{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{Value: %s, Description: %s},\n",
			strconv.QuoteToASCII(e.Value), strconv.Quote(e.Description))
	}
	buf.WriteString("}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

// Generate runs the whole transform.
func Generate(r io.Reader, parse Parser, pkg, source string) ([]byte, int, error) {
	pairs, err := parse(r)
	if err != nil {
		return nil, 0, err
	}
	entries := Merge(pairs)
	out, err := Render(pkg, source, entries)
	if err != nil {
		return nil, 0, err
	}
	return out, len(entries), nil
}
