package emojigen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattjoyce/hanpick/internal/candidate"
)

// ParseEmojiTest reads Unicode's emoji-test.txt (UTS #51 test data).
//
// Each fully-qualified emoji and each component yields two pairs, in the
// order a CLDR annotation file lists them: the words of its subgroup as
// keywords, then its name. Sequences carrying a skin tone modifier are
// skipped; the base emoji stands for them. U+FE0F is dropped from keys, as
// CLDR does.
func ParseEmojiTest(r io.Reader) ([]candidate.Pair, error) {
	sc := bufio.NewScanner(r)

	var (
		pairs    []candidate.Pair
		keywords string
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if sub, ok := strings.CutPrefix(line, "# subgroup:"); ok {
			keywords = strings.Join(strings.Split(strings.TrimSpace(sub), "-"), " | ")
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields, comment, ok := strings.Cut(line, "#")
		if !ok {
			return nil, fmt.Errorf("line %d: missing name comment", lineNo)
		}
		cps, status, ok := strings.Cut(fields, ";")
		if !ok {
			return nil, fmt.Errorf("line %d: missing status field", lineNo)
		}
		switch strings.TrimSpace(status) {
		case "fully-qualified", "component":
		default:
			continue
		}

		key, toned, err := decodeSequence(cps)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if toned {
			continue
		}

		// "<emoji> E<version> <name>"
		parts := strings.SplitN(strings.TrimSpace(comment), " ", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: malformed name %q", lineNo, comment)
		}
		pairs = append(pairs,
			candidate.Pair{Key: key, Text: keywords},
			candidate.Pair{Key: key, Text: parts[2]},
		)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read emoji test data: %w", err)
	}
	return pairs, nil
}

// decodeSequence turns "1F44D 1F3FB" into the key string. toned reports a
// multi-codepoint sequence that contains a skin tone modifier.
func decodeSequence(field string) (key string, toned bool, err error) {
	hexes := strings.Fields(field)
	if len(hexes) == 0 {
		return "", false, fmt.Errorf("no code points")
	}

	var b strings.Builder
	for _, h := range hexes {
		cp, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return "", false, fmt.Errorf("bad code point %q", h)
		}
		r := rune(cp)
		if len(hexes) > 1 && r >= 0x1F3FB && r <= 0x1F3FF {
			toned = true
		}
		if r == 0xFE0F {
			continue
		}
		b.WriteRune(r)
	}
	return b.String(), toned, nil
}
