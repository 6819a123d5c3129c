// Command emojigen converts a CLDR annotation file or Unicode's emoji-test.txt
// into internal/emoji/table_gen.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattjoyce/hanpick/internal/emojigen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("emojigen", flag.ContinueOnError)
	input := fs.String("annotations", "", "CLDR annotation XML or emoji-test.txt (default $KIME_WINDOW_ANNOTATION or "+emojigen.DefaultAnnotationPath+")")
	format := fs.String("format", "", "Input format: cldr or emoji-test (default: from the file extension)")
	output := fs.String("out", "table_gen.go", "Output Go file")
	pkg := fs.String("package", "emoji", "Package name of the generated file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *input
	if path == "" {
		path = os.Getenv("KIME_WINDOW_ANNOTATION")
	}
	if path == "" {
		path = emojigen.DefaultAnnotationPath
	}

	parse, err := emojigen.ParserFor(*format, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emojigen: %v\n", err)
		return 2
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emojigen: %v\n", err)
		return 1
	}
	defer f.Close()

	src, n, err := emojigen.Generate(f, parse, *pkg, filepath.Base(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "emojigen: %s: %v\n", path, err)
		return 1
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "emojigen: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "emojigen: wrote %d entries to %s\n", n, *output)
	return 0
}
