// Command cero is a thin driver over the library: it discovers source
// files, feeds each one through Source -> Lexer -> Parser, and prints any
// diagnostics to stderr. It exists so the library's public surface has a
// real caller outside its own tests, not as a production build tool.
package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cero-lang/cero/parser"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/source"
)

func main() {
	patterns := os.Args[1:]
	if len(patterns) == 0 {
		patterns = []string{"**/*.cero"}
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cero: bad pattern %q: %v\n", pattern, err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}

	failed := false
	for _, path := range files {
		if !run(path) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run lexes and parses a single file, printing its diagnostics to stderr,
// and reports whether it parsed without errors.
func run(path string) bool {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cero: %v\n", err)
		return false
	}

	src := source.New(path, text)
	if src.TooLarge() {
		fmt.Fprintf(os.Stderr, "%s: source input is too large, limit is %d bytes\n", path, source.MaxLength)
		return false
	}

	rep := report.NewHandler()
	parser.Parse(src, rep)
	for _, d := range rep.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", d.Location.File, d.Location.Line, d.Location.Column, d.Severity, d.Text)
	}
	return !rep.HasErrors()
}
