// Package source holds the Cero compiler's model of a single source file:
// its name, its bytes, and the tab width used to interpret columns.
package source

import "github.com/tidwall/btree"

// DefaultTabWidth is the tab width assumed when a Source is constructed
// without an explicit one.
const DefaultTabWidth = 4

// MaxLength is the largest number of bytes a Source may hold. This matches
// the 24-bit source offset packed into every token: offsets must fit in
// 24 bits, so no source may be longer than 2^24-1 bytes.
const MaxLength = 1<<24 - 1

// Source is an immutable buffer of text together with the name it should be
// reported under and the tab width used to expand columns.
//
// A Source is created once by its owner and is read-only from then on; it
// must outlive every Lexer, TokenStream, or AST built from it, since those
// borrow name and identifier lexemes directly out of Text.
type Source struct {
	name     string
	text     []byte
	tabWidth int

	lines lineIndex
}

// New constructs a Source with the default tab width.
func New(name string, text []byte) *Source {
	return NewWithTabWidth(name, text, DefaultTabWidth)
}

// NewWithTabWidth constructs a Source with an explicit tab width. A
// non-positive tabWidth is replaced with DefaultTabWidth.
func NewWithTabWidth(name string, text []byte, tabWidth int) *Source {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Source{name: name, text: text, tabWidth: tabWidth}
}

// Name returns the name this source should be reported under, e.g. a file
// path.
func (s *Source) Name() string { return s.name }

// Text returns the raw bytes of this source. Callers must not mutate the
// returned slice.
func (s *Source) Text() []byte { return s.text }

// Len returns len(s.Text()).
func (s *Source) Len() int { return len(s.text) }

// TabWidth returns the number of columns a tab character advances the
// cursor by.
func (s *Source) TabWidth() int { return s.tabWidth }

// TooLarge reports whether this source exceeds MaxLength and must not be
// lexed.
func (s *Source) TooLarge() bool { return len(s.text) > MaxLength }

// Location is a 1-based (line, column) position within a Source.
type Location struct {
	File   string
	Line   int
	Column int
}

// Locate maps a byte offset into Text into a 1-based line/column pair.
//
// Offsets past the end of the text are treated as pointing at the end of
// the text. The locator is not Unicode-aware: a tab contributes TabWidth()
// columns, every other byte (including continuation bytes of a multi-byte
// UTF-8 rune) contributes exactly one column. This mirrors the original
// Cero compiler and is preserved deliberately.
func (s *Source) Locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.text) {
		offset = len(s.text)
	}

	lineNo, lineStart := s.lineStart(offset)

	column := 1
	for i := lineStart; i < offset; i++ {
		if s.text[i] == '\t' {
			column += s.tabWidth
		} else {
			column++
		}
	}

	return Location{File: s.name, Line: lineNo, Column: column}
}

// lineIndex maps the byte offset at which each line starts (0, and the
// offset right after every '\n') to that line's 1-based number. It is
// populated lazily, once, on the first call that needs it.
type lineIndex struct {
	built  bool
	starts *btree.Map[int, int] // offset of line start -> 1-based line number
}

// lineStart returns the 1-based line number containing offset, and the byte
// offset at which that line begins.
func (s *Source) lineStart(offset int) (lineNo int, lineStart int) {
	s.ensureLineIndex()

	it := s.lines.starts.Iter()
	switch {
	case !it.Seek(offset):
		// offset is past every recorded line start; the last one applies.
		it.Last()
	case it.Key() != offset:
		// Seek landed one line start past offset; step back to the line
		// that actually contains it.
		it.Prev()
	}
	return it.Value(), it.Key()
}

// ensureLineIndex builds the offset->line B-tree once, scanning the text
// exactly one time. Subsequent Locate calls reuse it, turning the "which
// line is this offset on" step into an O(log n) descent instead of an
// O(n) rescan; the per-line column walk stays linear, as spec allows.
func (s *Source) ensureLineIndex() {
	if s.lines.built {
		return
	}

	tr := &btree.Map[int, int]{}
	tr.Set(0, 1)
	line := 1
	for i, b := range s.text {
		if b == '\n' {
			line++
			tr.Set(i+1, line)
		}
	}

	s.lines.starts = tr
	s.lines.built = true
}
