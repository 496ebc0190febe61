package token

import "fmt"

// Stream is the lexer's output: a dense, append-only sequence of Tokens in
// source order, with a parallel slice of lengths for the variable-length
// ones. It borrows nothing; once built, it is read-only.
type Stream struct {
	tokens  []Token
	lengths []uint32 // 0 for fixed-length kinds; meaningful length otherwise
	text    []byte   // the source text tokens' lexemes are sliced from
}

// NewStream returns an empty Stream over the given source text. Tokens are
// appended to it with Push/PushVariable as the lexer runs.
func NewStream(text []byte) *Stream {
	return &Stream{text: text}
}

// Push appends a fixed-length token.
func (s *Stream) Push(kind Kind, offset int) {
	if kind.IsVariableLength() {
		panic(fmt.Sprintf("token: %v is variable-length; use PushVariable", kind))
	}
	s.tokens = append(s.tokens, Pack(kind, offset))
	s.lengths = append(s.lengths, 0)
}

// PushVariable appends a variable-length token with an explicit lexeme
// length.
func (s *Stream) PushVariable(kind Kind, offset, length int) {
	if !kind.IsVariableLength() {
		panic(fmt.Sprintf("token: %v is not variable-length; use Push", kind))
	}
	if length < 0 || length > MaxOffset {
		panic(fmt.Sprintf("token: length %d does not fit alongside a 24-bit offset", length))
	}
	s.tokens = append(s.tokens, Pack(kind, offset))
	s.lengths = append(s.lengths, uint32(length))
}

// Len returns the number of tokens in the stream, including the trailing
// EndOfFile.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the i'th token.
func (s *Stream) At(i int) Token { return s.tokens[i] }

// Length returns the lexeme length of the i'th token. It is 0 for
// fixed-length kinds.
func (s *Stream) Length(i int) int { return int(s.lengths[i]) }

// Lexeme returns the source text covered by the i'th token.
func (s *Stream) Lexeme(i int) []byte {
	tok := s.tokens[i]
	kind := tok.Kind()
	start := tok.Offset()
	if kind.IsVariableLength() {
		return s.text[start : start+int(s.lengths[i])]
	}
	return []byte(kind.FixedLexeme())
}

// Text returns the full source text this stream was lexed from.
func (s *Stream) Text() []byte { return s.text }
