package token

import "fmt"

// MaxOffset is the largest source offset a Token can carry: 24 bits, to
// match source.MaxLength.
const MaxOffset = 1<<24 - 1

// Token is a single lexical token: an 8-bit Kind and a 24-bit source
// offset, packed into one uint32 the way the original Cero lexer packs a
// `TokenKind kind : 8` and `SourceOffset offset : 24` bitfield struct.
//
// Variable-length kinds (see Kind.IsVariableLength) have their lexeme
// length recorded out-of-line, in the parallel Stream.lengths slice, not in
// Token itself.
type Token uint32

// Pack builds a Token from a kind and an offset. It panics if offset does
// not fit in 24 bits.
func Pack(kind Kind, offset int) Token {
	if offset < 0 || offset > MaxOffset {
		panic(fmt.Sprintf("token: offset %d does not fit in 24 bits", offset))
	}
	return Token(uint32(offset)<<8 | uint32(kind))
}

// Kind returns this token's kind.
func (t Token) Kind() Kind { return Kind(t & 0xFF) }

// Offset returns this token's source offset, the byte offset of its first
// byte.
func (t Token) Offset() int { return int(t >> 8) }

// String implements fmt.Stringer for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%v@%d", t.Kind(), t.Offset())
}
