package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/token"
)

func TestPackRoundTrip(t *testing.T) {
	tok := token.Pack(token.Name, 12345)
	assert.Equal(t, token.Name, tok.Kind())
	assert.Equal(t, 12345, tok.Offset())
}

func TestPackRejectsOversizeOffset(t *testing.T) {
	assert.Panics(t, func() {
		token.Pack(token.Name, token.MaxOffset+1)
	})
}

func TestKeywordLookup(t *testing.T) {
	k, ok := token.LookupKeyword("while")
	require.True(t, ok)
	assert.Equal(t, token.While, k)

	_, ok = token.LookupKeyword("whilst")
	assert.False(t, ok)
}

func TestStreamLexeme(t *testing.T) {
	text := []byte("foo + 1")
	s := token.NewStream(text)
	s.PushVariable(token.Name, 0, 3)
	s.Push(token.Plus, 4)
	s.PushVariable(token.DecIntLiteral, 6, 1)
	s.Push(token.EndOfFile, 7)

	assert.Equal(t, "foo", string(s.Lexeme(0)))
	assert.Equal(t, "+", string(s.Lexeme(1)))
	assert.Equal(t, "1", string(s.Lexeme(2)))
}

func TestCursorSkipsComments(t *testing.T) {
	text := []byte("a//c\nb")
	s := token.NewStream(text)
	s.PushVariable(token.Name, 0, 1)
	s.PushVariable(token.LineComment, 1, 3)
	s.PushVariable(token.Name, 5, 1)
	s.Push(token.EndOfFile, 6)

	c := token.NewCursor(s)
	first := c.Advance()
	assert.Equal(t, token.Name, first.Kind())
	assert.Equal(t, 0, first.Offset())

	second := c.Advance()
	assert.Equal(t, token.Name, second.Kind())
	assert.Equal(t, 5, second.Offset(), "comment must be skipped transparently")

	eof := c.Advance()
	assert.Equal(t, token.EndOfFile, eof.Kind())
}

func TestCursorIdempotentAtEOF(t *testing.T) {
	s := token.NewStream(nil)
	s.Push(token.EndOfFile, 0)
	c := token.NewCursor(s)

	c.Advance()
	before := c.Peek()
	c.Advance()
	after := c.Peek()
	assert.Equal(t, before, after, "advancing past EOF must not move the cursor")
}

func TestCursorMarkRestore(t *testing.T) {
	s := token.NewStream([]byte("a b"))
	s.PushVariable(token.Name, 0, 1)
	s.PushVariable(token.Name, 2, 1)
	s.Push(token.EndOfFile, 3)

	c := token.NewCursor(s)
	mark := c.Mark()
	c.Advance()
	c.Advance()
	c.Restore(mark)

	tok := c.Peek()
	assert.Equal(t, 0, tok.Offset())
}

func TestCursorPeekAhead(t *testing.T) {
	s := token.NewStream([]byte("a b"))
	s.PushVariable(token.Name, 0, 1)
	s.PushVariable(token.Name, 2, 1)
	s.Push(token.EndOfFile, 3)

	c := token.NewCursor(s)
	assert.Equal(t, 0, c.Peek().Offset())
	assert.Equal(t, 2, c.PeekAhead().Offset())
}

func TestMatchAdvancesOnlyOnSuccess(t *testing.T) {
	s := token.NewStream([]byte("+"))
	s.Push(token.Plus, 0)
	s.Push(token.EndOfFile, 1)

	c := token.NewCursor(s)
	assert.False(t, c.Match(token.Minus))
	assert.True(t, c.Match(token.Plus))
	assert.Equal(t, token.EndOfFile, c.Peek().Kind())
}
