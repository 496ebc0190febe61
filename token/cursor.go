package token

// Cursor is a forward-only, comment-skipping view over a Stream, with
// exactly one token of lookahead. It is a small value type: parsers save
// and restore Cursors by copying them, the way the Cero parser speculates
// on generic-vs-comparison syntax.
type Cursor struct {
	stream *Stream
	pos    int // index of the next not-yet-consumed token, comments included
}

// NewCursor returns a Cursor positioned at the start of stream.
func NewCursor(stream *Stream) Cursor {
	return Cursor{stream: stream, pos: 0}
}

// Mark returns a value that can later be passed to Restore to rewind this
// cursor to its current position. Cursor is a value type, so in practice
// Mark/Restore are just "copy the Cursor"; the named methods exist because
// spec calls out bookmark/restore as an explicit parser-speculation
// operation.
func (c Cursor) Mark() Cursor { return c }

// Restore rewinds this cursor to a previously Marked position.
func (c *Cursor) Restore(mark Cursor) { *c = mark }

// skipComments advances idx past any comment tokens, without mutating the
// cursor.
func (c *Cursor) skipComments(idx int) int {
	for idx < c.stream.Len()-1 && c.stream.At(idx).Kind().IsComment() {
		idx++
	}
	return idx
}

// atEOF reports whether idx is at (or past) the stream's final token. The
// final token is always EndOfFile.
func (c *Cursor) atEOF(idx int) bool {
	return idx >= c.stream.Len()-1
}

// Peek returns the next non-comment token without consuming it.
func (c *Cursor) Peek() Token {
	idx := c.skipComments(c.pos)
	return c.stream.At(idx)
}

// PeekKind is Peek().Kind().
func (c *Cursor) PeekKind() Kind { return c.Peek().Kind() }

// PeekOffset is Peek().Offset().
func (c *Cursor) PeekOffset() int { return c.Peek().Offset() }

// PeekLength returns the lexeme length of Peek().
func (c *Cursor) PeekLength() int {
	idx := c.skipComments(c.pos)
	return c.stream.Length(idx)
}

// PeekAhead returns the non-comment token after Peek(), without consuming
// anything. At end of stream it returns the EndOfFile token repeatedly.
func (c *Cursor) PeekAhead() Token {
	idx := c.skipComments(c.pos)
	if c.atEOF(idx) {
		return c.stream.At(idx)
	}
	idx = c.skipComments(idx + 1)
	return c.stream.At(idx)
}

// Advance consumes the current token (skipping past any leading comments
// transparently) and returns it. Past end of file, Advance is idempotent:
// it keeps returning EndOfFile without moving the cursor further.
func (c *Cursor) Advance() Token {
	idx := c.skipComments(c.pos)
	tok := c.stream.At(idx)
	if !c.atEOF(idx) {
		idx++
	}
	c.pos = idx
	return tok
}

// Match advances past the next non-comment token and returns true if it has
// the given kind; otherwise the cursor is left unmoved and false is
// returned.
func (c *Cursor) Match(kind Kind) bool {
	_, ok := c.MatchToken(kind)
	return ok
}

// MatchToken is like Match, but also returns the matched token.
func (c *Cursor) MatchToken(kind Kind) (Token, bool) {
	if c.Peek().Kind() != kind {
		return 0, false
	}
	return c.Advance(), true
}

// MatchName is Match(Name), returning the matched token.
func (c *Cursor) MatchName() (Token, bool) {
	return c.MatchToken(Name)
}

// Lexeme returns the lexeme of the current (not-yet-consumed) token.
func (c *Cursor) Lexeme() []byte {
	idx := c.skipComments(c.pos)
	return c.stream.Lexeme(idx)
}

// AdvanceLexeme consumes the current token like Advance, and also returns
// its lexeme, captured before the cursor moves past the only place that
// lexeme's length is recorded.
func (c *Cursor) AdvanceLexeme() (Token, []byte) {
	idx := c.skipComments(c.pos)
	lex := c.stream.Lexeme(idx)
	tok := c.stream.At(idx)
	if !c.atEOF(idx) {
		idx++
	}
	c.pos = idx
	return tok, lex
}

// Stream returns the underlying token stream.
func (c *Cursor) Stream() *Stream { return c.stream }
