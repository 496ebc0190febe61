// Package parser builds a Cero ast.Tree from a token.Stream, using
// recursive-descent for statements and declarations and a Pratt
// (precedence-climbing) loop for expressions.
package parser

import (
	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/lexer"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/source"
	"github.com/cero-lang/cero/token"
)

// parseError is the sentinel thrown (via panic/recover) to unwind to the
// nearest recovery point, standing in for the original parser's thrown
// exception type.
type parseError struct{}

// boolToInt is 1 if b, else 0 — used to turn an optional child's
// presence flag into the immediate-child count InsertParent/Finish need.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Parser holds all mutable state for a single parse.
type Parser struct {
	cursor token.Cursor
	tree   *ast.Tree
	src    *source.Source
	rep    report.Reporter

	// isLookingAhead suppresses diagnostics while the generic-name
	// disambiguation speculatively parses ahead.
	isLookingAhead bool

	// isBindingAllowed controls whether a trailing Name after a type
	// expression is read as introducing a binding, rather than always
	// falling back to a plain NameExpr. It is cleared while parsing inside
	// contexts (like call arguments) where that reinterpretation cannot
	// apply.
	isBindingAllowed bool

	// openAngles is the depth of currently-open generic-argument angle
	// brackets, consulted by the right-angle disambiguation.
	openAngles int
}

// Parse lexes src and parses the resulting tokens, reporting diagnostics
// to rep and returning the AST.
func Parse(src *source.Source, rep report.Reporter) *ast.Tree {
	return ParseStream(lexer.Lex(src, rep), src, rep)
}

// ParseStream parses an already-lexed token stream into an AST.
func ParseStream(stream *token.Stream, src *source.Source, rep report.Reporter) *ast.Tree {
	p := &Parser{
		cursor:           token.NewCursor(stream),
		tree:             ast.New(),
		src:              src,
		rep:              rep,
		isBindingAllowed: true,
	}
	p.run()
	return p.tree
}

// run parses the whole translation unit: a sequence of definitions until
// EOF, each recovering independently from a parse error.
func (p *Parser) run() {
	numDefinitions := 0
	for p.cursor.PeekKind() != token.EndOfFile {
		if p.parseDefinitionRecovering() {
			numDefinitions++
		}
	}
	p.tree.SetRoot(0, numDefinitions)
}

// parseDefinitionRecovering parses one top-level definition, catching a
// thrown parseError and resynchronizing at definition scope. It reports
// whether a definition was actually produced.
func (p *Parser) parseDefinitionRecovering() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseError := r.(parseError); !isParseError {
				panic(r)
			}
			p.recoverAtDefinitionScope()
			ok = false
		}
	}()
	p.parseDefinition()
	return true
}

// report records a diagnostic, unless the parser is currently in
// speculative lookahead mode, in which case it is dropped entirely.
func (p *Parser) report(kind report.Kind, offset int, args ...any) {
	if p.isLookingAhead {
		return
	}
	p.rep.Report(kind, p.src.Locate(offset), args...)
}

// fail reports kind at offset and unwinds to the nearest recovery point.
func (p *Parser) fail(kind report.Kind, offset int, args ...any) {
	p.report(kind, offset, args...)
	panic(parseError{})
}

// describeUnexpected reports kind at tok's offset, with tok rendered as
// the format's "found X" argument, without unwinding.
func (p *Parser) describeUnexpected(kind report.Kind, tok token.Token, lexeme []byte) {
	p.report(kind, tok.Offset(), describe(tok.Kind(), lexeme))
}

// expect consumes the next token if it has kind k, otherwise reports
// failKind (describing the unexpected token) and unwinds to the nearest
// recovery point.
func (p *Parser) expect(k token.Kind, failKind report.Kind) token.Token {
	if tok, ok := p.cursor.MatchToken(k); ok {
		return tok
	}
	tok, lex := p.cursor.Peek(), p.cursor.Lexeme()
	p.describeUnexpected(failKind, tok, lex)
	panic(parseError{})
}

// expectName consumes and returns the next token's lexeme if it is a
// Name. Otherwise it reports failKind (describing the unexpected token,
// left unconsumed) and returns "", without unwinding. Callers that must
// abandon the enclosing construct on a missing name do so explicitly by
// checking for "".
func (p *Parser) expectName(failKind report.Kind) string {
	if p.cursor.PeekKind() != token.Name {
		tok, lex := p.cursor.Peek(), p.cursor.Lexeme()
		p.describeUnexpected(failKind, tok, lex)
		return ""
	}
	_, lex := p.cursor.AdvanceLexeme()
	return string(lex)
}

// recoverAtDefinitionScope advances past tokens until one that can start
// a new top-level definition, or EOF.
func (p *Parser) recoverAtDefinitionScope() {
	for {
		switch p.cursor.PeekKind() {
		case token.Public, token.Private, token.Struct, token.Enum, token.EndOfFile:
			return
		}
		p.cursor.Advance()
	}
}

// recoverAtStatementScope advances past tokens until a `;` (consumed), a
// `}` (left for the caller to close its block), or EOF. It reports
// whether it ran all the way to EOF. parseStatementRecovering ignores that
// result: parseBlock's loop stops at EOF through its own check of the next
// token.
func (p *Parser) recoverAtStatementScope() (ranToEOF bool) {
	for {
		switch p.cursor.PeekKind() {
		case token.Semicolon:
			p.cursor.Advance()
			return false
		case token.RBrace:
			return false
		case token.EndOfFile:
			return true
		}
		p.cursor.Advance()
	}
}
