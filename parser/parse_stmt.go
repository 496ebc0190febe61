package parser

import (
	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/token"
)

// parseBlock parses `{ statement* }`, already positioned at the `{`.
// Statements are pushed flat into whatever parent slot the caller has
// already reserved: a function body's statements become direct children
// of its FunctionDefinition, a while loop's become direct children of its
// WhileLoop, and a standalone `{ ... }` statement gets its own
// BlockStatement wrapper via onLeftBrace.
func (p *Parser) parseBlock() int {
	p.cursor.Advance() // `{`

	savedAngles := p.openAngles
	savedBinding := p.isBindingAllowed
	p.openAngles = 0
	p.isBindingAllowed = true
	defer func() {
		p.openAngles = savedAngles
		p.isBindingAllowed = savedBinding
	}()

	count := 0
	for p.cursor.PeekKind() != token.RBrace && p.cursor.PeekKind() != token.EndOfFile {
		if p.parseStatementRecovering() {
			count++
		}
	}
	p.expect(token.RBrace, report.ExpectClosingBrace)
	return count
}

// parseStatementRecovering parses one statement, catching a thrown
// parseError and resynchronizing at statement scope so the enclosing
// block's loop can continue with the next statement. It reports whether
// a statement node was actually produced, so the caller can keep an
// accurate count of its direct children.
func (p *Parser) parseStatementRecovering() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseError := r.(parseError); !isParseError {
				panic(r)
			}
			p.recoverAtStatementScope()
			ok = false
		}
	}()
	return p.parseStatement()
}

// parseStatement parses one statement, dispatching on its leading token.
// It reports whether a statement node was pushed: a bare `;` produces
// nothing but a diagnostic.
func (p *Parser) parseStatement() bool {
	switch p.cursor.PeekKind() {
	case token.Semicolon:
		tok := p.cursor.Advance()
		p.report(report.UnnecessarySemicolon, tok.Offset())
		return false
	case token.LBrace:
		p.onLeftBrace()
	case token.If:
		p.onIfStmt()
	case token.While:
		p.onWhile()
	case token.For:
		p.onFor()
	case token.Let:
		p.onLet()
	case token.Var:
		p.onVar()
	case token.Const:
		p.onConst()
	case token.Static:
		p.onStatic()
	default:
		p.onExpressionStatement()
	}
	return true
}

// onLeftBrace parses a standalone `{ ... }` appearing in statement
// position, wrapping its statements in their own nested scope.
func (p *Parser) onLeftBrace() {
	offset := p.cursor.PeekOffset()
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	count := p.parseBlock()

	p.tree.Finish(at, ast.Node{Kind: ast.BlockStatement, Offset: offset}, count)
}

// parseControlBody parses the body of an if or while statement: either a
// `{`-delimited block, or a `:`-introduced single statement. Either form
// leaves its statement(s) as direct children of whatever the caller has
// already reserved a parent slot for, and returns how many it produced.
func (p *Parser) parseControlBody() int {
	if p.cursor.PeekKind() == token.LBrace {
		return p.parseBlock()
	}

	if colon, ok := p.cursor.MatchToken(token.Colon); ok {
		if p.cursor.PeekKind() == token.LBrace {
			p.report(report.UnnecessaryColonBeforeBlock, colon.Offset())
			return p.parseBlock()
		}
		return boolToInt(p.parseStatement())
	}

	tok, lex := p.cursor.Peek(), p.cursor.Lexeme()
	p.describeUnexpected(report.ExpectColonOrBlock, tok, lex)
	panic(parseError{})
}

// onIfStmt parses `if` in statement position: a condition, a body, and an
// optional `else` body, which is either another `if` statement (so `else
// if` chains) or a control body like the first one.
func (p *Parser) onIfStmt() {
	tok := p.cursor.Advance()
	begin := p.parseSubexpression(Statement)
	thenCount := p.parseControlBody()

	hasElse := false
	elseCount := 0
	if p.cursor.Match(token.Else) {
		hasElse = true
		if p.cursor.PeekKind() == token.If {
			elseCount = boolToInt(p.parseStatement())
		} else {
			elseCount = p.parseControlBody()
		}
	}

	p.tree.InsertParent(begin, ast.Node{Kind: ast.IfExpr, Offset: tok.Offset(), HasElse: hasElse}, 1+thenCount+elseCount)
}

// onIfExpr parses `if` in head (expression) position: `if cond : expr
// else expr`. Unlike the statement form, both branches and the `else`
// are mandatory, since the construct must produce a value.
func (p *Parser) onIfExpr() ast.Index {
	tok := p.cursor.Advance()
	begin := p.parseSubexpression(Statement)
	p.expect(token.Colon, report.ExpectColonInIfExpr)
	p.parseSubexpression(Assignment)

	if !p.cursor.Match(token.Else) {
		next, lex := p.cursor.Peek(), p.cursor.Lexeme()
		p.describeUnexpected(report.ExpectElse, next, lex)
		panic(parseError{})
	}
	p.parseSubexpression(Assignment)

	return p.tree.InsertParent(begin, ast.Node{Kind: ast.IfExpr, Offset: tok.Offset(), HasElse: true}, 3)
}

// onWhile parses `while cond` followed by a control body. There is no
// single-expression form: a while loop is always a statement.
func (p *Parser) onWhile() {
	tok := p.cursor.Advance()
	begin := p.parseSubexpression(Statement)
	bodyCount := p.parseControlBody()

	p.tree.InsertParent(begin, ast.Node{Kind: ast.WhileLoop, Offset: tok.Offset()}, 1+bodyCount)
}

// onFor parses `for`, which is reserved grammar: the surface form `for
// binding in range : statement` exists but is not yet implemented.
func (p *Parser) onFor() {
	tok := p.cursor.Advance()
	p.fail(report.ForLoopUnsupported, tok.Offset())
}

// onLet parses `let Name (= expr)? ;`. Unlike var/const/static, a let
// binding is never typed: the initializer's type is always inferred.
func (p *Parser) onLet() {
	tok := p.cursor.Advance()
	begin := p.tree.Next()

	name := p.expectName(report.ExpectNameAfterLet)
	if name == "" {
		panic(parseError{})
	}

	hasInit := false
	if p.cursor.Match(token.Eq) {
		hasInit = true
		p.parseSubexpression(Assignment)
	}

	p.expect(token.Semicolon, report.ExpectSemicolon)

	p.tree.InsertParent(begin, ast.Node{
		Kind: ast.BindingStatement, Offset: tok.Offset(), BindingSpec: ast.BindingLet,
		Name: name, HasType: false, HasInitializer: hasInit,
	}, boolToInt(hasInit))
}

// onVar parses `var { permission-args... } ;`, a bare permission
// expression in statement position, or else falls through to the
// var/const/static binding grammar shared by parseBinding.
func (p *Parser) onVar() {
	tok := p.cursor.Advance()
	if p.cursor.PeekKind() == token.LBrace {
		p.parsePermission(tok.Offset())
		p.expect(token.Semicolon, report.ExpectSemicolon)
		return
	}
	p.parseBinding(tok, ast.BindingVar)
}

// onConst parses a const binding via the grammar shared by parseBinding.
func (p *Parser) onConst() {
	tok := p.cursor.Advance()
	p.parseBinding(tok, ast.BindingConst)
}

// onStatic parses `static ...` or `static var ...` via the grammar
// shared by parseBinding.
func (p *Parser) onStatic() {
	tok := p.cursor.Advance()
	spec := ast.BindingStatic
	if p.cursor.Match(token.Var) {
		spec = ast.BindingStaticVar
	}
	p.parseBinding(tok, spec)
}

// parseBinding parses the two-form binding grammar shared by var, const,
// and static, already past the introducing keyword. It first tries form
// (a), `Name = initializer`, via a bounded two-token lookahead (a bare
// Name followed by `=`); the initializer is mandatory in this form, since
// without a type annotation there is nothing else to infer it from.
// Anything else falls back to form (b), `type Name (= initializer)?`,
// where the initializer is optional.
func (p *Parser) parseBinding(tok token.Token, spec ast.BindingSpecifier) {
	begin := p.tree.Next()

	if p.cursor.PeekKind() == token.Name && p.cursor.PeekAhead().Kind() == token.Eq {
		_, lex := p.cursor.AdvanceLexeme()
		name := string(lex)
		p.cursor.Advance() // `=`
		p.parseSubexpression(Assignment)
		p.expect(token.Semicolon, report.ExpectSemicolon)

		p.tree.InsertParent(begin, ast.Node{
			Kind: ast.BindingStatement, Offset: tok.Offset(), BindingSpec: spec,
			Name: name, HasType: false, HasInitializer: true,
		}, 1)
		return
	}

	p.parseType()
	name := p.expectName(report.ExpectNameAfterDeclType)
	if name == "" {
		panic(parseError{})
	}

	hasInit := false
	if p.cursor.Match(token.Eq) {
		hasInit = true
		p.parseSubexpression(Assignment)
	}

	p.expect(token.Semicolon, report.ExpectSemicolon)

	p.tree.InsertParent(begin, ast.Node{
		Kind: ast.BindingStatement, Offset: tok.Offset(), BindingSpec: spec,
		Name: name, HasType: true, HasInitializer: hasInit,
	}, 1+boolToInt(hasInit))
}

// onExpressionStatement parses an expression in statement position. If it
// turns out to be a type expression immediately followed by a Name, it is
// reinterpreted as an implicit binding declaration (`Type name = expr;`)
// rather than a bare expression statement.
func (p *Parser) onExpressionStatement() {
	offset := p.cursor.PeekOffset()
	expr := p.parseExpressionOrBinding()

	if p.tree.At(expr).Kind.IsTypeExpr() && p.cursor.PeekKind() == token.Name {
		p.onTrailingName(offset, expr)
		return
	}

	p.expect(token.Semicolon, report.ExpectSemicolon)
}

// onTrailingName completes the implicit-binding reinterpretation: the
// type expression has already been parsed as typeBegin; what follows is
// the bound name and an optional initializer.
func (p *Parser) onTrailingName(offset int, typeBegin ast.Index) {
	_, lex := p.cursor.AdvanceLexeme()
	name := string(lex)

	hasInit := false
	if p.cursor.Match(token.Eq) {
		hasInit = true
		p.parseSubexpression(Assignment)
	}

	p.expect(token.Semicolon, report.ExpectSemicolon)

	p.tree.InsertParent(typeBegin, ast.Node{
		Kind: ast.BindingStatement, Offset: offset, BindingSpec: ast.BindingLet,
		Name: name, HasType: true, HasInitializer: hasInit,
	}, 1+boolToInt(hasInit))
}
