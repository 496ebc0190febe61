package parser

import (
	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/token"
)

// headParseFunc parses a grammar rule identified by its first token, such
// as a literal, a name, or a prefix operator.
type headParseFunc func(p *Parser) ast.Index

// tailParseFunc parses a grammar rule identified by a token appearing
// after an already-parsed expression, such as an infix or postfix
// operator. offset is the offset of the head token that started the
// overall expression being extended, not the operator's own offset.
type tailParseFunc func(p *Parser, left ast.Index, offset int)

// tailRule pairs a tail parse method with the precedence it binds at: the
// Pratt loop keeps applying tail rules whose precedence is strictly
// greater than the precedence it was called with.
type tailRule struct {
	precedence Precedence
	parse      tailParseFunc
}

// lookupPrecedenceForAssociativity returns the precedence used when
// parsing a binary operator's right-hand operand. For most operators this
// is the operator's own tail-table precedence: inside the recursive parse
// of the right operand, a further operator at that same precedence meets
// the loop's halt condition, giving the usual left-associative chaining.
// Power and the assignment operators map one level BELOW their own
// tail-table entry instead (Multiplicative for Power, Statement for the
// assignments): a further operator of the same kind then still binds
// tighter than the right operand's precedence and keeps being absorbed
// into the right-hand side, producing right-associativity.
func lookupPrecedenceForAssociativity(op ast.BinaryOperator) Precedence {
	switch op {
	case ast.Add, ast.Subtract:
		return AdditiveOrBitwise
	case ast.Multiply, ast.Divide, ast.Remainder, ast.Power:
		return Multiplicative
	case ast.LogicalAnd, ast.LogicalOr:
		return Logical
	case ast.BitAnd, ast.BitOr, ast.Xor, ast.LeftShift, ast.RightShift:
		return AdditiveOrBitwise
	case ast.Equal, ast.NotEqual, ast.Less, ast.Greater, ast.LessEqual, ast.GreaterEqual:
		return Comparison
	case ast.Assign, ast.AddAssign, ast.SubtractAssign, ast.MultiplyAssign, ast.DivideAssign,
		ast.RemainderAssign, ast.PowerAssign, ast.AndAssign, ast.OrAssign, ast.XorAssign,
		ast.LeftShiftAssign, ast.RightShiftAssign:
		return Statement
	default:
		panic("parser: unhandled BinaryOperator in lookupPrecedenceForAssociativity")
	}
}

func binaryRule(prec Precedence, op ast.BinaryOperator) tailRule {
	return tailRule{prec, func(p *Parser, left ast.Index, offset int) {
		p.onBinaryOperator(left, offset, op)
	}}
}

func postfixRule(op ast.UnaryOperator) tailRule {
	return tailRule{Postfix, func(p *Parser, left ast.Index, offset int) {
		p.onPostfixOperator(left, offset, op)
	}}
}

// tailTable maps every token kind that can extend an expression to the
// precedence it binds at and the method that parses it. RightAngle is
// handled separately, in getNextTailParseMethod, since its rule depends on
// run-time lookahead rather than just its kind.
var tailTable = map[token.Kind]tailRule{
	token.Eq:            binaryRule(Assignment, ast.Assign),
	token.PlusEq:        binaryRule(Assignment, ast.AddAssign),
	token.MinusEq:       binaryRule(Assignment, ast.SubtractAssign),
	token.StarEq:        binaryRule(Assignment, ast.MultiplyAssign),
	token.SlashEq:       binaryRule(Assignment, ast.DivideAssign),
	token.PercentEq:     binaryRule(Assignment, ast.RemainderAssign),
	token.StarStarEq:    binaryRule(Assignment, ast.PowerAssign),
	token.AmpEq:         binaryRule(Assignment, ast.AndAssign),
	token.PipeEq:        binaryRule(Assignment, ast.OrAssign),
	token.TildeEq:       binaryRule(Assignment, ast.XorAssign),
	token.LAngleAngleEq: binaryRule(Assignment, ast.LeftShiftAssign),
	token.RAngleAngleEq: binaryRule(Assignment, ast.RightShiftAssign),

	token.AmpAmp:   binaryRule(Logical, ast.LogicalAnd),
	token.PipePipe: binaryRule(Logical, ast.LogicalOr),

	token.EqEq:     binaryRule(Comparison, ast.Equal),
	token.BangEq:   binaryRule(Comparison, ast.NotEqual),
	token.LAngle:   binaryRule(Comparison, ast.Less),
	token.LAngleEq: binaryRule(Comparison, ast.LessEqual),
	token.RAngleEq: binaryRule(Comparison, ast.GreaterEqual),

	token.Plus:        binaryRule(AdditiveOrBitwise, ast.Add),
	token.Minus:       binaryRule(AdditiveOrBitwise, ast.Subtract),
	token.Amp:         binaryRule(AdditiveOrBitwise, ast.BitAnd),
	token.Pipe:        binaryRule(AdditiveOrBitwise, ast.BitOr),
	token.Tilde:       binaryRule(AdditiveOrBitwise, ast.Xor),
	token.LAngleAngle: binaryRule(AdditiveOrBitwise, ast.LeftShift),

	token.Star:    binaryRule(Multiplicative, ast.Multiply),
	token.Slash:   binaryRule(Multiplicative, ast.Divide),
	token.Percent: binaryRule(Multiplicative, ast.Remainder),

	// Power binds at Prefix in this table (tighter than every other binary
	// operator here), but lookupPrecedenceForAssociativity parses its right
	// operand one level lower, at Multiplicative, making it right-associative.
	token.StarStar: binaryRule(Prefix, ast.Power),

	token.Caret:      postfixRule(ast.Dereference),
	token.PlusPlus:   postfixRule(ast.PostIncrement),
	token.MinusMinus: postfixRule(ast.PostDecrement),

	token.Dot:      {Postfix, (*Parser).onDot},
	token.LParen:   {Postfix, (*Parser).onInfixLeftParen},
	token.LBracket: {Postfix, (*Parser).onInfixLeftBracket},
}

// lookupHeadParseMethod returns the parse method for a grammar rule
// starting with a token of this kind, or nil if no expression can start
// here.
func lookupHeadParseMethod(kind token.Kind) headParseFunc {
	switch kind {
	case token.Name:
		return (*Parser).onName
	case token.If:
		return (*Parser).onIfExpr
	case token.Var:
		return (*Parser).onPermission
	case token.DecIntLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Decimal) }
	case token.HexIntLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Hexadecimal) }
	case token.BinIntLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Binary) }
	case token.OctIntLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Octal) }
	case token.FloatLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Float) }
	case token.CharLiteral:
		return func(p *Parser) ast.Index { return p.onNumericLiteral(ast.Character) }
	case token.StringLiteral:
		return (*Parser).onStringLiteral
	case token.LParen:
		return (*Parser).onPrefixLeftParen
	case token.LBracket:
		return (*Parser).onPrefixLeftBracket
	case token.Break:
		return (*Parser).onBreak
	case token.Continue:
		return (*Parser).onContinue
	case token.Return:
		return (*Parser).onReturn
	case token.Throw:
		return (*Parser).onThrow
	case token.Amp:
		return func(p *Parser) ast.Index { return p.onPrefixOperator(ast.AddressOf) }
	case token.Minus:
		return func(p *Parser) ast.Index { return p.onPrefixOperator(ast.Negate) }
	case token.Tilde:
		return func(p *Parser) ast.Index { return p.onPrefixOperator(ast.BitwiseNot) }
	case token.PlusPlus:
		return func(p *Parser) ast.Index { return p.onPrefixOperator(ast.PreIncrement) }
	case token.MinusMinus:
		return func(p *Parser) ast.Index { return p.onPrefixOperator(ast.PreDecrement) }
	case token.Caret:
		return (*Parser).onCaret
	default:
		return nil
	}
}

// getNextTailParseMethod returns the tail rule that applies to the next
// token, or nil if none does or the one that does binds at or below
// current.
func (p *Parser) getNextTailParseMethod(current Precedence) tailParseFunc {
	peeked := p.cursor.Peek()

	var rule tailRule
	if peeked.Kind() == token.RAngle {
		if p.openAngles > 0 {
			return nil
		}

		next := p.cursor.PeekAhead()
		if next.Kind() == token.RAngle && next.Offset() == peeked.Offset()+1 {
			if current >= AdditiveOrBitwise {
				return nil
			}
			p.cursor.Advance()
			rule = binaryRule(AdditiveOrBitwise, ast.RightShift)
		} else {
			rule = binaryRule(Comparison, ast.Greater)
		}
	} else {
		r, ok := tailTable[peeked.Kind()]
		if !ok {
			return nil
		}
		rule = r
	}

	if current >= rule.precedence {
		return nil
	}
	return rule.parse
}

// parseExpression parses a complete expression at the given precedence
// level: a head parse, then as many tail parses as bind tighter than
// current.
func (p *Parser) parseExpression(current Precedence) ast.Index {
	next := p.cursor.Peek()

	head := lookupHeadParseMethod(next.Kind())
	if head == nil {
		p.describeUnexpected(report.ExpectExpr, next, p.cursor.Lexeme())
		panic(parseError{})
	}

	expr := head(p)
	for {
		tail := p.getNextTailParseMethod(current)
		if tail == nil {
			break
		}
		tail(p, expr, next.Offset())
	}
	return expr
}

// parseSubexpression parses an expression nested as an operand — a call
// argument, an array bound, a default value, and so on — rather than one
// appearing directly in statement position. It disables the trailing-name
// binding reinterpretation for the duration.
func (p *Parser) parseSubexpression(precedence Precedence) ast.Index {
	saved := p.isBindingAllowed
	p.isBindingAllowed = false
	defer func() { p.isBindingAllowed = saved }()

	return p.parseExpression(precedence)
}

// parseExpressionOrBinding parses a statement-position expression, with
// the trailing-name binding reinterpretation enabled.
func (p *Parser) parseExpressionOrBinding() ast.Index {
	saved := p.isBindingAllowed
	p.isBindingAllowed = true
	defer func() { p.isBindingAllowed = saved }()

	return p.parseExpression(Statement)
}

// onName parses a Name token already confirmed to be next.
func (p *Parser) onName() ast.Index {
	tok, lex := p.cursor.AdvanceLexeme()
	return p.parseName(tok.Offset(), string(lex))
}

// parseName parses a name already consumed, trying a generic-argument
// list if `<` immediately follows.
func (p *Parser) parseName(offset int, name string) ast.Index {
	saved := p.cursor.Mark()
	if p.cursor.Match(token.LAngle) {
		return p.parseGenericName(offset, name, saved)
	}
	return p.tree.Push(ast.Node{Kind: ast.NameExpr, Offset: offset, Name: name})
}

// parseGenericName parses `Name < args... >`, already past the `<`, after
// speculatively checking whether what follows is really a generic
// argument list rather than the start of a comparison chain. nameStart is
// the cursor position just before the `<`, to which it rewinds if the
// speculation says this is not generic syntax.
func (p *Parser) parseGenericName(offset int, name string, nameStart token.Cursor) ast.Index {
	p.openAngles++
	defer func() { p.openAngles-- }()

	begin := p.tree.Next()
	numArgs := 0
	if !p.cursor.Match(token.RAngle) {
		fallBack := p.shouldFallBackToName()

		p.cursor.Restore(nameStart)
		p.tree.Truncate(begin)
		if fallBack {
			return p.tree.Push(ast.Node{Kind: ast.NameExpr, Offset: offset, Name: name})
		}

		p.cursor.Advance() // re-consume `<` for real, this time building the AST
		for {
			p.parseSubexpression(Statement)
			numArgs++
			if !p.cursor.Match(token.Comma) {
				break
			}
		}
		p.cursor.Advance() // consume closing `>`
	}

	return p.tree.InsertParent(begin, ast.Node{Kind: ast.GenericNameExpr, Offset: offset, Name: name, NumArguments: numArgs}, numArgs)
}

// shouldFallBackToName speculatively parses what follows `Name <` as a
// comma-separated expression list, with diagnostics suppressed, then
// decides from the token after a matching `>` whether this was really a
// generic argument list or should fall back to a plain name followed by a
// comparison chain.
func (p *Parser) shouldFallBackToName() bool {
	saved := p.isLookingAhead
	p.isLookingAhead = true
	defer func() { p.isLookingAhead = saved }()

	for {
		p.parseSubexpression(Statement)
		if !p.cursor.Match(token.Comma) {
			break
		}
	}

	if !p.cursor.Match(token.RAngle) {
		return true
	}

	switch p.cursor.PeekKind() {
	case token.Name:
		return !p.isBindingAllowed
	case token.DecIntLiteral, token.HexIntLiteral, token.BinIntLiteral, token.OctIntLiteral,
		token.FloatLiteral, token.CharLiteral, token.StringLiteral,
		token.Minus, token.Tilde, token.Amp, token.PlusPlus, token.MinusMinus:
		return true
	case token.RAngle:
		return p.openAngles == 1
	default:
		return false
	}
}

// onNumericLiteral parses a numeric literal token already confirmed to be
// next. Evaluating the literal's value is a later compiler stage; only its
// lexical kind is recorded here, since the text is always recoverable
// from the source via the node's offset.
func (p *Parser) onNumericLiteral(kind ast.NumericLiteralKind) ast.Index {
	tok := p.cursor.Advance()
	return p.tree.Push(ast.Node{Kind: ast.NumericLiteralExpr, Offset: tok.Offset(), NumericKind: kind})
}

// onStringLiteral parses a string literal token already confirmed to be
// next. The decoded value is currently the lexeme verbatim; escape
// sequence resolution belongs to a later pass.
func (p *Parser) onStringLiteral() ast.Index {
	tok, lex := p.cursor.AdvanceLexeme()
	return p.tree.Push(ast.Node{Kind: ast.StringLiteralExpr, Offset: tok.Offset(), StringValue: string(lex)})
}

// onPrefixLeftParen parses a parenthesized, comma-separated group. Angle
// bracket depth is reset for the duration so a comparison inside the
// parentheses can't be mistaken for a generic-argument close.
func (p *Parser) onPrefixLeftParen() ast.Index {
	savedAngles := p.openAngles
	p.openAngles = 0
	defer func() { p.openAngles = savedAngles }()

	tok := p.cursor.Advance()
	begin := p.tree.Next()

	numArgs := 0
	if !p.cursor.Match(token.RParen) {
		for {
			p.parseSubexpression(Statement)
			numArgs++
			if !p.cursor.Match(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, report.ExpectClosingParen)
	}

	return p.tree.InsertParent(begin, ast.Node{Kind: ast.GroupExpr, Offset: tok.Offset(), NumArguments: numArgs}, numArgs)
}

// onPrefixLeftBracket parses `[` in head position, which always starts an
// array type: there is no array literal expression syntax yet.
func (p *Parser) onPrefixLeftBracket() ast.Index {
	tok := p.cursor.Advance()
	return p.parseArrayType(tok.Offset())
}

// parseBracketedArguments parses a comma-separated argument list already
// past the opening `[`, consuming the closing `]`.
func (p *Parser) parseBracketedArguments() int {
	savedAngles := p.openAngles
	p.openAngles = 0
	defer func() { p.openAngles = savedAngles }()

	numArgs := 0
	if !p.cursor.Match(token.RBracket) {
		for {
			p.parseSubexpression(Statement)
			numArgs++
			if !p.cursor.Match(token.Comma) {
				break
			}
		}
		p.expect(token.RBracket, report.ExpectBracketAfterIndex)
	}
	return numArgs
}

// onBreak parses `break` with an optional value expression.
func (p *Parser) onBreak() ast.Index {
	tok := p.cursor.Advance()
	hasValue := false
	begin := p.parseOptionalSubexpression(&hasValue)
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.BreakExpr, Offset: tok.Offset(), HasValue: hasValue}, boolToInt(hasValue))
}

// onContinue parses `continue` with an optional value expression.
func (p *Parser) onContinue() ast.Index {
	tok := p.cursor.Advance()
	hasValue := false
	begin := p.parseOptionalSubexpression(&hasValue)
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.ContinueExpr, Offset: tok.Offset(), HasValue: hasValue}, boolToInt(hasValue))
}

// onThrow parses `throw` with an optional value expression.
func (p *Parser) onThrow() ast.Index {
	tok := p.cursor.Advance()
	hasValue := false
	begin := p.parseOptionalSubexpression(&hasValue)
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.ThrowExpr, Offset: tok.Offset(), HasValue: hasValue}, boolToInt(hasValue))
}

// onReturn parses `return` with zero or more comma-separated expressions.
func (p *Parser) onReturn() ast.Index {
	tok := p.cursor.Advance()
	begin := p.tree.Next()

	numExprs := 0
	if p.expressionMayFollow() {
		for {
			p.parseSubexpression(Statement)
			numExprs++
			if !p.cursor.Match(token.Comma) {
				break
			}
		}
	}

	return p.tree.InsertParent(begin, ast.Node{Kind: ast.ReturnExpr, Offset: tok.Offset(), NumArguments: numExprs}, numExprs)
}

// parseOptionalSubexpression parses the value expression of a break,
// continue or throw if one can follow, recording whether it did.
func (p *Parser) parseOptionalSubexpression(hasValue *bool) ast.Index {
	if p.expressionMayFollow() {
		*hasValue = true
		return p.parseSubexpression(Statement)
	}
	return p.tree.Next()
}

// expressionMayFollow reports whether the next token can start an
// expression, without consuming anything.
func (p *Parser) expressionMayFollow() bool {
	return lookupHeadParseMethod(p.cursor.PeekKind()) != nil
}

// onPrefixOperator parses a prefix unary operator already confirmed to be
// next, with its operand bound at Prefix precedence.
func (p *Parser) onPrefixOperator(op ast.UnaryOperator) ast.Index {
	tok := p.cursor.Advance()
	begin := p.parseSubexpression(Prefix)
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.UnaryExpr, Offset: tok.Offset(), UnaryOp: op}, 1)
}

// onPostfixOperator parses a postfix unary operator in tail position.
func (p *Parser) onPostfixOperator(left ast.Index, offset int, op ast.UnaryOperator) {
	p.cursor.Advance()
	p.tree.InsertParent(left, ast.Node{Kind: ast.UnaryExpr, Offset: offset, UnaryOp: op}, 1)
}

// onBinaryOperator parses a binary operator in tail position: consume the
// operator, parse its right-hand operand at the precedence appropriate to
// its associativity, diagnose any ambiguous operator mixing, then wrap
// left and right in a BinaryExpr.
func (p *Parser) onBinaryOperator(left ast.Index, offset int, op ast.BinaryOperator) {
	precedence := lookupPrecedenceForAssociativity(op)

	opTok := p.cursor.Advance()
	right := p.parseSubexpression(precedence)
	p.validateAssociativity(op, left, right, opTok)

	p.tree.InsertParent(left, ast.Node{Kind: ast.BinaryExpr, Offset: offset, BinaryOp: op}, 2)
}

// validateAssociativity inspects the immediate left and right operands of
// a freshly parsed binary expression and, if either is itself a binary
// (or the left a unary) expression whose operator ambiguously mixes with
// op, reports AmbiguousOperatorMixing.
func (p *Parser) validateAssociativity(op ast.BinaryOperator, left, right ast.Index, opTok token.Token) {
	leftNode := p.tree.At(left)
	rightNode := p.tree.At(right)

	if rightNode.Kind == ast.BinaryExpr {
		p.validateBinaryAssociativity(op, rightNode.BinaryOp, opTok)
	}

	switch leftNode.Kind {
	case ast.BinaryExpr:
		p.validateBinaryAssociativity(leftNode.BinaryOp, op, opTok)
	case ast.UnaryExpr:
		p.validateUnaryBinaryAssociativity(leftNode.UnaryOp, op, opTok)
	}
}

func (p *Parser) validateBinaryAssociativity(left, right ast.BinaryOperator, opTok token.Token) {
	if associatesAmbiguousOperators(left, right) {
		p.report(report.AmbiguousOperatorMixing, opTok.Offset(), left.String(), right.String())
	}
}

func (p *Parser) validateUnaryBinaryAssociativity(left ast.UnaryOperator, right ast.BinaryOperator, opTok token.Token) {
	if left == ast.Negate && right == ast.Power {
		p.report(report.AmbiguousOperatorMixing, opTok.Offset(), "-", "**")
	}
}

// transitiveComparisons is the whitelist of comparison operator pairs that
// chain unambiguously (e.g. `a < b < c`, both less-than); every other
// comparison-with-comparison mix is ambiguous.
var transitiveComparisons = map[[2]ast.BinaryOperator]bool{
	{ast.Equal, ast.Equal}:              true,
	{ast.Less, ast.Less}:                true,
	{ast.Less, ast.LessEqual}:           true,
	{ast.LessEqual, ast.LessEqual}:      true,
	{ast.LessEqual, ast.Less}:           true,
	{ast.Greater, ast.Greater}:          true,
	{ast.Greater, ast.GreaterEqual}:     true,
	{ast.GreaterEqual, ast.GreaterEqual}: true,
	{ast.GreaterEqual, ast.Greater}:     true,
}

// associatesAmbiguousOperators reports whether mixing left (the inner
// operator) with right (the outer one it's about to be wrapped by) is
// ambiguous enough to warrant a diagnostic.
func associatesAmbiguousOperators(left, right ast.BinaryOperator) bool {
	switch {
	case left.IsArithmetic():
		return right.IsBitwise()
	case left.IsBitwise():
		return right.IsArithmetic()
	case left == ast.LogicalAnd:
		return right == ast.LogicalOr
	case left == ast.LogicalOr:
		return right == ast.LogicalAnd
	case left.IsComparison():
		return right.IsComparison() && !transitiveComparisons[[2]ast.BinaryOperator{left, right}]
	default:
		return false
	}
}

// onDot parses `.member` in tail position.
func (p *Parser) onDot(left ast.Index, offset int) {
	p.cursor.Advance()
	member := p.expectName(report.ExpectNameAfterDot)
	p.tree.InsertParent(left, ast.Node{Kind: ast.MemberExpr, Offset: offset, Member: member}, 1)
}

// onInfixLeftParen parses a call expression's argument list in tail
// position.
func (p *Parser) onInfixLeftParen(left ast.Index, offset int) {
	savedAngles := p.openAngles
	p.openAngles = 0
	defer func() { p.openAngles = savedAngles }()

	p.cursor.Advance()
	numArgs := 0
	if !p.cursor.Match(token.RParen) {
		for {
			p.parseSubexpression(Statement)
			numArgs++
			if !p.cursor.Match(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, report.ExpectClosingParen)
	}
	p.tree.InsertParent(left, ast.Node{Kind: ast.CallExpr, Offset: offset, NumArguments: numArgs}, 1+numArgs)
}

// onInfixLeftBracket parses an index expression's argument list in tail
// position.
func (p *Parser) onInfixLeftBracket(left ast.Index, offset int) {
	p.cursor.Advance()
	numArgs := p.parseBracketedArguments()
	p.tree.InsertParent(left, ast.Node{Kind: ast.IndexExpr, Offset: offset, NumArguments: numArgs}, 1+numArgs)
}

// onCaret parses `^` in head position, which always starts a pointer
// type.
func (p *Parser) onCaret() ast.Index {
	tok := p.cursor.Advance()
	return p.parsePointerType(tok.Offset())
}

// onPermission parses `var` in head (expression) position, which always
// starts a permission expression — the qualifier a pointer type's
// `parsePointerType` attaches, reached here via its own call to
// parseSubexpression.
func (p *Parser) onPermission() ast.Index {
	tok := p.cursor.Advance()
	return p.parsePermission(tok.Offset())
}
