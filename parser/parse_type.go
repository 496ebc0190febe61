package parser

import (
	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/token"
)

// parseType parses a type expression: a `^`-prefixed pointer type, a
// `[`-prefixed array type, a `(`-prefixed function type, or else a
// (possibly generic) name.
func (p *Parser) parseType() ast.Index {
	offset := p.cursor.PeekOffset()

	if p.cursor.Match(token.Caret) {
		return p.parsePointerType(offset)
	}
	if p.cursor.Match(token.LBracket) {
		return p.parseArrayType(offset)
	}
	if p.cursor.Match(token.LParen) {
		return p.parseFunctionType(offset)
	}

	name := p.expectName(report.ExpectType)
	return p.parseName(offset, name)
}

// parseArrayType parses `[ bound? ] element_type`, already past the `[`.
// `[ ] T` is unbounded.
func (p *Parser) parseArrayType(offset int) ast.Index {
	var hasBound bool
	var begin ast.Index
	if p.cursor.Match(token.RBracket) {
		hasBound = false
		begin = p.parseType()
	} else {
		hasBound = true
		begin = p.parseSubexpression(Statement)
		p.expect(token.RBracket, report.ExpectBracketAfterArrayBound)
		p.parseType()
	}

	numChildren := 1
	if hasBound {
		numChildren = 2
	}
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.ArrayTypeExpr, Offset: offset, HasArrayBound: hasBound}, numChildren)
}

// parsePointerType parses `^ permission? type`, already past the `^`.
func (p *Parser) parsePointerType(offset int) ast.Index {
	var hasPermission bool
	var begin ast.Index
	if p.cursor.PeekKind() == token.Var {
		hasPermission = true
		begin = p.parseSubexpression(Statement)
		p.parseType()
	} else {
		hasPermission = false
		begin = p.parseType()
	}

	numChildren := 1
	if hasPermission {
		numChildren = 2
	}
	return p.tree.InsertParent(begin, ast.Node{Kind: ast.PointerTypeExpr, Offset: offset, HasPermission: hasPermission}, numChildren)
}

// parsePermission parses a pointer type's `var ( { args... (...)? } )?`
// qualifier, already past the `var` keyword.
func (p *Parser) parsePermission(offset int) ast.Index {
	begin := p.tree.Next()

	spec := ast.PermissionVar
	numArgs := 0
	if p.cursor.Match(token.LBrace) {
		savedAngles := p.openAngles
		p.openAngles = 0

		spec = ast.PermissionVarBounded
		if !p.cursor.Match(token.RBrace) {
			for {
				p.parseSubexpression(Statement)
				numArgs++
				if !p.cursor.Match(token.Comma) {
					break
				}
			}
			if p.cursor.Match(token.Ellipsis) {
				spec = ast.PermissionVarUnbounded
			}
			p.expect(token.RBrace, report.ExpectBraceAfterPermission)
		}

		p.openAngles = savedAngles
	}

	return p.tree.InsertParent(begin, ast.Node{Kind: ast.PermissionExpr, Offset: offset, PermissionSpec: spec, NumArguments: numArgs}, numArgs)
}

// parseFunctionType parses `( parameters ) -> outputs`, already past the
// opening `(`.
func (p *Parser) parseFunctionType(offset int) ast.Index {
	begin := p.tree.Next()
	p.tree.Push(ast.Node{})

	numParams := p.parseFunctionTypeParameters()
	p.expect(token.ThinArrow, report.ExpectArrowAfterFuncTypeParams)
	numOutputs := p.parseFunctionTypeOutputs()

	p.tree.Finish(begin, ast.Node{
		Kind: ast.FunctionTypeExpr, Offset: offset,
		NumParameters: numParams, NumOutputs: numOutputs,
	}, numParams+numOutputs)
	return begin
}

// parseFunctionTypeParameters parses a possibly-empty comma-separated
// parameter list already past the opening `(`, consuming the closing `)`.
// Parameters in a function type may not carry a default argument.
func (p *Parser) parseFunctionTypeParameters() int {
	count := 0
	if p.cursor.Match(token.RParen) {
		return count
	}
	for {
		p.parseFunctionTypeParameter()
		count++
		if !p.cursor.Match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, report.ExpectParenAfterParams)
	return count
}

func (p *Parser) parseFunctionTypeParameter() {
	offset := p.cursor.PeekOffset()

	spec := ast.ParameterNone
	switch p.cursor.PeekKind() {
	case token.In:
		p.cursor.Advance()
		spec = ast.ParameterIn
	case token.Var:
		p.cursor.Advance()
		spec = ast.ParameterVar
	}

	begin := p.parseType()

	name := ""
	if p.cursor.PeekKind() == token.Name {
		_, lex := p.cursor.AdvanceLexeme()
		name = string(lex)
	}

	if tok, ok := p.cursor.MatchToken(token.Eq); ok {
		p.report(report.FuncTypeDefaultArgument, tok.Offset())
		panic(parseError{})
	}

	p.tree.InsertParent(begin, ast.Node{Kind: ast.FunctionParameter, Offset: offset, ParamSpecifier: spec, Name: name}, 1)
}

// parseFunctionTypeOutputs parses a comma-separated output list followed
// by a closing `)`.
func (p *Parser) parseFunctionTypeOutputs() int {
	count := 0
	for {
		p.parseFunctionTypeOutput()
		count++
		if !p.cursor.Match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, report.ExpectParenAfterOutputs)
	return count
}

func (p *Parser) parseFunctionTypeOutput() {
	offset := p.cursor.PeekOffset()
	begin := p.parseType()

	name := ""
	if p.cursor.PeekKind() == token.Name {
		_, lex := p.cursor.AdvanceLexeme()
		name = string(lex)
	}

	p.tree.InsertParent(begin, ast.Node{Kind: ast.FunctionOutput, Offset: offset, Name: name}, 1)
}
