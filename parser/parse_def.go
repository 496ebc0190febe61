package parser

import (
	"github.com/cero-lang/cero/ast"
	"github.com/cero-lang/cero/report"
	"github.com/cero-lang/cero/token"
)

// parseDefinition parses one top-level definition: an optional access
// specifier followed by a function, struct, or enum.
func (p *Parser) parseDefinition() {
	access := ast.AccessNone
	switch p.cursor.PeekKind() {
	case token.Private:
		p.cursor.Advance()
		access = ast.AccessPrivate
	case token.Public:
		p.cursor.Advance()
		access = ast.AccessPublic
	}

	switch p.cursor.PeekKind() {
	case token.Struct:
		p.cursor.Advance()
		p.parseStruct(access)
	case token.Enum:
		p.cursor.Advance()
		p.parseEnum(access)
	case token.Name:
		p.parseFunction(access)
	default:
		p.reportExpectDefinition()
	}
}

func (p *Parser) reportExpectDefinition() {
	tok, lex := p.cursor.Peek(), p.cursor.Lexeme()
	p.describeUnexpected(report.ExpectFuncStructEnum, tok, lex)
	panic(parseError{})
}

// parseStruct parses `struct Name`, already past the `struct` keyword.
// Only the name is parsed: a `{ ... }` member list after it is not
// accepted by this grammar.
func (p *Parser) parseStruct(access ast.AccessSpecifier) {
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	name := p.expectName(report.ExpectNameForStruct)

	p.tree.Finish(at, ast.Node{Kind: ast.StructDefinition, Access: access, Name: name}, 0)
}

// parseEnum parses `enum Name`, already past the `enum` keyword. As with
// parseStruct, only the name is parsed; a `{ ... }` body is not accepted.
func (p *Parser) parseEnum(access ast.AccessSpecifier) {
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	name := p.expectName(report.ExpectNameForEnum)

	p.tree.Finish(at, ast.Node{Kind: ast.EnumDefinition, Access: access, Name: name}, 0)
}

// parseFunction parses `name ( parameters ) ( -> outputs )? { statements }`.
func (p *Parser) parseFunction(access ast.AccessSpecifier) {
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	_, nameLex := p.cursor.AdvanceLexeme() // the Name token dispatched us here
	name := string(nameLex)

	p.expect(token.LParen, report.ExpectParenAfterFuncName)
	numParams := p.parseFunctionDefinitionParameters()
	numOutputs := p.parseFunctionDefinitionOutputs()

	if p.cursor.PeekKind() != token.LBrace {
		tok, lex := p.cursor.Peek(), p.cursor.Lexeme()
		p.describeUnexpected(report.ExpectBraceBeforeFuncBody, tok, lex)
		panic(parseError{})
	}
	bodyCount := p.parseBlock()

	p.tree.Finish(at, ast.Node{
		Kind: ast.FunctionDefinition, Access: access, Name: name,
		NumParameters: numParams, NumOutputs: numOutputs,
	}, numParams+numOutputs+bodyCount)
}

// parseFunctionDefinitionParameters parses a possibly-empty
// comma-separated parameter list already past the opening `(`, consuming
// the closing `)`, and returns how many it parsed.
func (p *Parser) parseFunctionDefinitionParameters() int {
	count := 0
	if p.cursor.Match(token.RParen) {
		return count
	}
	for {
		p.parseFunctionDefinitionParameter()
		count++
		if !p.cursor.Match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, report.ExpectParenAfterParams)
	return count
}

// parseFunctionDefinitionParameter parses `(in|var)? type Name ( = expr )?`.
func (p *Parser) parseFunctionDefinitionParameter() {
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	spec := ast.ParameterNone
	switch p.cursor.PeekKind() {
	case token.In:
		p.cursor.Advance()
		spec = ast.ParameterIn
	case token.Var:
		p.cursor.Advance()
		spec = ast.ParameterVar
	}

	p.parseType()

	name := p.expectName(report.ExpectParamName)
	if name == "" {
		panic(parseError{})
	}

	hasDefault := false
	if p.cursor.Match(token.Eq) {
		p.parseSubexpression(Assignment)
		hasDefault = true
	}

	numChildren := 1
	if hasDefault {
		numChildren = 2
	}
	p.tree.Finish(at, ast.Node{
		Kind: ast.FunctionParameter, ParamSpecifier: spec, Name: name,
		HasDefaultArgument: hasDefault,
	}, numChildren)
}

// parseFunctionDefinitionOutputs parses an optional `-> type Name?, ...`
// output list and returns how many outputs it parsed (0 if there is no
// `->`).
func (p *Parser) parseFunctionDefinitionOutputs() int {
	count := 0
	if !p.cursor.Match(token.ThinArrow) {
		return count
	}
	for {
		p.parseFunctionDefinitionOutput()
		count++
		if !p.cursor.Match(token.Comma) {
			break
		}
	}
	return count
}

// parseFunctionDefinitionOutput parses `type Name?`; an absent trailing
// name means an anonymous output.
func (p *Parser) parseFunctionDefinitionOutput() {
	at := p.tree.Next()
	p.tree.Push(ast.Node{})

	p.parseType()

	name := ""
	if p.cursor.PeekKind() == token.Name {
		_, lex := p.cursor.AdvanceLexeme()
		name = string(lex)
	}

	p.tree.Finish(at, ast.Node{Kind: ast.FunctionOutput, Name: name}, 1)
}
