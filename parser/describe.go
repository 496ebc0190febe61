package parser

import (
	"fmt"

	"github.com/cero-lang/cero/token"
)

// describe renders a token for use as the "found X" argument of an
// unexpected-token diagnostic.
func describe(kind token.Kind, lexeme []byte) string {
	switch kind {
	case token.Name:
		return fmt.Sprintf("name `%s`", lexeme)
	case token.DecIntLiteral, token.HexIntLiteral, token.BinIntLiteral, token.OctIntLiteral:
		return fmt.Sprintf("integer literal `%s`", lexeme)
	case token.FloatLiteral:
		return fmt.Sprintf("floating-point literal `%s`", lexeme)
	case token.CharLiteral:
		return fmt.Sprintf("character literal %s", lexeme)
	case token.StringLiteral:
		return fmt.Sprintf("string literal %s", lexeme)
	case token.EndOfFile:
		return "end of file"
	default:
		return fmt.Sprintf("`%s`", lexeme)
	}
}
