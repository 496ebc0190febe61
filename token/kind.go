// Package token defines Cero's compact token representation: a (kind,
// source offset) pair, with a side-channel length for variable-length
// token kinds, plus a cursor for walking a token stream.
package token

import "fmt"

// Kind identifies what a Token represents. The set is closed: this is the
// complete list of tokens the Cero lexer ever produces.
type Kind uint8

const (
	Invalid Kind = iota // The zero Kind; never produced by the lexer.

	// Variable-length kinds. Each of these has a Length recorded alongside
	// it in a Stream; its lexeme is Text[Offset : Offset+Length].
	Name
	LineComment
	BlockComment
	DecIntLiteral
	HexIntLiteral
	BinIntLiteral
	OctIntLiteral
	FloatLiteral
	CharLiteral
	StringLiteral

	// Single-character punctuation.
	Dot
	Comma
	Colon
	Semicolon
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	LAngle
	RAngle
	Eq
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Tilde
	Caret
	Bang
	Quest
	At
	Dollar
	Hash

	// Two-character operators.
	ThinArrow    // ->
	ThickArrow   // =>
	ColonColon   // ::
	PlusPlus     // ++
	MinusMinus   // --
	StarStar     // **
	LAngleAngle  // <<
	AmpAmp       // &&
	PipePipe     // ||
	EqEq         // ==
	BangEq       // !=
	LAngleEq     // <=
	RAngleEq     // >=
	PlusEq       // +=
	MinusEq      // -=
	StarEq       // *=
	SlashEq      // /=
	PercentEq    // %=
	AmpEq        // &=
	PipeEq       // |=
	TildeEq      // ~=

	// Three-character operators.
	Ellipsis      // ...
	StarStarEq    // **=
	LAngleAngleEq // <<=
	RAngleAngleEq // >>=

	// Keywords.
	Break
	Catch
	Const
	Continue
	Do
	Else
	Enum
	For
	If
	In
	Let
	Private
	Public
	Return
	Static
	Struct
	Switch
	Throw
	Try
	Var
	While

	EndOfFile

	kindCount
)

// IsVariableLength reports whether a Token of this Kind carries a Length in
// its Stream, rather than having a fixed canonical lexeme.
func (k Kind) IsVariableLength() bool {
	return k >= Name && k <= StringLiteral
}

// IsComment reports whether this Kind is one the token cursor transparently
// skips.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// IsKeyword reports whether this Kind is one of Cero's reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Break && k <= While
}

// keywords maps every reserved word's spelling to its Kind. Built once at
// init time from fixedLexemes so the two tables can never drift apart.
var keywords map[string]Kind

// fixedLexemes gives the canonical spelling of every Kind that is not
// variable-length. Comments and literals are absent: their lexeme is always
// a slice of the source text, recovered via a Token's Length.
var fixedLexemes = [kindCount]string{
	Dot: ".", Comma: ",", Colon: ":", Semicolon: ";",
	LBrace: "{", RBrace: "}", LParen: "(", RParen: ")",
	LBracket: "[", RBracket: "]", LAngle: "<", RAngle: ">",
	Eq: "=", Plus: "+", Minus: "-", Star: "*", Slash: "/",
	Percent: "%", Amp: "&", Pipe: "|", Tilde: "~", Caret: "^",
	Bang: "!", Quest: "?", At: "@", Dollar: "$", Hash: "#",

	ThinArrow: "->", ThickArrow: "=>", ColonColon: "::",
	PlusPlus: "++", MinusMinus: "--", StarStar: "**",
	LAngleAngle: "<<", AmpAmp: "&&", PipePipe: "||",
	EqEq: "==", BangEq: "!=", LAngleEq: "<=", RAngleEq: ">=",
	PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=",
	PercentEq: "%=", AmpEq: "&=", PipeEq: "|=", TildeEq: "~=",

	Ellipsis: "...", StarStarEq: "**=", LAngleAngleEq: "<<=", RAngleAngleEq: ">>=",

	Break: "break", Catch: "catch", Const: "const", Continue: "continue",
	Do: "do", Else: "else", Enum: "enum", For: "for", If: "if", In: "in",
	Let: "let", Private: "private", Public: "public", Return: "return",
	Static: "static", Struct: "struct", Switch: "switch", Throw: "throw",
	Try: "try", Var: "var", While: "while",

	EndOfFile: "",
}

func init() {
	keywords = make(map[string]Kind, int(While-Break)+1)
	for k := Break; k <= While; k++ {
		keywords[fixedLexemes[k]] = k
	}
}

// LookupKeyword returns the Kind for word if it names a reserved word, and
// Name (plus false) otherwise.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	if !ok {
		return Name, false
	}
	return k, true
}

// FixedLexeme returns the canonical spelling of a fixed-length Kind. It
// panics if called on a variable-length Kind.
func (k Kind) FixedLexeme() string {
	if k.IsVariableLength() {
		panic(fmt.Sprintf("token: Kind %v has no fixed lexeme", k))
	}
	return fixedLexemes[k]
}

// String implements fmt.Stringer. For fixed-length kinds it returns the
// canonical lexeme; for everything else, a symbolic name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k > Invalid && k < kindCount && !k.IsVariableLength() {
		return k.FixedLexeme()
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var kindNames = map[Kind]string{
	Invalid: "Invalid", Name: "Name", LineComment: "LineComment",
	BlockComment: "BlockComment", DecIntLiteral: "DecIntLiteral",
	HexIntLiteral: "HexIntLiteral", BinIntLiteral: "BinIntLiteral",
	OctIntLiteral: "OctIntLiteral", FloatLiteral: "FloatLiteral",
	CharLiteral: "CharLiteral", StringLiteral: "StringLiteral",
	EndOfFile: "EndOfFile",
}
