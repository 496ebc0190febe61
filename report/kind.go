// Package report defines the Cero front end's diagnostic contract: a closed
// set of message kinds, each with a fixed format string and default
// severity, and a Reporter that turns (kind, location, args) into
// diagnostics while tracking whether the run has failed.
package report

import "fmt"

// Severity is the importance of a diagnostic.
type Severity uint8

const (
	// Note is reserved for future use; no Kind currently defaults to it.
	Note Severity = iota
	// Warning indicates something that should probably be fixed, but does
	// not by itself fail the build unless warnings-as-errors is set.
	Warning
	// Error indicates the build has failed.
	Error
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Kind is a closed enumeration of every diagnostic the lexer and parser can
// produce. Callers never build message text by hand; they pass a Kind and
// its arguments to a Reporter, which looks the format and severity up in
// the catalog below.
type Kind uint8

const (
	_ Kind = iota // Reserve the zero value as "no kind".

	FileNotFound
	CouldNotOpenFile
	SourceInputTooLarge
	UnexpectedCharacter
	MissingClosingQuote
	UnterminatedBlockComment
	ExpectFuncStructEnum
	ExpectParenAfterFuncName
	ExpectType
	ExpectParamName
	ExpectParenAfterParams
	ExpectParenAfterOutputs
	ExpectBraceBeforeFuncBody
	ExpectNameAfterLet
	ExpectNameAfterDeclType
	ExpectExpr
	ExpectSemicolon
	ExpectNameAfterDot
	ExpectColonInIfExpr
	ExpectColonOrBlock
	UnnecessaryColonBeforeBlock
	UnnecessarySemicolon
	ExpectElse
	ExpectClosingParen
	ExpectBracketAfterIndex
	ExpectBracketAfterArrayBound
	ExpectBraceAfterPermission
	ExpectArrowAfterFuncTypeParams
	FuncTypeDefaultArgument
	AmbiguousOperatorMixing
	ExpectNameForStruct
	ExpectNameForEnum
	ExpectClosingBrace
	ForLoopUnsupported

	kindCount
)

// catalogEntry is one row of the message catalog: the compile-time format
// string and the severity a diagnostic of this Kind defaults to.
type catalogEntry struct {
	severity Severity
	format   string
}

// catalog is the closed table mapping every Kind to its severity and
// format. Placeholders are `{}` for a positional argument formatted with
// its default verb, and `{:x}` for an integer formatted in lowercase hex.
//
// Diagnostics are data, never hand-built strings: this table, and
// Reporter.Report, are the only place a message's text is assembled.
var catalog = [kindCount]catalogEntry{
	FileNotFound:                   {Error, "file not found"},
	CouldNotOpenFile:               {Error, "could not open file (system error {})"},
	SourceInputTooLarge:            {Error, "source input is too large, limit is {} bytes"},
	UnexpectedCharacter:            {Error, "unexpected character `0x{:x}`"},
	MissingClosingQuote:            {Error, "missing closing quote"},
	UnterminatedBlockComment:       {Error, "block comment must be closed with `*/`"},
	ExpectFuncStructEnum:           {Error, "expected function, struct or enum, but found {}"},
	ExpectParenAfterFuncName:       {Error, "expected `(` after function name, but found {}"},
	ExpectType:                     {Error, "expected a type, but found {}"},
	ExpectParamName:                {Error, "expected name for parameter, but found {}"},
	ExpectParenAfterParams:         {Error, "expected `)` after parameters, but found {}"},
	ExpectParenAfterOutputs:        {Error, "expected `)` after function outputs, but found {}"},
	ExpectBraceBeforeFuncBody:      {Error, "expected `{{` before function body, but found {}"},
	ExpectNameAfterLet:             {Error, "expected a name after `let` specifier, but found {}"},
	ExpectNameAfterDeclType:        {Error, "expected a name after type in declaration, but found {}"},
	ExpectExpr:                     {Error, "expected expression, but found {}"},
	ExpectSemicolon:                {Error, "expected a `;`, but found {}"},
	ExpectNameAfterDot:             {Error, "expected a member name after `.`, but found {}"},
	ExpectColonInIfExpr:            {Error, "expected `:` after `if` condition, but found {}"},
	ExpectColonOrBlock:             {Error, "expected `:` or `{{` before control flow statement, but found {}"},
	UnnecessaryColonBeforeBlock:    {Warning, "`:` is unnecessary before a block"},
	UnnecessarySemicolon:           {Warning, "unnecessary semicolon"},
	ExpectElse:                     {Error, "expected `else` after `if` expression, but found {}"},
	ExpectClosingParen:             {Error, "expected closing `)`, but found {}"},
	ExpectBracketAfterIndex:        {Error, "expected `]` after index expression, but found {}"},
	ExpectBracketAfterArrayBound:   {Error, "expected `]` after array bound, but found {}"},
	ExpectBraceAfterPermission:     {Error, "expected `}}` after permission arguments, but found {}"},
	ExpectArrowAfterFuncTypeParams: {Error, "expected `->` after parameters for function type, but found {}"},
	FuncTypeDefaultArgument:        {Error, "parameter in function type cannot have default argument"},
	AmbiguousOperatorMixing:        {Error, "mixing operator `{}` with operator `{}` is ambiguous"},
	ExpectNameForStruct:            {Error, "expected name for struct, but found {}"},
	ExpectNameForEnum:              {Error, "expected name for enum, but found {}"},
	ExpectClosingBrace:             {Error, "expected closing `}}`, but found {}"},
	ForLoopUnsupported:             {Error, "for loops are not yet supported"},
}

// DefaultSeverity returns the severity a diagnostic of this Kind is given
// before the warnings-as-errors policy is applied.
func (k Kind) DefaultSeverity() Severity {
	k.mustBeValid()
	return catalog[k].severity
}

// Format returns this Kind's compile-time format string.
func (k Kind) Format() string {
	k.mustBeValid()
	return catalog[k].format
}

func (k Kind) mustBeValid() {
	if k == 0 || k >= kindCount {
		panic(fmt.Sprintf("report: invalid message kind %d", uint8(k)))
	}
}
