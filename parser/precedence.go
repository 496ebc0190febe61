package parser

// Precedence orders the binding strength of Cero's binary and postfix
// operators, loosest to tightest. The Pratt loop in parseExpression
// continues consuming tail parses only while the next operator's
// precedence outranks the precedence it was called with.
type Precedence uint8

const (
	Statement Precedence = iota
	Assignment
	Logical
	Comparison
	AdditiveOrBitwise
	Multiplicative
	Prefix
	Postfix
)
