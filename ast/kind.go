// Package ast defines Cero's abstract syntax tree: a flat, append-only
// vector of nodes in pre-order, where a node's children occupy the
// contiguous range of indices that immediately follows it.
package ast

import "fmt"

// Kind identifies what an AST Node represents. The set is closed.
type Kind uint8

const (
	invalidKind Kind = iota

	Root

	StructDefinition
	EnumDefinition
	FunctionDefinition
	FunctionParameter
	FunctionOutput

	BlockStatement
	BindingStatement

	IfExpr
	WhileLoop
	ForLoop
	NameExpr
	GenericNameExpr
	MemberExpr
	GenericMemberExpr
	GroupExpr
	CallExpr
	IndexExpr
	ArrayLiteralExpr
	UnaryExpr
	BinaryExpr
	ReturnExpr
	ThrowExpr
	BreakExpr
	ContinueExpr
	NumericLiteralExpr
	StringLiteralExpr

	PermissionExpr
	PointerTypeExpr
	ArrayTypeExpr
	FunctionTypeExpr

	kindCount
)

var kindNames = [kindCount]string{
	invalidKind:        "Invalid",
	Root:               "Root",
	StructDefinition:   "StructDefinition",
	EnumDefinition:     "EnumDefinition",
	FunctionDefinition: "FunctionDefinition",
	FunctionParameter:  "FunctionParameter",
	FunctionOutput:     "FunctionOutput",
	BlockStatement:     "BlockStatement",
	BindingStatement:   "BindingStatement",
	IfExpr:             "IfExpr",
	WhileLoop:          "WhileLoop",
	ForLoop:            "ForLoop",
	NameExpr:           "NameExpr",
	GenericNameExpr:    "GenericNameExpr",
	MemberExpr:         "MemberExpr",
	GenericMemberExpr:  "GenericMemberExpr",
	GroupExpr:          "GroupExpr",
	CallExpr:           "CallExpr",
	IndexExpr:          "IndexExpr",
	ArrayLiteralExpr:   "ArrayLiteralExpr",
	UnaryExpr:          "UnaryExpr",
	BinaryExpr:         "BinaryExpr",
	ReturnExpr:         "ReturnExpr",
	ThrowExpr:          "ThrowExpr",
	BreakExpr:          "BreakExpr",
	ContinueExpr:       "ContinueExpr",
	NumericLiteralExpr: "NumericLiteralExpr",
	StringLiteralExpr:  "StringLiteralExpr",
	PermissionExpr:     "PermissionExpr",
	PointerTypeExpr:    "PointerTypeExpr",
	ArrayTypeExpr:      "ArrayTypeExpr",
	FunctionTypeExpr:   "FunctionTypeExpr",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTypeExpr reports whether a node of this kind can be reinterpreted as a
// type expression when a trailing Name turns an expression statement into a
// binding declaration.
func (k Kind) IsTypeExpr() bool {
	switch k {
	case NameExpr, GenericNameExpr, MemberExpr, ArrayTypeExpr, PointerTypeExpr, FunctionTypeExpr:
		return true
	default:
		return false
	}
}

// AccessSpecifier is the optional `private`/`public` prefix of a
// definition.
type AccessSpecifier uint8

const (
	AccessNone AccessSpecifier = iota
	AccessPrivate
	AccessPublic
)

func (a AccessSpecifier) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessPublic:
		return "public"
	default:
		return "none"
	}
}

// ParameterSpecifier is a function parameter's optional `in`/`var` prefix.
type ParameterSpecifier uint8

const (
	ParameterNone ParameterSpecifier = iota
	ParameterIn
	ParameterVar
)

// BindingSpecifier distinguishes let/var/const/static bindings.
type BindingSpecifier uint8

const (
	BindingLet BindingSpecifier = iota
	BindingVar
	BindingConst
	BindingStatic
	BindingStaticVar
)

// PermissionSpecifier is the specifier carried by a PermissionExpr
// (spec's "variability" concept: `var`, `var{...}`, `var{...,}`).
type PermissionSpecifier uint8

const (
	PermissionIn PermissionSpecifier = iota
	PermissionVar
	PermissionVarBounded
	PermissionVarUnbounded
)

// NumericLiteralKind records which lexical form produced a
// NumericLiteralExpr; the literal's text is recovered from the source via
// the node's offset, not stored on the node.
type NumericLiteralKind uint8

const (
	Decimal NumericLiteralKind = iota
	Hexadecimal
	Binary
	Octal
	Float
	Character
)

// UnaryOperator enumerates Cero's prefix and postfix unary operators.
type UnaryOperator uint8

const (
	PreIncrement UnaryOperator = iota
	PreDecrement
	PostIncrement
	PostDecrement
	AddressOf
	Dereference
	Negate
	LogicalNot
	BitwiseNot
)

var unaryOperatorNames = map[UnaryOperator]string{
	PreIncrement: "++", PreDecrement: "--",
	PostIncrement: "++", PostDecrement: "--",
	AddressOf: "&", Dereference: "^", Negate: "-",
	LogicalNot: "!", BitwiseNot: "~",
}

func (o UnaryOperator) String() string { return unaryOperatorNames[o] }

// BinaryOperator enumerates Cero's infix operators, arithmetic through
// compound assignment.
type BinaryOperator uint8

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Remainder
	Power
	LogicalAnd
	LogicalOr
	BitAnd
	BitOr
	Xor
	LeftShift
	RightShift
	Equal
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual
	Assign
	AddAssign
	SubtractAssign
	MultiplyAssign
	DivideAssign
	RemainderAssign
	PowerAssign
	AndAssign
	OrAssign
	XorAssign
	LeftShiftAssign
	RightShiftAssign
)

var binaryOperatorNames = map[BinaryOperator]string{
	Add: "+", Subtract: "-", Multiply: "*", Divide: "/", Remainder: "%", Power: "**",
	LogicalAnd: "&&", LogicalOr: "||",
	BitAnd: "&", BitOr: "|", Xor: "~", LeftShift: "<<", RightShift: ">>",
	Equal: "==", NotEqual: "!=", Less: "<", Greater: ">", LessEqual: "<=", GreaterEqual: ">=",
	Assign: "=", AddAssign: "+=", SubtractAssign: "-=", MultiplyAssign: "*=", DivideAssign: "/=",
	RemainderAssign: "%=", PowerAssign: "**=", AndAssign: "&=", OrAssign: "|=", XorAssign: "~=",
	LeftShiftAssign: "<<=", RightShiftAssign: ">>=",
}

func (o BinaryOperator) String() string { return binaryOperatorNames[o] }

// IsComparison reports whether o is one of the six comparison operators.
func (o BinaryOperator) IsComparison() bool {
	switch o {
	case Equal, NotEqual, Less, Greater, LessEqual, GreaterEqual:
		return true
	default:
		return false
	}
}

// IsBitwise reports whether o is one of the bitwise operators that are
// ambiguous when mixed with arithmetic operators.
func (o BinaryOperator) IsBitwise() bool {
	switch o {
	case BitAnd, BitOr, Xor, LeftShift, RightShift:
		return true
	default:
		return false
	}
}

// IsArithmetic reports whether o is one of the arithmetic operators that
// are ambiguous when mixed with bitwise operators.
func (o BinaryOperator) IsArithmetic() bool {
	switch o {
	case Add, Subtract, Multiply, Divide, Remainder, Power:
		return true
	default:
		return false
	}
}
