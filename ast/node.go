package ast

import "fmt"

// Node is a single AST node: its kind, source offset, and a fixed set of
// kind-specific scalar fields. Go has no sum types, so Node is a "fat
// struct" carrying every field any kind might need; which fields are
// meaningful is determined entirely by Kind. Accessors below panic if
// called against the wrong kind, mirroring the assertion-guarded
// as<T>() access the tree this is modeled on uses for its tagged union.
type Node struct {
	Kind   Kind
	Offset int

	// NumChildren is the count of this node's immediate children only;
	// their descendants are not included. The index range they and
	// their descendants together span must be found via
	// Tree.ChildrenOf/DescendantCount, since a child's own subtree can
	// be arbitrarily deep.
	NumChildren int

	Access AccessSpecifier // StructDefinition, EnumDefinition, FunctionDefinition
	Name   string          // definitions, FunctionParameter/Output, BindingStatement, Name/GenericNameExpr
	Member string          // MemberExpr, GenericMemberExpr

	ParamSpecifier     ParameterSpecifier // FunctionParameter
	HasDefaultArgument bool               // FunctionParameter: trailing child is the default argument

	NumParameters int // FunctionDefinition, FunctionTypeExpr: first NumParameters children
	NumOutputs    int // FunctionDefinition, FunctionTypeExpr: next NumOutputs children

	BindingSpec    BindingSpecifier // BindingStatement
	HasType        bool             // BindingStatement: a type child precedes the name
	HasInitializer bool             // BindingStatement: trailing child is the initializer

	HasElse       bool // IfExpr: third child is the else branch
	HasArrayBound bool // ArrayTypeExpr: first child is the bound expression
	HasPermission bool // PointerTypeExpr: first child is a PermissionExpr
	HasValue      bool // BreakExpr, ContinueExpr, ThrowExpr: child is the optional value expression

	NumArguments int // CallExpr, IndexExpr, GroupExpr, GenericNameExpr, GenericMemberExpr, PermissionExpr, ReturnExpr

	UnaryOp  UnaryOperator  // UnaryExpr
	BinaryOp BinaryOperator // BinaryExpr

	NumericKind NumericLiteralKind // NumericLiteralExpr
	StringValue string             // StringLiteralExpr: the literal's lexeme verbatim, quotes and escapes included

	PermissionSpec PermissionSpecifier // PermissionExpr
}

func (n Node) mustBe(k Kind) {
	if n.Kind != k {
		panic(fmt.Sprintf("ast: Node is %v, not %v", n.Kind, k))
	}
}

// Root describes the translation unit: NumChildren top-level definitions.

// AsStructDefinition panics unless Kind == StructDefinition.
func (n Node) AsStructDefinition() (access AccessSpecifier, name string) {
	n.mustBe(StructDefinition)
	return n.Access, n.Name
}

// AsEnumDefinition panics unless Kind == EnumDefinition.
func (n Node) AsEnumDefinition() (access AccessSpecifier, name string) {
	n.mustBe(EnumDefinition)
	return n.Access, n.Name
}

// AsFunctionDefinition panics unless Kind == FunctionDefinition. The
// node's children are, in order: NumParameters FunctionParameter nodes,
// NumOutputs FunctionOutput nodes, then the body's statements.
func (n Node) AsFunctionDefinition() (access AccessSpecifier, name string, numParams, numOutputs int) {
	n.mustBe(FunctionDefinition)
	return n.Access, n.Name, n.NumParameters, n.NumOutputs
}

// AsFunctionParameter panics unless Kind == FunctionParameter. Its
// children are the type expression, then the default argument if
// HasDefaultArgument.
func (n Node) AsFunctionParameter() (spec ParameterSpecifier, name string, hasDefault bool) {
	n.mustBe(FunctionParameter)
	return n.ParamSpecifier, n.Name, n.HasDefaultArgument
}

// AsFunctionOutput panics unless Kind == FunctionOutput. Its only child
// is the type expression; Name is empty for an anonymous output.
func (n Node) AsFunctionOutput() (name string) {
	n.mustBe(FunctionOutput)
	return n.Name
}

// AsBlockStatement panics unless Kind == BlockStatement. Its children are
// the block's statements.
func (n Node) AsBlockStatement() {
	n.mustBe(BlockStatement)
}

// AsWhileLoop panics unless Kind == WhileLoop. Children: the condition
// (or binding) expression, then the body's statements.
func (n Node) AsWhileLoop() {
	n.mustBe(WhileLoop)
}

// AsForLoop panics unless Kind == ForLoop. Reserved: the grammar slot
// exists but nothing currently constructs this node. Children, once
// implemented: the loop binding, the range expression, then the body's
// statements.
func (n Node) AsForLoop() {
	n.mustBe(ForLoop)
}

// AsBindingStatement panics unless Kind == BindingStatement. Children,
// in order: the type expression if HasType, then the initializer if
// HasInitializer.
func (n Node) AsBindingStatement() (spec BindingSpecifier, name string, hasType, hasInitializer bool) {
	n.mustBe(BindingStatement)
	return n.BindingSpec, n.Name, n.HasType, n.HasInitializer
}

// AsIfExpr panics unless Kind == IfExpr. Children: condition, then
// expression, and else expression if HasElse.
func (n Node) AsIfExpr() (hasElse bool) {
	n.mustBe(IfExpr)
	return n.HasElse
}

// AsNameExpr panics unless Kind == NameExpr.
func (n Node) AsNameExpr() (name string) {
	n.mustBe(NameExpr)
	return n.Name
}

// AsGenericNameExpr panics unless Kind == GenericNameExpr. Its children
// are the NumArguments generic arguments.
func (n Node) AsGenericNameExpr() (name string, numArguments int) {
	n.mustBe(GenericNameExpr)
	return n.Name, n.NumArguments
}

// AsMemberExpr panics unless Kind == MemberExpr. Its only child is the
// target expression.
func (n Node) AsMemberExpr() (member string) {
	n.mustBe(MemberExpr)
	return n.Member
}

// AsGenericMemberExpr panics unless Kind == GenericMemberExpr. Children:
// the target expression, then NumArguments generic arguments.
func (n Node) AsGenericMemberExpr() (member string, numArguments int) {
	n.mustBe(GenericMemberExpr)
	return n.Member, n.NumArguments
}

// AsCallExpr panics unless Kind == CallExpr. Children: the callee, then
// NumArguments call arguments.
func (n Node) AsCallExpr() (numArguments int) {
	n.mustBe(CallExpr)
	return n.NumArguments
}

// AsIndexExpr panics unless Kind == IndexExpr. Children: the target,
// then NumArguments index arguments.
func (n Node) AsIndexExpr() (numArguments int) {
	n.mustBe(IndexExpr)
	return n.NumArguments
}

// AsUnaryExpr panics unless Kind == UnaryExpr. Its only child is the
// operand.
func (n Node) AsUnaryExpr() (op UnaryOperator) {
	n.mustBe(UnaryExpr)
	return n.UnaryOp
}

// AsBinaryExpr panics unless Kind == BinaryExpr. Children: left operand,
// right operand.
func (n Node) AsBinaryExpr() (op BinaryOperator) {
	n.mustBe(BinaryExpr)
	return n.BinaryOp
}

// AsReturnExpr panics unless Kind == ReturnExpr. Its children are the
// NumArguments returned expressions (zero or more, comma-separated).
func (n Node) AsReturnExpr() (numExpressions int) {
	n.mustBe(ReturnExpr)
	return n.NumArguments
}

// AsThrowExpr panics unless Kind == ThrowExpr. Its optional child is the
// thrown value expression.
func (n Node) AsThrowExpr() (hasValue bool) {
	n.mustBe(ThrowExpr)
	return n.HasValue
}

// AsBreakExpr panics unless Kind == BreakExpr. Its optional child is
// the break's value expression.
func (n Node) AsBreakExpr() (hasValue bool) {
	n.mustBe(BreakExpr)
	return n.HasValue
}

// AsContinueExpr panics unless Kind == ContinueExpr. Its optional child
// is the continue's value expression.
func (n Node) AsContinueExpr() (hasValue bool) {
	n.mustBe(ContinueExpr)
	return n.HasValue
}

// AsNumericLiteralExpr panics unless Kind == NumericLiteralExpr. The
// literal's text is recovered from source via Offset, not stored here.
func (n Node) AsNumericLiteralExpr() (kind NumericLiteralKind) {
	n.mustBe(NumericLiteralExpr)
	return n.NumericKind
}

// AsStringLiteralExpr panics unless Kind == StringLiteralExpr.
func (n Node) AsStringLiteralExpr() (value string) {
	n.mustBe(StringLiteralExpr)
	return n.StringValue
}

// AsPermissionExpr panics unless Kind == PermissionExpr. Its children
// are the NumArguments bound expressions.
func (n Node) AsPermissionExpr() (spec PermissionSpecifier, numArguments int) {
	n.mustBe(PermissionExpr)
	return n.PermissionSpec, n.NumArguments
}

// AsArrayTypeExpr panics unless Kind == ArrayTypeExpr. Children: the
// bound expression if HasArrayBound, then the element type.
func (n Node) AsArrayTypeExpr() (hasBound bool) {
	n.mustBe(ArrayTypeExpr)
	return n.HasArrayBound
}

// AsPointerTypeExpr panics unless Kind == PointerTypeExpr. Children: a
// PermissionExpr if HasPermission, then the pointee type.
func (n Node) AsPointerTypeExpr() (hasPermission bool) {
	n.mustBe(PointerTypeExpr)
	return n.HasPermission
}

// AsFunctionTypeExpr panics unless Kind == FunctionTypeExpr. Children,
// in order: NumParameters FunctionParameter nodes, then NumOutputs
// FunctionOutput nodes, each wrapping its type expression.
func (n Node) AsFunctionTypeExpr() (numParams, numOutputs int) {
	n.mustBe(FunctionTypeExpr)
	return n.NumParameters, n.NumOutputs
}
