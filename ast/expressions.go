// Copyright 2026 The Pony Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"strings"
)

// OperatorType represents an operator type in a unary and binary expression.
type OperatorType int

const (
	OperatorEqual          OperatorType = iota // ==
	OperatorNotEqual                           // !=
	OperatorLess                               // <
	OperatorLessEqual                          // <=
	OperatorGreater                            // >
	OperatorGreaterEqual                       // >=
	OperatorNot                                // !
	OperatorBitAnd                             // &
	OperatorBitOr                              // |
	OperatorAnd                                // &&
	OperatorOr                                 // ||
	OperatorAddition                           // +
	OperatorSubtraction                        // -
	OperatorMultiplication                     // *
	OperatorDivision                           // /
	OperatorModulo                             // %
	OperatorXor                                // ^
	OperatorLeftShift                          // <<
	OperatorRightShift                         // >>
	OperatorDereference                        // *
	OperatorReference                          // &
	OperatorMutReference                       // &mut
)

// String returns the string representation of the operator type.
func (op OperatorType) String() string {
	return []string{"==", "!=", "<", "<=", ">", ">=", "!", "&", "|", "&&", "||",
		"+", "-", "*", "/", "%", "^", "<<", ">>", "*", "&", "&mut "}[op]
}

// AssignmentType represents a type of assignment.
type AssignmentType int

const (
	AssignmentSimple         AssignmentType = iota // =
	AssignmentAddition                             // +=
	AssignmentSubtraction                          // -=
	AssignmentMultiplication                       // *=
	AssignmentDivision                             // /=
	AssignmentModulo                               // %=
	AssignmentAnd                                  // &=
	AssignmentOr                                   // |=
	AssignmentXor                                  // ^=
	AssignmentLeftShift                            // <<=
	AssignmentRightShift                           // >>=
)

// String returns the string representation of the assignment type.
func (typ AssignmentType) String() string {
	return []string{"=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>="}[typ]
}

// LiteralType represents the type of a literal.
type LiteralType int

const (
	StringLiteral LiteralType = iota
	CharLiteral
	IntLiteral
	FloatLiteral
	BoolLiteral
)

// Expression node represents an expression.
type Expression interface {
	Node
	String() string
}

// Operator represents an operator expression. It is implemented by the
// UnaryOperator and BinaryOperator nodes.
type Operator interface {
	Expression
	Operator() OperatorType
	Precedence() int
}

// Identifier node represents an identifier expression.
type Identifier struct {
	*Position        // position in the source.
	Name      string // name.
}

// NewIdentifier returns a new Identifier node.
func NewIdentifier(pos *Position, name string) *Identifier {
	return &Identifier{pos, name}
}

// String returns the string representation of n.
func (n *Identifier) String() string {
	return n.Name
}

// PathSegment represents a segment of a path, with its optional generic
// arguments as in collect::<Vec<_>>.
type PathSegment struct {
	Ident    *Identifier // identifier.
	Generics string      // generic arguments including the angle brackets, if any.
}

// Path node represents a path expression as in Direction::RightToLeft.
type Path struct {
	*Position               // position in the source.
	Global    bool          // reports whether the path starts with '::'.
	Segments  []PathSegment // segments.
}

// NewPath returns a new Path node.
func NewPath(pos *Position, global bool, segments []PathSegment) *Path {
	return &Path{pos, global, segments}
}

// String returns the string representation of n.
func (n *Path) String() string {
	var b strings.Builder
	if n.Global {
		b.WriteString("::")
	}
	for i, s := range n.Segments {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(s.Ident.Name)
		if s.Generics != "" {
			b.WriteString("::")
			b.WriteString(s.Generics)
		}
	}
	return b.String()
}

// BasicLiteral represents string, char, integer, floating-point and boolean
// literals.
type BasicLiteral struct {
	*Position             // position in the source.
	Type      LiteralType // type.
	Value     string      // value, as it appears in the source.
}

// NewBasicLiteral returns a new BasicLiteral node.
func NewBasicLiteral(pos *Position, typ LiteralType, value string) *BasicLiteral {
	return &BasicLiteral{pos, typ, value}
}

// String returns the string representation of n.
func (n *BasicLiteral) String() string {
	return n.Value
}

// Paren node represents a parenthesized expression.
type Paren struct {
	*Position            // position in the source.
	Expr      Expression // expression.
}

// NewParen returns a new Paren node.
func NewParen(pos *Position, expr Expression) *Paren {
	return &Paren{pos, expr}
}

// String returns the string representation of n.
func (n *Paren) String() string {
	return "(" + n.Expr.String() + ")"
}

// UnaryOperator node represents a unary operator expression.
type UnaryOperator struct {
	*Position              // position in the source.
	Op        OperatorType // operator.
	Expr      Expression   // expression.
}

// NewUnaryOperator returns a new UnaryOperator node.
func NewUnaryOperator(pos *Position, op OperatorType, expr Expression) *UnaryOperator {
	return &UnaryOperator{pos, op, expr}
}

// String returns the string representation of n.
func (n *UnaryOperator) String() string {
	if _, ok := n.Expr.(*UnaryOperator); ok {
		return n.Op.String() + n.Expr.String()
	}
	return n.Op.String() + operand(n.Expr)
}

// Operator returns the operator type of the expression.
func (n *UnaryOperator) Operator() OperatorType {
	return n.Op
}

// Precedence returns a number that represents the precedence of the
// expression.
func (n *UnaryOperator) Precedence() int {
	return 11
}

// BinaryOperator node represents a binary operator expression.
type BinaryOperator struct {
	*Position              // position in the source.
	Op        OperatorType // operator.
	Expr1     Expression   // first expression.
	Expr2     Expression   // second expression.
}

// NewBinaryOperator returns a new binary operator.
func NewBinaryOperator(pos *Position, op OperatorType, expr1, expr2 Expression) *BinaryOperator {
	return &BinaryOperator{pos, op, expr1, expr2}
}

// String returns the string representation of n.
func (n *BinaryOperator) String() string {
	var s string
	if e, ok := n.Expr1.(Operator); ok && e.Precedence() < n.Precedence() {
		s += "(" + n.Expr1.String() + ")"
	} else {
		s += n.Expr1.String()
	}
	s += " " + n.Op.String() + " "
	if e, ok := n.Expr2.(Operator); ok && e.Precedence() <= n.Precedence() {
		s += "(" + n.Expr2.String() + ")"
	} else {
		s += n.Expr2.String()
	}
	return s
}

// Operator returns the operator type of the expression.
func (n *BinaryOperator) Operator() OperatorType {
	return n.Op
}

// Precedence returns a number that represents the precedence of the
// expression.
func (n *BinaryOperator) Precedence() int {
	switch n.Op {
	case OperatorMultiplication, OperatorDivision, OperatorModulo:
		return 10
	case OperatorAddition, OperatorSubtraction:
		return 9
	case OperatorLeftShift, OperatorRightShift:
		return 8
	case OperatorBitAnd:
		return 7
	case OperatorXor:
		return 6
	case OperatorBitOr:
		return 5
	case OperatorEqual, OperatorNotEqual, OperatorLess, OperatorLessEqual,
		OperatorGreater, OperatorGreaterEqual:
		return 4
	case OperatorAnd:
		return 3
	case OperatorOr:
		return 2
	}
	panic("invalid operator type")
}

// Range node represents a range expression as in a..b, a..=b, a.. and ..b.
type Range struct {
	*Position            // position in the source.
	Low       Expression // low bound, nil if there is no low bound.
	High      Expression // high bound, nil if there is no high bound.
	Inclusive bool       // reports whether the range is in the form ..=.
}

// NewRange returns a new Range node.
func NewRange(pos *Position, low, high Expression, inclusive bool) *Range {
	return &Range{pos, low, high, inclusive}
}

// String returns the string representation of n.
func (n *Range) String() string {
	var s string
	if n.Low != nil {
		s = n.Low.String()
	}
	s += ".."
	if n.Inclusive {
		s += "="
	}
	if n.High != nil {
		s += n.High.String()
	}
	return s
}

// Assignment node represents an assignment expression as in count += 1.
type Assignment struct {
	*Position                // position in the source.
	Lhs       Expression     // left-hand side.
	Type      AssignmentType // type.
	Rhs       Expression     // right-hand side.
}

// NewAssignment returns a new Assignment node.
func NewAssignment(pos *Position, lhs Expression, typ AssignmentType, rhs Expression) *Assignment {
	return &Assignment{pos, lhs, typ, rhs}
}

// String returns the string representation of n.
func (n *Assignment) String() string {
	return n.Lhs.String() + " " + n.Type.String() + " " + n.Rhs.String()
}

// Call node represents a function call expression.
type Call struct {
	*Position              // position in the source.
	Func      Expression   // function.
	Args      []Expression // arguments.
}

// NewCall returns a new Call node.
func NewCall(pos *Position, fun Expression, args []Expression) *Call {
	return &Call{pos, fun, args}
}

// String returns the string representation of n.
func (n *Call) String() string {
	s := n.Func.String()
	if _, ok := n.Func.(Operator); ok {
		s = "(" + s + ")"
	}
	return s + "(" + joinExpressions(n.Args) + ")"
}

// MethodCall node represents a method call expression as in a.b(c).
type MethodCall struct {
	*Position              // position in the source.
	Receiver  Expression   // receiver.
	Method    *Identifier  // method name.
	Generics  string       // generic arguments, as in ::<T>, if any.
	Args      []Expression // arguments.
}

// NewMethodCall returns a new MethodCall node.
func NewMethodCall(pos *Position, receiver Expression, method *Identifier, generics string, args []Expression) *MethodCall {
	return &MethodCall{pos, receiver, method, generics, args}
}

// String returns the string representation of n.
func (n *MethodCall) String() string {
	s := operand(n.Receiver) + "." + n.Method.Name
	if n.Generics != "" {
		s += "::" + n.Generics
	}
	return s + "(" + joinExpressions(n.Args) + ")"
}

// Selector node represents a field selector expression as in a.b or, for
// tuple fields, a.0.
type Selector struct {
	*Position            // position in the source.
	Expr      Expression // expression.
	Field     string     // field name or index.
}

// NewSelector returns a new Selector node.
func NewSelector(pos *Position, expr Expression, field string) *Selector {
	return &Selector{pos, expr, field}
}

// String returns the string representation of n.
func (n *Selector) String() string {
	return operand(n.Expr) + "." + n.Field
}

// Index node represents an index expression.
type Index struct {
	*Position            // position in the source.
	Expr      Expression // expression.
	Index     Expression // index.
}

// NewIndex returns a new Index node.
func NewIndex(pos *Position, expr Expression, index Expression) *Index {
	return &Index{pos, expr, index}
}

// String returns the string representation of n.
func (n *Index) String() string {
	return operand(n.Expr) + "[" + n.Index.String() + "]"
}

// Try node represents an expression followed by the ? operator.
type Try struct {
	*Position            // position in the source.
	Expr      Expression // expression.
}

// NewTry returns a new Try node.
func NewTry(pos *Position, expr Expression) *Try {
	return &Try{pos, expr}
}

// String returns the string representation of n.
func (n *Try) String() string {
	return operand(n.Expr) + "?"
}

// Tuple node represents a tuple expression. The unit tuple has no elements.
type Tuple struct {
	*Position              // position in the source.
	Elements  []Expression // elements.
}

// NewTuple returns a new Tuple node.
func NewTuple(pos *Position, elements []Expression) *Tuple {
	return &Tuple{pos, elements}
}

// String returns the string representation of n.
func (n *Tuple) String() string {
	if len(n.Elements) == 1 {
		return "(" + n.Elements[0].String() + ",)"
	}
	return "(" + joinExpressions(n.Elements) + ")"
}

// Array node represents an array expression as in [a, b] or, when Len is
// not nil, [value; len].
type Array struct {
	*Position              // position in the source.
	Elements  []Expression // elements.
	Len       Expression   // length of a repeat array, nil otherwise.
}

// NewArray returns a new Array node.
func NewArray(pos *Position, elements []Expression, len Expression) *Array {
	return &Array{pos, elements, len}
}

// String returns the string representation of n.
func (n *Array) String() string {
	if n.Len != nil {
		return "[" + n.Elements[0].String() + "; " + n.Len.String() + "]"
	}
	return "[" + joinExpressions(n.Elements) + "]"
}

// Closure node represents a closure expression as in |a, b| a + b.
type Closure struct {
	*Position            // position in the source.
	Move      bool       // reports whether the closure is a move closure.
	Params    []Pattern  // parameters.
	Body      Expression // body.
}

// NewClosure returns a new Closure node.
func NewClosure(pos *Position, move bool, params []Pattern, body Expression) *Closure {
	return &Closure{pos, move, params, body}
}

// String returns the string representation of n.
func (n *Closure) String() string {
	var b strings.Builder
	if n.Move {
		b.WriteString("move ")
	}
	b.WriteByte('|')
	for i, p := range n.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("| ")
	b.WriteString(n.Body.String())
	return b.String()
}

// Let node represents a let expression, used as condition, as in
// let Some(x) = value.
type Let struct {
	*Position            // position in the source.
	Pattern   Pattern    // pattern.
	Expr      Expression // scrutinee.
}

// NewLet returns a new Let node.
func NewLet(pos *Position, pattern Pattern, expr Expression) *Let {
	return &Let{pos, pattern, expr}
}

// String returns the string representation of n.
func (n *Let) String() string {
	return "let " + n.Pattern.String() + " = " + n.Expr.String()
}

// MacroCall node represents a macro invocation as in format!("{}", a). The
// arguments are not parsed.
type MacroCall struct {
	*Position        // position in the source.
	Path      *Path  // macro path.
	Delimiter byte   // opening delimiter, one of '(', '[' and '{'.
	Tokens    string // source between the delimiters.
}

// NewMacroCall returns a new MacroCall node.
func NewMacroCall(pos *Position, path *Path, delimiter byte, tokens string) *MacroCall {
	return &MacroCall{pos, path, delimiter, tokens}
}

// String returns the string representation of n.
func (n *MacroCall) String() string {
	var closing byte
	switch n.Delimiter {
	case '(':
		closing = ')'
	case '[':
		closing = ']'
	default:
		closing = '}'
	}
	return n.Path.String() + "!" + string(n.Delimiter) + n.Tokens + string(closing)
}

// operand returns the string representation of expr used as operand of a
// postfix expression.
func operand(expr Expression) string {
	switch expr.(type) {
	case Operator, *Range, *Assignment, *Closure, *Let:
		return "(" + expr.String() + ")"
	}
	return expr.String()
}

func joinExpressions(exprs []Expression) string {
	var b strings.Builder
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	return b.String()
}
